package game

type MaterialRule struct {
	Threshold int
	Items     []string
}

// MaterialRules gate attempts at or above each threshold. Every item from
// every rule at or below the attempted level must be held, and one unit of
// each is consumed by the attempt regardless of outcome.
var MaterialRules = []MaterialRule{
	{Threshold: 10, Items: []string{ItemMagicStone}},
	{Threshold: 15, Items: []string{ItemPurificationWater, ItemAdvancedProtection}},
	{Threshold: 20, Items: []string{ItemLegendaryEssence}},
}

// RequiredMaterials returns the material types an attempt from the given
// level must hold and will consume.
func RequiredMaterials(level int) []string {
	var out []string
	for _, rule := range MaterialRules {
		if level >= rule.Threshold {
			out = append(out, rule.Items...)
		}
	}
	return out
}

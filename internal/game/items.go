package game

import "time"

// Consumable item types. Scrolls modify a single attempt and carry a reuse
// cooldown; materials gate high-level attempts and are consumed without one.
const (
	ItemProtect            = "protect"
	ItemDoubleChance       = "double_chance"
	ItemDiscount           = "discount"
	ItemBlessingScroll     = "blessing_scroll"
	ItemAdvancedProtection = "advanced_protection"
	ItemMagicStone         = "magic_stone"
	ItemPurificationWater  = "purification_water"
	ItemLegendaryEssence   = "legendary_essence"
)

type ItemSpec struct {
	Type        string
	PriceGold   int64
	Cooldown    time.Duration
	MaxQuantity int64
	Material    bool
}

var Catalog = map[string]ItemSpec{
	ItemProtect:            {Type: ItemProtect, PriceGold: 100000, Cooldown: 30 * time.Minute, MaxQuantity: 3},
	ItemDoubleChance:       {Type: ItemDoubleChance, PriceGold: 150000, Cooldown: 20 * time.Minute, MaxQuantity: 3},
	ItemDiscount:           {Type: ItemDiscount, PriceGold: 80000, Cooldown: 15 * time.Minute, MaxQuantity: 3},
	ItemBlessingScroll:     {Type: ItemBlessingScroll, PriceGold: 120000, Cooldown: 25 * time.Minute, MaxQuantity: 3},
	ItemAdvancedProtection: {Type: ItemAdvancedProtection, PriceGold: 200000, Cooldown: 45 * time.Minute, MaxQuantity: 3, Material: true},
	ItemMagicStone:         {Type: ItemMagicStone, PriceGold: 25000, MaxQuantity: 10, Material: true},
	ItemPurificationWater:  {Type: ItemPurificationWater, PriceGold: 50000, MaxQuantity: 10, Material: true},
	ItemLegendaryEssence:   {Type: ItemLegendaryEssence, PriceGold: 100000, MaxQuantity: 10, Material: true},
}

// CooldownFor returns the reuse cooldown for an item type, zero when the
// item has none.
func CooldownFor(itemType string) time.Duration {
	return Catalog[itemType].Cooldown
}

func IsKnownItem(itemType string) bool {
	_, ok := Catalog[itemType]
	return ok
}

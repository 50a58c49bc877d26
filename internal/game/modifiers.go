package game

import "errors"

var ErrBadFragmentTier = errors.New("invalid_fragment_tier")

type FragmentBoost struct {
	Fragments int64
	Bonus     int
}

// FragmentBoosts are the selectable fragment-for-chance tiers.
var FragmentBoosts = []FragmentBoost{
	{Fragments: 100, Bonus: 5},
	{Fragments: 200, Bonus: 10},
	{Fragments: 500, Bonus: 20},
}

// Modifiers are the per-attempt selections. At most one of each kind.
// FragmentTier indexes FragmentBoosts, -1 for none. Override is a rolled
// chance from a prior chance roll, 0 for none; rolled values are in [1,100].
type Modifiers struct {
	DoubleChance bool
	Protect      bool
	Discount     bool
	Blessing     bool
	FragmentTier int
	Override     int
	WinStreak    int
}

type Resolved struct {
	Chance       int
	Cost         int64
	FragmentCost int64
}

// Resolve computes the effective chance and cost for an attempt from the
// given level. The override replaces the base chance before boosts; the
// double-chance scroll, blessing bonus, and fragment boost then stack
// additively before the [0,100] clamp. Caller-declared values never enter
// here: everything derives from the level-indexed model.
func Resolve(level int, m Modifiers) (Resolved, error) {
	chance := BaseChance(level)
	if m.Override > 0 {
		chance = m.Override
		if chance > 100 {
			chance = 100
		}
	}
	if m.DoubleChance {
		chance += chance
	}
	if m.Blessing {
		chance += BlessingBonus(m.WinStreak)
	}
	var fragmentCost int64
	if m.FragmentTier >= 0 {
		if m.FragmentTier >= len(FragmentBoosts) {
			return Resolved{}, ErrBadFragmentTier
		}
		tier := FragmentBoosts[m.FragmentTier]
		chance += tier.Bonus
		fragmentCost = tier.Fragments
	}
	if chance > 100 {
		chance = 100
	}
	if chance < 0 {
		chance = 0
	}
	cost := Cost(level)
	if m.Discount {
		cost /= 2
	}
	return Resolved{Chance: chance, Cost: cost, FragmentCost: fragmentCost}, nil
}

// BlessingBonus maps a consecutive-success streak to the blessing scroll's
// extra chance.
func BlessingBonus(streak int) int {
	switch {
	case streak >= 3:
		return 15
	case streak >= 2:
		return 10
	case streak >= 1:
		return 5
	default:
		return 0
	}
}

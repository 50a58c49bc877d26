package game

import "math"

// MinChance is the probability floor: no level, however high, enhances
// with less than this percent chance.
const MinChance = 2

var baseChanceTable = []int{
	100, 95, 90, 85, 80, // 0-4
	75, 70, 65, 60, 55, // 5-9
	50, 45, 40, 35, 30, // 10-14
	25, 20, 15, 12, 10, // 15-19
	8, 6, 5, 4, 3, // 20-24
}

// BaseChance returns the success percent for enhancing from the given level.
// Non-increasing in level, never below MinChance.
func BaseChance(level int) int {
	if level < 0 {
		level = 0
	}
	if level < len(baseChanceTable) {
		return baseChanceTable[level]
	}
	c := 3 - (level-24)/5
	if c < MinChance {
		return MinChance
	}
	return c
}

const costBase = 100

// Cost returns the gold price of one attempt from the given level.
// Growth is tiered: x1.5 per level through 10, x1.8 to 15, x2.0 to 20,
// x2.5 beyond, so early levels stay cheap and late levels punish.
func Cost(level int) int64 {
	if level < 0 {
		level = 0
	}
	switch {
	case level <= 10:
		return int64(math.Floor(costBase * math.Pow(1.5, float64(level))))
	case level <= 15:
		b := costBase * math.Pow(1.5, 10)
		return int64(math.Floor(b * math.Pow(1.8, float64(level-10))))
	case level <= 20:
		b := costBase * math.Pow(1.5, 10) * math.Pow(1.8, 5)
		return int64(math.Floor(b * math.Pow(2.0, float64(level-15))))
	default:
		b := costBase * math.Pow(1.5, 10) * math.Pow(1.8, 5) * math.Pow(2.0, 5)
		return int64(math.Floor(b * math.Pow(2.5, float64(level-20))))
	}
}

// FragmentsOnFailure returns the fragment payout when an unprotected
// attempt from the given level fails and the sword resets. Higher levels
// pay more to compensate the bigger loss.
func FragmentsOnFailure(level int) int64 {
	if level <= 0 {
		return 0
	}
	f := int64(level) * 30
	switch {
	case level >= 20:
		f += int64(level) * 100
	case level >= 15:
		f += int64(level) * 70
	case level >= 10:
		f += int64(level) * 50
	case level >= 5:
		f += int64(level) * 20
	}
	return f
}

// CumulativeCost returns the log-scaled total gold sunk into reaching the
// given level from zero.
func CumulativeCost(level int) int64 {
	var total int64
	for i := 0; i < level; i++ {
		total += Cost(i)
	}
	if level <= 1 {
		return total
	}
	return int64(math.Floor(math.Log(float64(level)+1) * float64(total)))
}

// SellPrice returns the gold credited for selling a sword at the given
// level. Zero at level zero; otherwise cumulative cost times a band
// multiplier.
func SellPrice(level int) int64 {
	if level <= 0 {
		return 0
	}
	base := float64(CumulativeCost(level))
	var mult float64
	switch {
	case level < 5:
		mult = 1.5
	case level < 10:
		mult = 1.8
	case level < 15:
		mult = 2.0
	case level < 20:
		mult = 2.2
	default:
		mult = 2.5
	}
	return int64(math.Floor(base * mult))
}

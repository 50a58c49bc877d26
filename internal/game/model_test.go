package game

import "testing"

func TestBaseChanceKnownValues(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{level: 0, want: 100},
		{level: 1, want: 95},
		{level: 4, want: 80},
		{level: 9, want: 55},
		{level: 14, want: 30},
		{level: 19, want: 10},
		{level: 24, want: 3},
		{level: 25, want: 3},
		{level: 29, want: 2},
		{level: 100, want: 2},
	}
	for _, tt := range tests {
		if got := BaseChance(tt.level); got != tt.want {
			t.Fatalf("BaseChance(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestBaseChanceNonIncreasingWithFloor(t *testing.T) {
	prev := BaseChance(0)
	for level := 1; level <= 200; level++ {
		c := BaseChance(level)
		if c > prev {
			t.Fatalf("BaseChance(%d) = %d rose above BaseChance(%d) = %d", level, c, level-1, prev)
		}
		if c < MinChance {
			t.Fatalf("BaseChance(%d) = %d below floor %d", level, c, MinChance)
		}
		prev = c
	}
}

func TestCostStrictlyIncreasing(t *testing.T) {
	prev := Cost(0)
	if prev != 100 {
		t.Fatalf("Cost(0) = %d, want 100", prev)
	}
	for level := 1; level <= 40; level++ {
		c := Cost(level)
		if c <= prev {
			t.Fatalf("Cost(%d) = %d not greater than Cost(%d) = %d", level, c, level-1, prev)
		}
		prev = c
	}
}

func TestCostTierBoundaries(t *testing.T) {
	if got := Cost(1); got != 150 {
		t.Fatalf("Cost(1) = %d, want 150", got)
	}
	// Growth rate steps up at each band edge.
	r1 := float64(Cost(11)) / float64(Cost(10))
	r2 := float64(Cost(16)) / float64(Cost(15))
	r3 := float64(Cost(21)) / float64(Cost(20))
	if r1 < 1.7 || r1 > 1.9 {
		t.Fatalf("tier-2 growth = %.2f, want ~1.8", r1)
	}
	if r2 < 1.9 || r2 > 2.1 {
		t.Fatalf("tier-3 growth = %.2f, want ~2.0", r2)
	}
	if r3 < 2.4 || r3 > 2.6 {
		t.Fatalf("tier-4 growth = %.2f, want ~2.5", r3)
	}
}

func TestFragmentsOnFailureNonDecreasing(t *testing.T) {
	if got := FragmentsOnFailure(0); got != 0 {
		t.Fatalf("FragmentsOnFailure(0) = %d, want 0", got)
	}
	prev := int64(0)
	for level := 1; level <= 60; level++ {
		f := FragmentsOnFailure(level)
		if f < prev {
			t.Fatalf("FragmentsOnFailure(%d) = %d below FragmentsOnFailure(%d) = %d", level, f, level-1, prev)
		}
		prev = f
	}
}

func TestSellPrice(t *testing.T) {
	if got := SellPrice(0); got != 0 {
		t.Fatalf("SellPrice(0) = %d, want 0", got)
	}
	for level := 1; level <= 30; level++ {
		if SellPrice(level) <= 0 {
			t.Fatalf("SellPrice(%d) not positive", level)
		}
	}
	// Derived from cumulative cost: selling never pays less than the band
	// multiplier floor of what was sunk.
	if SellPrice(1) != 150 {
		t.Fatalf("SellPrice(1) = %d, want 150", SellPrice(1))
	}
}

func TestModelPurity(t *testing.T) {
	for level := 0; level <= 30; level++ {
		if BaseChance(level) != BaseChance(level) ||
			Cost(level) != Cost(level) ||
			FragmentsOnFailure(level) != FragmentsOnFailure(level) ||
			SellPrice(level) != SellPrice(level) {
			t.Fatalf("model functions not deterministic at level %d", level)
		}
	}
}

package game

import "testing"

func TestResolveOutcome(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		draw      int
		chance    int
		protected bool
		want      Outcome
	}{
		{
			name: "success at boundary", level: 5, draw: 65, chance: 65,
			want: Outcome{Success: true, NewLevel: 6},
		},
		{
			name: "failure resets", level: 5, draw: 66, chance: 65,
			want: Outcome{Success: false, NewLevel: 0, FragmentsGained: FragmentsOnFailure(5)},
		},
		{
			name: "protected failure keeps level", level: 5, draw: 66, chance: 65, protected: true,
			want: Outcome{Success: false, NewLevel: 5},
		},
		{
			name: "guaranteed at 100", level: 0, draw: 100, chance: 100,
			want: Outcome{Success: true, NewLevel: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveOutcome(tt.level, tt.draw, tt.chance, tt.protected)
			if got != tt.want {
				t.Fatalf("ResolveOutcome = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRollerDrawRange(t *testing.T) {
	r := NewRoller(1)
	for i := 0; i < 10000; i++ {
		d := r.Draw()
		if d < 1 || d > 100 {
			t.Fatalf("draw %d out of [1,100]", d)
		}
	}
}

func TestRollerSeedReproducible(t *testing.T) {
	a, b := NewRoller(42), NewRoller(42)
	for i := 0; i < 100; i++ {
		if a.Draw() != b.Draw() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRollOverrideBand(t *testing.T) {
	r := NewRoller(7)
	tests := []struct {
		level  int
		lo, hi int
	}{
		{level: 0, lo: 90, hi: 100}, // base 100, high edge clamped
		{level: 14, lo: 20, hi: 40}, // base 30
		{level: 30, lo: 1, hi: 12},  // base 2, low edge clamped
	}
	for _, tt := range tests {
		for i := 0; i < 2000; i++ {
			got := r.RollOverride(tt.level)
			if got < tt.lo || got > tt.hi {
				t.Fatalf("RollOverride(%d) = %d outside [%d,%d]", tt.level, got, tt.lo, tt.hi)
			}
		}
	}
}

func TestRequiredMaterials(t *testing.T) {
	if got := RequiredMaterials(9); len(got) != 0 {
		t.Fatalf("level 9 should need no materials, got %v", got)
	}
	got := RequiredMaterials(12)
	if len(got) != 1 || got[0] != ItemMagicStone {
		t.Fatalf("level 12 materials = %v", got)
	}
	got = RequiredMaterials(20)
	want := []string{ItemMagicStone, ItemPurificationWater, ItemAdvancedProtection, ItemLegendaryEssence}
	if len(got) != len(want) {
		t.Fatalf("level 20 materials = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("level 20 materials = %v, want %v", got, want)
		}
	}
}

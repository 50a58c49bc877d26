package game

import (
	"math/rand"
	"sync"
)

// Roller is the injected randomness source for outcome draws and chance
// rolls. Seedable so resolver behavior is reproducible under test.
type Roller struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRoller(seed int64) *Roller {
	return &Roller{rnd: rand.New(rand.NewSource(seed))}
}

// Draw returns a uniform integer in [1,100].
func (r *Roller) Draw() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(100) + 1
}

// RollOverride draws a replacement chance for the given level, uniform in
// [base-10, base+10] clamped to [1,100].
func (r *Roller) RollOverride(level int) int {
	base := BaseChance(level)
	lo, hi := base-10, base+10
	if lo < 1 {
		lo = 1
	}
	if hi > 100 {
		hi = 100
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rnd.Intn(hi-lo+1)
}

type Outcome struct {
	Success         bool
	NewLevel        int
	FragmentsGained int64
}

// ResolveOutcome turns a draw against the effective chance into the state
// transition for an attempt from the given level. Success iff draw <=
// chance. Failure under protection keeps the level; otherwise the sword
// resets to zero and the level's fragment payout is granted.
func ResolveOutcome(level, draw, chance int, protected bool) Outcome {
	if draw <= chance {
		return Outcome{Success: true, NewLevel: level + 1}
	}
	if protected {
		return Outcome{Success: false, NewLevel: level}
	}
	return Outcome{Success: false, NewLevel: 0, FragmentsGained: FragmentsOnFailure(level)}
}

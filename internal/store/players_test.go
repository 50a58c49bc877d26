package store_test

import (
	"context"
	"errors"
	"testing"

	"sword-forge/internal/store"
	"sword-forge/internal/testutil"
)

func TestGetOrCreatePlayerIdempotent(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	p1, err := st.GetOrCreatePlayer(ctx, "p1", "alice", 30000)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if p1.Gold != 30000 {
		t.Fatalf("starting gold = %d, want 30000", p1.Gold)
	}

	p2, err := st.GetOrCreatePlayer(ctx, "p1", "other", 99999)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if p2.Gold != 30000 || p2.Nickname != "alice" {
		t.Fatalf("second touch rewrote the row: %+v", p2)
	}
}

func TestGetPlayerNotFound(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()

	_, err := st.GetPlayer(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetOrCreateSwordStartsAtZero(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := st.GetOrCreatePlayer(ctx, "p1", "", 1000); err != nil {
		t.Fatalf("create player: %v", err)
	}
	sw, err := st.GetOrCreateSword(ctx, "p1")
	if err != nil {
		t.Fatalf("create sword: %v", err)
	}
	if sw.Level != 0 || sw.WinStreak != 0 {
		t.Fatalf("fresh sword = %+v", sw)
	}
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := st.GetOrCreatePlayer(ctx, "p1", "", 1000); err != nil {
		t.Fatalf("create player: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := st.UnlockAchievement(ctx, "p1", 5); err != nil {
			t.Fatalf("unlock: %v", err)
		}
	}
	if err := st.UnlockAchievement(ctx, "p1", 10); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	got, err := st.ListAchievements(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0] != 5 || got[1] != 10 {
		t.Fatalf("achievements = %v, want [5 10]", got)
	}
}

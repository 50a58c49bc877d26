package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"sword-forge/internal/game"
	"sword-forge/internal/store"
	"sword-forge/internal/testutil"
)

func seedPlayer(t *testing.T, st *store.Store, playerID string, gold int64) {
	t.Helper()
	ctx := context.Background()
	if _, err := st.GetOrCreatePlayer(ctx, playerID, "", gold); err != nil {
		t.Fatalf("create player: %v", err)
	}
	if _, err := st.GetOrCreateSword(ctx, playerID); err != nil {
		t.Fatalf("create sword: %v", err)
	}
}

func setInventory(t *testing.T, st *store.Store, playerID, itemType string, qty int64) {
	t.Helper()
	_, err := st.Pool.Exec(context.Background(), `
		INSERT INTO inventories (player_id, item_type, quantity) VALUES ($1,$2,$3)
		ON CONFLICT (player_id, item_type) DO UPDATE SET quantity = EXCLUDED.quantity
	`, playerID, itemType, qty)
	if err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
}

func TestApplyAttemptSuccess(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	seedPlayer(t, st, "p1", 30000)

	receipt, err := st.ApplyAttempt(ctx, store.AttemptCommit{
		AttemptID: store.NewID(),
		PlayerID:  "p1",
		FromLevel: 0,
		ToLevel:   1,
		Success:   true,
		CostGold:  game.Cost(0),
	})
	if err != nil {
		t.Fatalf("ApplyAttempt: %v", err)
	}
	if receipt.NewLevel != 1 || receipt.WinStreak != 1 {
		t.Fatalf("receipt = %+v", receipt)
	}
	if receipt.NewGold != 30000-game.Cost(0) {
		t.Fatalf("gold = %d", receipt.NewGold)
	}

	entries, err := st.ListLedgerEntries(ctx, "p1", 10, 0)
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != "enhance_debit" || entries[0].Amount != -game.Cost(0) {
		t.Fatalf("ledger entries = %+v", entries)
	}

	rankings, err := st.ListRankings(ctx, 10, 0)
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	if len(rankings) != 1 || rankings[0].MaxSwordLevel != 1 {
		t.Fatalf("rankings = %+v", rankings)
	}
}

func TestApplyAttemptInsufficientGold(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	seedPlayer(t, st, "p1", 10)

	_, err := st.ApplyAttempt(context.Background(), store.AttemptCommit{
		AttemptID: store.NewID(),
		PlayerID:  "p1",
		FromLevel: 0,
		ToLevel:   1,
		Success:   true,
		CostGold:  100,
	})
	if !errors.Is(err, store.ErrInsufficientGold) {
		t.Fatalf("err = %v, want ErrInsufficientGold", err)
	}
}

func TestApplyAttemptLevelConflict(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	seedPlayer(t, st, "p1", 30000)

	_, err := st.ApplyAttempt(context.Background(), store.AttemptCommit{
		AttemptID: store.NewID(),
		PlayerID:  "p1",
		FromLevel: 7,
		ToLevel:   8,
		Success:   true,
		CostGold:  100,
	})
	if !errors.Is(err, store.ErrLevelConflict) {
		t.Fatalf("err = %v, want ErrLevelConflict", err)
	}
}

func TestApplyAttemptRollsBackOnMissingItem(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	seedPlayer(t, st, "p1", 30000)
	setInventory(t, st, "p1", game.ItemProtect, 0)

	// the gold and level updates run before the guarded item decrement,
	// so a failure here proves the whole transaction rolled back
	_, err := st.ApplyAttempt(ctx, store.AttemptCommit{
		AttemptID:    store.NewID(),
		PlayerID:     "p1",
		FromLevel:    0,
		ToLevel:      1,
		Success:      true,
		CostGold:     100,
		ConsumeItems: []string{game.ItemProtect},
	})
	if !errors.Is(err, store.ErrInsufficientItem) {
		t.Fatalf("err = %v, want ErrInsufficientItem", err)
	}

	p, err := st.GetPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if p.Gold != 30000 {
		t.Fatalf("gold = %d after rollback, want 30000", p.Gold)
	}
	sw, err := st.GetOrCreateSword(ctx, "p1")
	if err != nil {
		t.Fatalf("GetOrCreateSword: %v", err)
	}
	if sw.Level != 0 {
		t.Fatalf("level = %d after rollback, want 0", sw.Level)
	}
	entries, err := st.ListLedgerEntries(ctx, "p1", 10, 0)
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("ledger written despite rollback: %+v", entries)
	}
}

func TestApplyAttemptConcurrentSingleDebit(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	seedPlayer(t, st, "p1", 100)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.ApplyAttempt(ctx, store.AttemptCommit{
				AttemptID: store.NewID(),
				PlayerID:  "p1",
				FromLevel: 0,
				ToLevel:   1,
				Success:   true,
				CostGold:  100,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, rejected int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, store.ErrInsufficientGold), errors.Is(err, store.ErrLevelConflict):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || rejected != 1 {
		t.Fatalf("ok=%d rejected=%d, want exactly one commit", ok, rejected)
	}
	p, err := st.GetPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if p.Gold != 0 {
		t.Fatalf("gold = %d, want single debit to 0", p.Gold)
	}
}

func TestApplyAttemptClearsPendingChance(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	seedPlayer(t, st, "p1", 50000)

	if _, err := st.SavePendingChance(ctx, "p1", 42, 20000, store.NewID()); err != nil {
		t.Fatalf("SavePendingChance: %v", err)
	}
	p, _ := st.GetPlayer(ctx, "p1")
	if p.PendingChance == nil || *p.PendingChance != 42 {
		t.Fatalf("pending chance not stored: %+v", p)
	}

	if _, err := st.ApplyAttempt(ctx, store.AttemptCommit{
		AttemptID: store.NewID(),
		PlayerID:  "p1",
		FromLevel: 0,
		ToLevel:   1,
		Success:   true,
		CostGold:  100,
	}); err != nil {
		t.Fatalf("ApplyAttempt: %v", err)
	}
	p, _ = st.GetPlayer(ctx, "p1")
	if p.PendingChance != nil {
		t.Fatalf("pending chance survived the attempt")
	}
}

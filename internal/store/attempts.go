package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// AttemptCommit is the full effect set of one enhancement attempt, computed
// by the service and applied here as a single transaction.
type AttemptCommit struct {
	AttemptID string
	PlayerID  string

	// FromLevel is the level the attempt was resolved against. The commit
	// re-reads the stored level under lock and aborts on mismatch.
	FromLevel int
	ToLevel   int
	Success   bool

	CostGold        int64
	FragmentsGained int64
	FragmentsSpent  int64

	// ConsumeItems lose one unit each; CooldownItems additionally get a
	// fresh last-used stamp.
	ConsumeItems  []string
	CooldownItems []string
}

type AttemptReceipt struct {
	NewLevel     int
	WinStreak    int
	NewGold      int64
	NewFragments int64
	Inventory    map[string]int64
}

// ApplyAttempt commits every effect of an enhancement attempt atomically:
// sword level, gold debit, fragment delta, item decrements, cooldown
// stamps, the ranking upsert, and the ledger entry. The player row lock
// serializes attempts per account; balances, quantities, and the sword
// level are re-verified under that lock, so a stale pre-check can only
// turn into a clean rejection, never a partial write.
func (s *Store) ApplyAttempt(ctx context.Context, c AttemptCommit) (*AttemptReceipt, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var gold, fragments int64
	row := tx.QueryRow(ctx, `SELECT gold, fragments FROM players WHERE id = $1 FOR UPDATE`, c.PlayerID)
	if err := row.Scan(&gold, &fragments); err != nil {
		return nil, mapNotFound(err)
	}
	if gold < c.CostGold {
		return nil, ErrInsufficientGold
	}
	if fragments < c.FragmentsSpent {
		return nil, ErrInsufficientFragments
	}

	var level, streak int
	row = tx.QueryRow(ctx, `SELECT level, win_streak FROM swords WHERE player_id = $1 FOR UPDATE`, c.PlayerID)
	if err := row.Scan(&level, &streak); err != nil {
		return nil, mapNotFound(err)
	}
	if level != c.FromLevel {
		return nil, ErrLevelConflict
	}

	newStreak := 0
	if c.Success {
		newStreak = streak + 1
	}
	if _, err := tx.Exec(ctx, `UPDATE swords SET level = $1, win_streak = $2, updated_at = now() WHERE player_id = $3`,
		c.ToLevel, newStreak, c.PlayerID); err != nil {
		return nil, err
	}

	newGold := gold - c.CostGold
	newFragments := fragments - c.FragmentsSpent + c.FragmentsGained
	if _, err := tx.Exec(ctx, `UPDATE players SET gold = $1, fragments = $2, pending_chance = NULL, updated_at = now() WHERE id = $3`,
		newGold, newFragments, c.PlayerID); err != nil {
		return nil, err
	}

	for _, itemType := range c.ConsumeItems {
		ct, err := tx.Exec(ctx, `UPDATE inventories SET quantity = quantity - 1, updated_at = now() WHERE player_id = $1 AND item_type = $2 AND quantity > 0`,
			c.PlayerID, itemType)
		if err != nil {
			return nil, err
		}
		if ct.RowsAffected() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientItem, itemType)
		}
	}

	for _, itemType := range c.CooldownItems {
		if _, err := tx.Exec(ctx, `
			INSERT INTO item_cooldowns (player_id, item_type, last_used_at) VALUES ($1,$2,now())
			ON CONFLICT (player_id, item_type) DO UPDATE SET last_used_at = now()
		`, c.PlayerID, itemType); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO rankings (player_id, max_sword_level, total_gold) VALUES ($1,$2,$3)
		ON CONFLICT (player_id) DO UPDATE
		SET max_sword_level = GREATEST(rankings.max_sword_level, EXCLUDED.max_sword_level),
		    total_gold = EXCLUDED.total_gold,
		    updated_at = now()
	`, c.PlayerID, c.ToLevel, newGold); err != nil {
		return nil, err
	}

	if err := insertLedgerEntry(ctx, tx, c.PlayerID, "enhance_debit", -c.CostGold, "attempt", c.AttemptID); err != nil {
		return nil, err
	}

	inventory, err := listInventoryTx(ctx, tx, c.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &AttemptReceipt{
		NewLevel:     c.ToLevel,
		WinStreak:    newStreak,
		NewGold:      newGold,
		NewFragments: newFragments,
		Inventory:    inventory,
	}, nil
}

func insertLedgerEntry(ctx context.Context, tx pgx.Tx, playerID, entryType string, amount int64, refType, refID string) error {
	_, err := tx.Exec(ctx, `INSERT INTO ledger_entries (id, player_id, type, amount, ref_type, ref_id) VALUES ($1,$2,$3,$4,$5,$6)`,
		NewID(), playerID, entryType, amount, refType, refID)
	return err
}

func listInventoryTx(ctx context.Context, tx pgx.Tx, playerID string) (map[string]int64, error) {
	rows, err := tx.Query(ctx, `SELECT item_type, quantity FROM inventories WHERE player_id = $1`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int64{}
	for rows.Next() {
		var itemType string
		var qty int64
		if err := rows.Scan(&itemType, &qty); err != nil {
			return nil, err
		}
		out[itemType] = qty
	}
	return out, rows.Err()
}

package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// SavePendingChance debits the chance-roll price and stores the rolled
// override, replacing any unused previous roll.
func (s *Store) SavePendingChance(ctx context.Context, playerID string, chance int, price int64, refID string) (int64, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var gold int64
	row := tx.QueryRow(ctx, `SELECT gold FROM players WHERE id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&gold); err != nil {
		return 0, mapNotFound(err)
	}
	if gold < price {
		return 0, ErrInsufficientGold
	}
	newGold := gold - price
	if _, err := tx.Exec(ctx, `UPDATE players SET gold = $1, pending_chance = $2, updated_at = now() WHERE id = $3`,
		newGold, chance, playerID); err != nil {
		return 0, err
	}
	if err := insertLedgerEntry(ctx, tx, playerID, "chance_roll_debit", -price, "chance_roll", refID); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newGold, nil
}

// SellSword credits the sale price and resets the sword. The stored level
// must match the level the price was computed from.
func (s *Store) SellSword(ctx context.Context, playerID string, level int, price int64, refID string) (int64, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var gold int64
	row := tx.QueryRow(ctx, `SELECT gold FROM players WHERE id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&gold); err != nil {
		return 0, mapNotFound(err)
	}
	var storedLevel int
	row = tx.QueryRow(ctx, `SELECT level FROM swords WHERE player_id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&storedLevel); err != nil {
		return 0, mapNotFound(err)
	}
	if storedLevel != level {
		return 0, ErrLevelConflict
	}

	if _, err := tx.Exec(ctx, `UPDATE swords SET level = 0, win_streak = 0, updated_at = now() WHERE player_id = $1`, playerID); err != nil {
		return 0, err
	}
	newGold := gold + price
	if _, err := tx.Exec(ctx, `UPDATE players SET gold = $1, updated_at = now() WHERE id = $2`, newGold, playerID); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO rankings (player_id, max_sword_level, total_gold) VALUES ($1,$2,$3)
		ON CONFLICT (player_id) DO UPDATE SET total_gold = EXCLUDED.total_gold, updated_at = now()
	`, playerID, level, newGold); err != nil {
		return 0, err
	}
	if err := insertLedgerEntry(ctx, tx, playerID, "sell_credit", price, "sale", refID); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newGold, nil
}

// PurchaseItem debits the catalog price and adds one unit, enforcing the
// per-item cap.
func (s *Store) PurchaseItem(ctx context.Context, playerID, itemType string, price, maxQuantity int64, refID string) (int64, int64, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback(ctx)

	var gold int64
	row := tx.QueryRow(ctx, `SELECT gold FROM players WHERE id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&gold); err != nil {
		return 0, 0, mapNotFound(err)
	}
	if gold < price {
		return 0, 0, ErrInsufficientGold
	}

	var qty int64
	row = tx.QueryRow(ctx, `SELECT quantity FROM inventories WHERE player_id = $1 AND item_type = $2 FOR UPDATE`, playerID, itemType)
	if err := row.Scan(&qty); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, err
		}
		qty = 0
	}
	if qty >= maxQuantity {
		return 0, 0, ErrItemLimit
	}

	newGold := gold - price
	if _, err := tx.Exec(ctx, `UPDATE players SET gold = $1, updated_at = now() WHERE id = $2`, newGold, playerID); err != nil {
		return 0, 0, err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO inventories (player_id, item_type, quantity) VALUES ($1,$2,1)
		ON CONFLICT (player_id, item_type) DO UPDATE SET quantity = inventories.quantity + 1, updated_at = now()
	`, playerID, itemType); err != nil {
		return 0, 0, err
	}
	if err := insertLedgerEntry(ctx, tx, playerID, "shop_debit", -price, "purchase", refID); err != nil {
		return 0, 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, 0, err
	}
	return newGold, qty + 1, nil
}

// ExchangeFragments debits gold for a fixed fragment payout.
func (s *Store) ExchangeFragments(ctx context.Context, playerID string, price, yield int64, refID string) (int64, int64, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback(ctx)

	var gold, fragments int64
	row := tx.QueryRow(ctx, `SELECT gold, fragments FROM players WHERE id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&gold, &fragments); err != nil {
		return 0, 0, mapNotFound(err)
	}
	if gold < price {
		return 0, 0, ErrInsufficientGold
	}
	newGold := gold - price
	newFragments := fragments + yield
	if _, err := tx.Exec(ctx, `UPDATE players SET gold = $1, fragments = $2, updated_at = now() WHERE id = $3`,
		newGold, newFragments, playerID); err != nil {
		return 0, 0, err
	}
	if err := insertLedgerEntry(ctx, tx, playerID, "fragment_roll_debit", -price, "fragment_roll", refID); err != nil {
		return 0, 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, 0, err
	}
	return newGold, newFragments, nil
}

// ResetProgress restores the reset balance and clears fragments, pending
// rolls, and all inventory. The sword keeps its level.
func (s *Store) ResetProgress(ctx context.Context, playerID string, resetGold int64) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `UPDATE players SET gold = $1, fragments = 0, pending_chance = NULL, updated_at = now() WHERE id = $2`,
		resetGold, playerID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	if _, err := tx.Exec(ctx, `UPDATE inventories SET quantity = 0, updated_at = now() WHERE player_id = $1`, playerID); err != nil {
		return err
	}
	if err := insertLedgerEntry(ctx, tx, playerID, "admin_reset", 0, "admin", NewID()); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GrantBonus credits gold outside normal play (admin compensation).
func (s *Store) GrantBonus(ctx context.Context, playerID string, amount int64, refID string) (int64, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var gold int64
	row := tx.QueryRow(ctx, `SELECT gold FROM players WHERE id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&gold); err != nil {
		return 0, mapNotFound(err)
	}
	newGold := gold + amount
	if _, err := tx.Exec(ctx, `UPDATE players SET gold = $1, updated_at = now() WHERE id = $2`, newGold, playerID); err != nil {
		return 0, err
	}
	if err := insertLedgerEntry(ctx, tx, playerID, "bonus_credit", amount, "admin", refID); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newGold, nil
}

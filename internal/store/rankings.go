package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func (s *Store) ListRankings(ctx context.Context, limit, offset int) ([]RankingEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx, `
		SELECT r.player_id, p.nickname, r.max_sword_level, r.total_gold, p.fragments
		FROM rankings r
		JOIN players p ON p.id = r.player_id
		ORDER BY r.max_sword_level DESC, r.total_gold DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []RankingEntry{}
	for rows.Next() {
		var e RankingEntry
		if err := rows.Scan(&e.PlayerID, &e.Nickname, &e.MaxSwordLevel, &e.TotalGold, &e.Fragments); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ListLedgerEntries(ctx context.Context, playerID string, limit, offset int) ([]LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows pgx.Rows
	var err error
	if playerID == "" {
		rows, err = s.Pool.Query(ctx, `SELECT id, player_id, type, amount, ref_type, ref_id, created_at FROM ledger_entries ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	} else {
		rows, err = s.Pool.Query(ctx, `SELECT id, player_id, type, amount, ref_type, ref_id, created_at FROM ledger_entries WHERE player_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, playerID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LedgerEntry{}
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.Type, &e.Amount, &e.RefType, &e.RefID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

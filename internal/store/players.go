package store

import (
	"context"
	"time"
)

func (s *Store) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	row := s.Pool.QueryRow(ctx, `SELECT id, nickname, gold, fragments, pending_chance, created_at, updated_at FROM players WHERE id = $1`, playerID)
	var p Player
	if err := row.Scan(&p.ID, &p.Nickname, &p.Gold, &p.Fragments, &p.PendingChance, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

// GetOrCreatePlayer provisions a player with the starting balance on first
// touch. The insert is idempotent; concurrent first touches converge on one
// row.
func (s *Store) GetOrCreatePlayer(ctx context.Context, playerID, nickname string, startingGold int64) (*Player, error) {
	_, err := s.Pool.Exec(ctx, `INSERT INTO players (id, nickname, gold) VALUES ($1,$2,$3) ON CONFLICT (id) DO NOTHING`, playerID, nickname, startingGold)
	if err != nil {
		return nil, err
	}
	return s.GetPlayer(ctx, playerID)
}

func (s *Store) GetOrCreateSword(ctx context.Context, playerID string) (*Sword, error) {
	_, err := s.Pool.Exec(ctx, `INSERT INTO swords (player_id, level) VALUES ($1, 0) ON CONFLICT (player_id) DO NOTHING`, playerID)
	if err != nil {
		return nil, err
	}
	row := s.Pool.QueryRow(ctx, `SELECT player_id, level, win_streak, updated_at FROM swords WHERE player_id = $1`, playerID)
	var sw Sword
	if err := row.Scan(&sw.PlayerID, &sw.Level, &sw.WinStreak, &sw.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &sw, nil
}

func (s *Store) ListInventory(ctx context.Context, playerID string) (map[string]int64, error) {
	rows, err := s.Pool.Query(ctx, `SELECT item_type, quantity FROM inventories WHERE player_id = $1`, playerID)
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

func (s *Store) ListCooldowns(ctx context.Context, playerID string) (map[string]time.Time, error) {
	rows, err := s.Pool.Query(ctx, `SELECT item_type, last_used_at FROM item_cooldowns WHERE player_id = $1`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]time.Time{}
	for rows.Next() {
		var itemType string
		var lastUsed time.Time
		if err := rows.Scan(&itemType, &lastUsed); err != nil {
			return nil, err
		}
		out[itemType] = lastUsed
	}
	return out, rows.Err()
}

// UnlockAchievement records that the player reached a level milestone.
// Safe to call repeatedly.
func (s *Store) UnlockAchievement(ctx context.Context, playerID string, level int) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO achievements (player_id, level) VALUES ($1,$2) ON CONFLICT (player_id, level) DO NOTHING`, playerID, level)
	return err
}

func (s *Store) ListAchievements(ctx context.Context, playerID string) ([]int, error) {
	rows, err := s.Pool.Query(ctx, `SELECT level FROM achievements WHERE player_id = $1 ORDER BY level ASC`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []int{}
	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return nil, err
		}
		out = append(out, level)
	}
	return out, rows.Err()
}

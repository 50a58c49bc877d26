// Package public serves the read-only surfaces: leaderboard and player
// profiles.
package public

import (
	"context"
	"errors"

	"sword-forge/internal/game"
	"sword-forge/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Leaderboard lists players by best sword level, gold snapshot as tiebreak.
func (s *Service) Leaderboard(ctx context.Context, limit, offset int) (*LeaderboardResponse, error) {
	entries, err := s.store.ListRankings(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	rows := make([]LeaderboardRow, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, LeaderboardRow{
			Rank:          offset + i + 1,
			PlayerID:      e.PlayerID,
			Nickname:      e.Nickname,
			MaxSwordLevel: e.MaxSwordLevel,
			Gold:          e.TotalGold,
			Fragments:     e.Fragments,
		})
	}
	return &LeaderboardResponse{Entries: rows, Limit: limit, Offset: offset}, nil
}

// PlayerProfile assembles the full public view of one player. Unlike the
// game paths it never provisions; unknown players are a 404.
func (s *Service) PlayerProfile(ctx context.Context, playerID string) (*Profile, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sword, err := s.store.GetOrCreateSword(ctx, playerID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.store.ListInventory(ctx, playerID)
	if err != nil {
		return nil, err
	}
	achievements, err := s.store.ListAchievements(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		PlayerID:     player.ID,
		Nickname:     player.Nickname,
		Gold:         player.Gold,
		Fragments:    player.Fragments,
		SwordLevel:   sword.Level,
		WinStreak:    sword.WinStreak,
		SellPrice:    game.SellPrice(sword.Level),
		Inventory:    inventory,
		Achievements: achievements,
	}, nil
}

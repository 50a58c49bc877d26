// Package forge implements the enhancement transaction: anti-cheat
// validation, eligibility gating, outcome resolution, and the handoff to the
// atomic store commit.
package forge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"sword-forge/internal/config"
	"sword-forge/internal/game"
	"sword-forge/internal/store"
)

// Storage is the slice of the store the service needs. Narrow on purpose so
// the transaction semantics are testable against an in-memory double.
type Storage interface {
	GetOrCreatePlayer(ctx context.Context, playerID, nickname string, startingGold int64) (*store.Player, error)
	GetOrCreateSword(ctx context.Context, playerID string) (*store.Sword, error)
	ListInventory(ctx context.Context, playerID string) (map[string]int64, error)
	ListCooldowns(ctx context.Context, playerID string) (map[string]time.Time, error)
	ApplyAttempt(ctx context.Context, c store.AttemptCommit) (*store.AttemptReceipt, error)
	SavePendingChance(ctx context.Context, playerID string, chance int, price int64, refID string) (int64, error)
	SellSword(ctx context.Context, playerID string, level int, price int64, refID string) (int64, error)
	UnlockAchievement(ctx context.Context, playerID string, level int) error
}

// Dice is the injected randomness for attempt draws and chance rolls.
// *game.Roller is the production implementation.
type Dice interface {
	Draw() int
	RollOverride(level int) int
}

type Service struct {
	store Storage
	dice  Dice
	cfg   config.ServerConfig
	now   func() time.Time
}

func NewService(st Storage, dice Dice, cfg config.ServerConfig) *Service {
	return &Service{store: st, dice: dice, cfg: cfg, now: time.Now}
}

// Enhance runs one attempt end to end. The request's level, cost, and
// override fields are cross-checked against stored state, never used for
// accounting; all debits derive from the level-indexed model.
func (s *Service) Enhance(ctx context.Context, req EnhanceRequest) (*EnhanceResponse, error) {
	if req.PlayerID == "" || req.Level < 0 {
		return nil, ErrValidationFailed
	}
	if err := s.checkTimestamp(req.ClientTimeMS); err != nil {
		return nil, err
	}

	player, err := s.store.GetOrCreatePlayer(ctx, req.PlayerID, req.Nickname, s.cfg.StartingGold)
	if err != nil {
		return nil, err
	}
	sword, err := s.store.GetOrCreateSword(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}

	if req.Level != sword.Level {
		return nil, fmt.Errorf("%w: level", ErrValidationFailed)
	}
	if req.ExpectedCost != 0 && req.ExpectedCost != game.Cost(sword.Level) {
		return nil, fmt.Errorf("%w: cost", ErrValidationFailed)
	}
	if req.ChanceOverride != nil && (player.PendingChance == nil || *player.PendingChance != *req.ChanceOverride) {
		return nil, fmt.Errorf("%w: chance_override", ErrValidationFailed)
	}

	mods := game.Modifiers{
		DoubleChance: req.UseDoubleChance,
		Protect:      req.UseProtect,
		Discount:     req.UseDiscount,
		Blessing:     req.UseBlessing,
		FragmentTier: -1,
		WinStreak:    sword.WinStreak,
	}
	if req.FragmentTier != nil {
		mods.FragmentTier = *req.FragmentTier
	}
	if player.PendingChance != nil {
		mods.Override = *player.PendingChance
	}
	resolved, err := game.Resolve(sword.Level, mods)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if player.Gold < resolved.Cost {
		return nil, ErrInsufficientFunds
	}
	inventory, err := s.store.ListInventory(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	stamps, err := s.store.ListCooldowns(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	serverNow := s.now()
	consumables := selectedConsumables(req)
	for _, itemType := range consumables {
		if inventory[itemType] <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientInventory, itemType)
		}
		if cooldownRemaining(itemType, stamps, serverNow) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrCooldownActive, itemType)
		}
	}
	materials := game.RequiredMaterials(sword.Level)
	var missing []string
	for _, itemType := range materials {
		if inventory[itemType] <= 0 {
			missing = append(missing, itemType)
		}
	}
	if len(missing) > 0 {
		return nil, missingMaterialError(missing)
	}
	if player.Fragments < resolved.FragmentCost {
		return nil, ErrInsufficientFragments
	}

	draw := s.dice.Draw()
	outcome := game.ResolveOutcome(sword.Level, draw, resolved.Chance, req.UseProtect)

	consume := make([]string, 0, len(consumables)+len(materials))
	consume = append(consume, consumables...)
	consume = append(consume, materials...)
	receipt, err := s.store.ApplyAttempt(ctx, store.AttemptCommit{
		AttemptID:       store.NewID(),
		PlayerID:        req.PlayerID,
		FromLevel:       sword.Level,
		ToLevel:         outcome.NewLevel,
		Success:         outcome.Success,
		CostGold:        resolved.Cost,
		FragmentsGained: outcome.FragmentsGained,
		FragmentsSpent:  resolved.FragmentCost,
		ConsumeItems:    consume,
		CooldownItems:   consumables,
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	if outcome.Success && receipt.NewLevel%5 == 0 {
		s.unlockMilestone(req.PlayerID, receipt.NewLevel)
	}

	return &EnhanceResponse{
		Success:         outcome.Success,
		Chance:          resolved.Chance,
		CostGold:        resolved.Cost,
		NewLevel:        receipt.NewLevel,
		WinStreak:       receipt.WinStreak,
		FragmentsGained: outcome.FragmentsGained,
		FragmentsSpent:  resolved.FragmentCost,
		Gold:            receipt.NewGold,
		Fragments:       receipt.NewFragments,
		Inventory:       receipt.Inventory,
	}, nil
}

// Reroll debits the fixed roll price and persists a fresh override chance
// for the next attempt, replacing any unused one.
func (s *Service) Reroll(ctx context.Context, req RollRequest) (*RollResponse, error) {
	if req.PlayerID == "" {
		return nil, ErrValidationFailed
	}
	if err := s.checkTimestamp(req.ClientTimeMS); err != nil {
		return nil, err
	}
	if _, err := s.store.GetOrCreatePlayer(ctx, req.PlayerID, req.Nickname, s.cfg.StartingGold); err != nil {
		return nil, err
	}
	sword, err := s.store.GetOrCreateSword(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	chance := s.dice.RollOverride(sword.Level)
	gold, err := s.store.SavePendingChance(ctx, req.PlayerID, chance, s.cfg.ChanceRollCostGold, store.NewID())
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &RollResponse{Chance: chance, Gold: gold}, nil
}

// Sell trades the sword for its sell price and resets it to level zero. A
// level-zero sword has nothing to sell.
func (s *Service) Sell(ctx context.Context, req SellRequest) (*SellResponse, error) {
	if req.PlayerID == "" {
		return nil, ErrValidationFailed
	}
	if err := s.checkTimestamp(req.ClientTimeMS); err != nil {
		return nil, err
	}
	if _, err := s.store.GetOrCreatePlayer(ctx, req.PlayerID, req.Nickname, s.cfg.StartingGold); err != nil {
		return nil, err
	}
	sword, err := s.store.GetOrCreateSword(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	if sword.Level == 0 || req.Level != sword.Level {
		return nil, fmt.Errorf("%w: level", ErrValidationFailed)
	}
	price := game.SellPrice(sword.Level)
	gold, err := s.store.SellSword(ctx, req.PlayerID, sword.Level, price, store.NewID())
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &SellResponse{Price: price, Gold: gold}, nil
}

// Cooldowns reports the remaining reuse wait per cooldown-bearing item.
func (s *Service) Cooldowns(ctx context.Context, playerID string) (*CooldownsResponse, error) {
	if playerID == "" {
		return nil, ErrValidationFailed
	}
	if _, err := s.store.GetOrCreatePlayer(ctx, playerID, "", s.cfg.StartingGold); err != nil {
		return nil, err
	}
	stamps, err := s.store.ListCooldowns(ctx, playerID)
	if err != nil {
		return nil, err
	}
	serverNow := s.now()
	out := map[string]int64{}
	for itemType, spec := range game.Catalog {
		if spec.Cooldown == 0 {
			continue
		}
		remaining := cooldownRemaining(itemType, stamps, serverNow)
		out[itemType] = int64((remaining + time.Minute - 1) / time.Minute)
	}
	return &CooldownsResponse{RemainingMinutes: out}, nil
}

func (s *Service) checkTimestamp(clientMS int64) error {
	if clientMS == 0 {
		return fmt.Errorf("%w: timestamp", ErrValidationFailed)
	}
	tolerance := time.Duration(s.cfg.TimestampToleranceMS) * time.Millisecond
	diff := s.now().Sub(time.UnixMilli(clientMS))
	if diff < -tolerance || diff > tolerance {
		return fmt.Errorf("%w: timestamp", ErrValidationFailed)
	}
	return nil
}

// unlockMilestone records the achievement off the request path; a failure
// here never affects the attempt's response.
func (s *Service) unlockMilestone(playerID string, level int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.store.UnlockAchievement(ctx, playerID, level); err != nil {
			log.Warn().Err(err).Str("player_id", playerID).Int("level", level).Msg("achievement unlock failed")
		}
	}()
}

func selectedConsumables(req EnhanceRequest) []string {
	var items []string
	if req.UseDoubleChance {
		items = append(items, game.ItemDoubleChance)
	}
	if req.UseProtect {
		items = append(items, game.ItemProtect)
	}
	if req.UseDiscount {
		items = append(items, game.ItemDiscount)
	}
	if req.UseBlessing {
		items = append(items, game.ItemBlessingScroll)
	}
	return items
}

func cooldownRemaining(itemType string, stamps map[string]time.Time, now time.Time) time.Duration {
	d := game.CooldownFor(itemType)
	if d == 0 {
		return 0
	}
	last, ok := stamps[itemType]
	if !ok {
		return 0
	}
	remaining := d - now.Sub(last)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrInsufficientGold):
		return ErrInsufficientFunds
	case errors.Is(err, store.ErrInsufficientFragments):
		return ErrInsufficientFragments
	case errors.Is(err, store.ErrInsufficientItem):
		return fmt.Errorf("%w: %s", ErrInsufficientInventory, err)
	case errors.Is(err, store.ErrLevelConflict):
		return fmt.Errorf("%w: level", ErrValidationFailed)
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	}
	return err
}

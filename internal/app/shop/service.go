// Package shop sells consumables and fragment rolls against the catalog.
// Prices, caps, and payouts are server-side only; requests carry no amounts.
package shop

import (
	"context"
	"errors"
	"sort"
	"time"

	"sword-forge/internal/config"
	"sword-forge/internal/game"
	"sword-forge/internal/store"
)

type Service struct {
	store *store.Store
	cfg   config.ServerConfig
}

func NewService(st *store.Store, cfg config.ServerConfig) *Service {
	return &Service{store: st, cfg: cfg}
}

// Purchase buys one unit of a catalog item at its listed price, enforcing
// the per-item quantity cap.
func (s *Service) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResponse, error) {
	if req.PlayerID == "" {
		return nil, ErrValidationFailed
	}
	spec, ok := game.Catalog[req.ItemType]
	if !ok {
		return nil, ErrUnknownItem
	}
	if _, err := s.store.GetOrCreatePlayer(ctx, req.PlayerID, req.Nickname, s.cfg.StartingGold); err != nil {
		return nil, err
	}
	gold, qty, err := s.store.PurchaseItem(ctx, req.PlayerID, spec.Type, spec.PriceGold, spec.MaxQuantity, store.NewID())
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &PurchaseResponse{
		ItemType: spec.Type,
		Quantity: qty,
		Price:    spec.PriceGold,
		Gold:     gold,
	}, nil
}

// FragmentRoll trades a fixed gold price for a fixed fragment payout.
func (s *Service) FragmentRoll(ctx context.Context, req FragmentRollRequest) (*FragmentRollResponse, error) {
	if req.PlayerID == "" {
		return nil, ErrValidationFailed
	}
	if _, err := s.store.GetOrCreatePlayer(ctx, req.PlayerID, req.Nickname, s.cfg.StartingGold); err != nil {
		return nil, err
	}
	gold, fragments, err := s.store.ExchangeFragments(ctx, req.PlayerID, s.cfg.FragmentRollCostGold, s.cfg.FragmentRollYield, store.NewID())
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &FragmentRollResponse{
		Gained:    s.cfg.FragmentRollYield,
		Fragments: fragments,
		Gold:      gold,
	}, nil
}

// Listing returns the catalog sorted by item type.
func (s *Service) Listing() []CatalogItem {
	out := make([]CatalogItem, 0, len(game.Catalog))
	for _, spec := range game.Catalog {
		out = append(out, CatalogItem{
			ItemType:        spec.Type,
			Price:           spec.PriceGold,
			CooldownMinutes: int64(spec.Cooldown / time.Minute),
			MaxQuantity:     spec.MaxQuantity,
			Material:        spec.Material,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemType < out[j].ItemType })
	return out
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrInsufficientGold):
		return ErrInsufficientFunds
	case errors.Is(err, store.ErrItemLimit):
		return ErrItemLimit
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	}
	return err
}

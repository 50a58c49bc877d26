package shop

import (
	"context"
	"errors"
	"sort"
	"testing"

	"sword-forge/internal/config"
	"sword-forge/internal/game"
)

func TestPurchaseRejectsBadRequests(t *testing.T) {
	svc := NewService(nil, config.ServerConfig{})

	if _, err := svc.Purchase(context.Background(), PurchaseRequest{ItemType: game.ItemProtect}); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("empty player: err = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.Purchase(context.Background(), PurchaseRequest{PlayerID: "p1", ItemType: "excalibur"}); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("unknown item: err = %v, want ErrUnknownItem", err)
	}
}

func TestFragmentRollRejectsEmptyPlayer(t *testing.T) {
	svc := NewService(nil, config.ServerConfig{})
	if _, err := svc.FragmentRoll(context.Background(), FragmentRollRequest{}); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestListingCoversCatalogSorted(t *testing.T) {
	svc := NewService(nil, config.ServerConfig{})
	items := svc.Listing()
	if len(items) != len(game.Catalog) {
		t.Fatalf("listing has %d items, catalog has %d", len(items), len(game.Catalog))
	}
	if !sort.SliceIsSorted(items, func(i, j int) bool { return items[i].ItemType < items[j].ItemType }) {
		t.Fatalf("listing not sorted by item type")
	}
	for _, item := range items {
		spec := game.Catalog[item.ItemType]
		if item.Price != spec.PriceGold || item.MaxQuantity != spec.MaxQuantity {
			t.Fatalf("listing for %s diverges from catalog: %+v", item.ItemType, item)
		}
	}
}

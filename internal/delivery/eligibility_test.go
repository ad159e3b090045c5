package delivery_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/consign/internal/delivery"
	"github.com/dukerupert/consign/internal/domain"
)

func TestDefaultForceSingle(t *testing.T) {
	got := delivery.DefaultForceSingle([]domain.Warehouse{
		{Code: "WH1"},
		{Code: "WH2", MultipleShippingSupported: true},
	})
	assert.Equal(t, map[string]bool{"": true, "WH1": true, "WH2": false}, got)
}

func TestIsMultipleDeliveriesAllowed(t *testing.T) {
	f := newFixture(
		domain.Warehouse{Code: "SINGLE"},
		domain.Warehouse{Code: "MULTI", MultipleShippingSupported: true},
	).
		stock("SINGLE", "A", 10, domain.AvailabilityStandard).
		stock("SINGLE", "B", 0, domain.AvailabilityBackorder).
		stock("MULTI", "C", 10, domain.AvailabilityStandard).
		stock("MULTI", "D", 0, domain.AvailabilityBackorder).
		stock("MULTI", "EBOOK", 0, domain.AvailabilityAlways).
		digital("EBOOK")
	s := f.splitter()
	ctx := context.Background()

	tests := []struct {
		name  string
		items []domain.CartItem
		want  map[string]bool
	}{
		{
			name:  "empty cart",
			items: nil,
			want:  map[string]bool{},
		},
		{
			name:  "single shipping warehouse collapses",
			items: []domain.CartItem{item("A", 1), item("B", 1)},
			want:  map[string]bool{"SINGLE": false},
		},
		{
			name:  "multi shipping warehouse splits",
			items: []domain.CartItem{item("C", 1), item("D", 1)},
			want:  map[string]bool{"MULTI": true},
		},
		{
			name:  "non physical buckets do not count",
			items: []domain.CartItem{item("C", 1), item("EBOOK", 1), item("NOWHERE", 1)},
			want:  map[string]bool{"MULTI": false},
		},
		{
			name:  "mixed cart",
			items: []domain.CartItem{item("A", 1), item("B", 1), item("C", 1), item("D", 1)},
			want:  map[string]bool{"SINGLE": false, "MULTI": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.IsMultipleDeliveriesAllowed(ctx, testShop, tt.items)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A shop with one single-shipping warehouse can never produce more than one
// physical delivery for it, whatever the cart holds.
func TestIsMultipleDeliveriesAllowed_SingleWarehouseNeverSplits(t *testing.T) {
	f := newFixture(domain.Warehouse{Code: "WH1"})
	modes := []domain.AvailabilityMode{
		domain.AvailabilityStandard,
		domain.AvailabilityPreorder,
		domain.AvailabilityBackorder,
		domain.AvailabilityAlways,
		domain.AvailabilityShowroom,
	}

	var items []domain.CartItem
	for i, mode := range modes {
		for qty := int64(0); qty < 3; qty++ {
			sku := fmt.Sprintf("%s-%d", mode, qty)
			f.stock("WH1", sku, qty, mode)
			items = append(items, item(sku, int64(i%3)+1))
		}
	}
	f.digital("always-1")

	s := f.splitter()
	ctx := context.Background()

	for n := 1; n <= len(items); n++ {
		got, err := s.IsMultipleDeliveriesAllowed(ctx, testShop, items[:n])
		require.NoError(t, err)
		assert.False(t, got["WH1"], "with %d items", n)

		buckets, err := s.DetermineBucketsForItems(ctx, testShop, items[:n], delivery.DefaultForceSingle([]domain.Warehouse{{Code: "WH1"}}))
		require.NoError(t, err)
		assert.LessOrEqual(t, buckets.PhysicalCountBySupplier()["WH1"], 1)
	}
}

package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mock . WarehouseDirectory,InventoryLookup,DigitalGoodsLookup

// Warehouse is a fulfillment center (supplier) eligible for a shop.
type Warehouse struct {
	Code                      string
	Name                      string
	MultipleShippingSupported bool
}

// WarehouseDirectory lists the warehouses a shop may fulfill from.
type WarehouseDirectory interface {
	// ListForShop returns the shop's warehouses in rank order.
	// A shop without warehouses yields an empty slice, not an error.
	ListForShop(ctx context.Context, shopID uuid.UUID) ([]Warehouse, error)
}

// InventoryLookup finds stock records.
type InventoryLookup interface {
	// Find returns the record for sku at the supplier, or nil if the SKU is
	// not inventory-tracked there.
	Find(ctx context.Context, supplierCode, sku string) (*InventoryRecord, error)
}

// DigitalGoodsLookup reports whether a SKU belongs to a non-physical product.
type DigitalGoodsLookup interface {
	// IsDigital returns false for unknown SKUs.
	IsDigital(ctx context.Context, sku string) (bool, error)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock in UTC.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })

// FixedClock returns a clock frozen at t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

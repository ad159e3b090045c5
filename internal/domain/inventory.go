package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AvailabilityMode describes how a SKU may be sold from a warehouse.
type AvailabilityMode int

const (
	// AvailabilityStandard sells only while stock lasts.
	AvailabilityStandard AvailabilityMode = 1
	// AvailabilityPreorder sells stock ahead of the release date.
	AvailabilityPreorder AvailabilityMode = 2
	// AvailabilityBackorder sells beyond stock; shortfall ships later.
	AvailabilityBackorder AvailabilityMode = 4
	// AvailabilityAlways is perpetual stock (services, made to order).
	AvailabilityAlways AvailabilityMode = 8
	// AvailabilityShowroom is displayed but never sold.
	AvailabilityShowroom AvailabilityMode = 16
)

// String returns a lower-case name for logs and snapshots.
func (m AvailabilityMode) String() string {
	switch m {
	case AvailabilityStandard:
		return "standard"
	case AvailabilityPreorder:
		return "preorder"
	case AvailabilityBackorder:
		return "backorder"
	case AvailabilityAlways:
		return "always"
	case AvailabilityShowroom:
		return "showroom"
	default:
		return "unknown"
	}
}

// ParseAvailabilityMode maps a name produced by String back to a mode.
func ParseAvailabilityMode(s string) (AvailabilityMode, error) {
	for _, m := range []AvailabilityMode{
		AvailabilityStandard,
		AvailabilityPreorder,
		AvailabilityBackorder,
		AvailabilityAlways,
		AvailabilityShowroom,
	} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, Errorf(EINVALID, "inventory.parse_mode", "unknown availability mode: %q", s)
}

// InventoryRecord is the stock of one SKU at one warehouse.
type InventoryRecord struct {
	Supplier      string
	SKU           string
	Quantity      decimal.Decimal
	Reserved      decimal.Decimal
	Mode          AvailabilityMode
	Disabled      bool
	AvailableFrom *time.Time
	AvailableTo   *time.Time
	ReleaseDate   *time.Time
}

// IsAvailable reports whether the record is enabled and now falls inside
// its availability window. Both bounds are inclusive.
func (r *InventoryRecord) IsAvailable(now time.Time) bool {
	if r.Disabled {
		return false
	}
	if r.AvailableFrom != nil && now.Before(*r.AvailableFrom) {
		return false
	}
	if r.AvailableTo != nil && now.After(*r.AvailableTo) {
		return false
	}
	return true
}

// IsReleased reports whether the SKU has passed its release date.
func (r *InventoryRecord) IsReleased(now time.Time) bool {
	return r.ReleaseDate == nil || !now.Before(*r.ReleaseDate)
}

// AvailableToSell is on-hand quantity less reservations.
func (r *InventoryRecord) AvailableToSell() decimal.Decimal {
	return r.Quantity.Sub(r.Reserved)
}

// IsAvailableToSell reports whether required units can be taken from stock.
// In strict mode the request must be for a positive quantity and there must be
// positive stock left; otherwise only the comparison applies.
func (r *InventoryRecord) IsAvailableToSell(required decimal.Decimal, strict bool) bool {
	ats := r.AvailableToSell()
	if strict && (!required.IsPositive() || !ats.IsPositive()) {
		return false
	}
	return ats.GreaterThanOrEqual(required)
}

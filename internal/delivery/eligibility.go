package delivery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/consign/internal/domain"
)

// DefaultForceSingle returns the default single-delivery policy for a shop:
// the unassigned supplier always ships once, and each warehouse ships once
// unless it supports multiple shipments.
func DefaultForceSingle(warehouses []domain.Warehouse) map[string]bool {
	single := make(map[string]bool, len(warehouses)+1)
	single[""] = true
	for _, wh := range warehouses {
		single[wh.Code] = !wh.MultipleShippingSupported
	}
	return single
}

// IsMultipleDeliveriesAllowed reports, per supplier, whether items would ship
// as more than one physical delivery under the shop's default single-delivery
// policy. Suppliers holding only electronic, no-stock or offline items report
// false. The result is advisory; nothing is written back.
func (s *Splitter) IsMultipleDeliveriesAllowed(ctx context.Context, shopID uuid.UUID, items []domain.CartItem) (result map[string]bool, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveOperation(opMultiDelivery, started, err) }()

	if shopID == uuid.Nil {
		return nil, domain.ErrShopRequired
	}

	warehouses, err := s.directory.ListForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	buckets, err := s.determine(ctx, items, warehouses, DefaultForceSingle(warehouses))
	if err != nil {
		return nil, err
	}

	counts := buckets.PhysicalCountBySupplier()
	result = make(map[string]bool, len(counts))
	for supplier, n := range counts {
		result[supplier] = n > 1
	}

	s.logger.DebugContext(ctx, "multiple delivery eligibility determined",
		"shop_id", shopID,
		"items", len(items),
		"suppliers", len(result),
	)
	return result, nil
}

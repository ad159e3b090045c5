// Package delivery splits cart items into delivery buckets.
//
// Each item is classified against the shop's warehouses into a fulfillment
// group, items sharing a (group, supplier) pair share a bucket, and suppliers
// that can only ship once per order have their physical buckets folded into a
// single mixed delivery.
package delivery

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/consign/internal/domain"
	"github.com/dukerupert/consign/internal/telemetry"
)

// Operation names used for metrics and error ops.
const (
	opBuckets       = "buckets"
	opBucketForItem = "bucket_for_item"
	opMultiDelivery = "multi_delivery"
)

// Splitter computes delivery buckets. It holds no mutable state and is safe
// for concurrent use as long as its collaborators are.
type Splitter struct {
	directory domain.WarehouseDirectory
	inventory domain.InventoryLookup
	catalog   domain.DigitalGoodsLookup

	clock   domain.Clock
	logger  *slog.Logger
	metrics *telemetry.AllocationMetrics
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithClock sets the clock used for availability windows and release dates.
func WithClock(clock domain.Clock) Option {
	return func(s *Splitter) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger sets the logger. Computations are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Splitter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics enables allocation metrics.
func WithMetrics(metrics *telemetry.AllocationMetrics) Option {
	return func(s *Splitter) {
		s.metrics = metrics
	}
}

// NewSplitter creates a Splitter reading from the given collaborators.
func NewSplitter(directory domain.WarehouseDirectory, inventory domain.InventoryLookup, catalog domain.DigitalGoodsLookup, opts ...Option) *Splitter {
	s := &Splitter{
		directory: directory,
		inventory: inventory,
		catalog:   catalog,
		clock:     domain.SystemClock,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DetermineBucketsForItems classifies every item against the shop's
// warehouses, groups them by bucket and consolidates suppliers flagged in
// forceSingle. A nil forceSingle forces nothing.
func (s *Splitter) DetermineBucketsForItems(ctx context.Context, shopID uuid.UUID, items []domain.CartItem, forceSingle map[string]bool) (result Buckets, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveOperation(opBuckets, started, err) }()

	if shopID == uuid.Nil {
		return nil, domain.ErrShopRequired
	}

	warehouses, err := s.directory.ListForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	result, err = s.determine(ctx, items, warehouses, forceSingle)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "delivery buckets determined",
		"shop_id", shopID,
		"items", len(items),
		"warehouses", len(warehouses),
		"buckets", len(result),
	)
	return result, nil
}

// DetermineBucketForItem returns the bucket item falls into within cart.
//
// An item that already carries a bucket keeps it; otherwise it is classified
// against the cart shop's warehouses. The cart's existing assignments are then
// regrouped around the item and consolidated using the cart's delivery
// preferences, so the result may be a MIX bucket.
func (s *Splitter) DetermineBucketForItem(ctx context.Context, item domain.CartItem, cart *domain.Cart) (result domain.DeliveryBucket, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveOperation(opBucketForItem, started, err) }()

	if cart == nil {
		return domain.DeliveryBucket{}, domain.Invalid(opBucketForItem, "cart is required")
	}

	info := cart.OrderInfo
	forceSingle := make(map[string]bool, len(info.MultipleDeliveryAvailable)+1)
	for supplier, available := range info.MultipleDeliveryAvailable {
		forceSingle[supplier] = !info.MultipleDelivery || !available
	}

	var itemBucket domain.DeliveryBucket
	if item.DeliveryBucket != nil {
		itemBucket = *item.DeliveryBucket
	} else {
		if cart.ShopID == uuid.Nil {
			return domain.DeliveryBucket{}, domain.ErrShopRequired
		}

		warehouses, err := s.directory.ListForShop(ctx, cart.ShopID)
		if err != nil {
			return domain.DeliveryBucket{}, err
		}

		bucket, fallback, err := s.classify(ctx, item, warehouses, s.clock.Now())
		if err != nil {
			return domain.DeliveryBucket{}, err
		}
		s.metrics.RecordClassification(bucket.Group, fallback)
		itemBucket = bucket

		multiple := false
		for _, wh := range warehouses {
			if wh.Code == bucket.Supplier {
				multiple = wh.MultipleShippingSupported
				break
			}
		}
		forceSingle[bucket.Supplier] = !info.MultipleDelivery || !multiple
	}

	regrouped := make(Buckets)
	for _, ci := range cart.Items {
		switch {
		case ci.SameLine(item):
			regrouped.Add(itemBucket, ci)
		case ci.DeliveryBucket != nil:
			regrouped.Add(*ci.DeliveryBucket, ci)
		}
	}

	consolidated, merged := consolidate(regrouped, forceSingle)
	s.recordConsolidation(ctx, merged)

	result = itemBucket
	if found, ok := consolidated.Find(item); ok {
		result = found
	}

	s.logger.DebugContext(ctx, "delivery bucket determined for item",
		"shop_id", cart.ShopID,
		"sku", item.SKU,
		"gift", item.Gift,
		"bucket", result.String(),
	)
	return result, nil
}

// determine assigns items to buckets and consolidates them.
func (s *Splitter) determine(ctx context.Context, items []domain.CartItem, warehouses []domain.Warehouse, forceSingle map[string]bool) (Buckets, error) {
	now := s.clock.Now()

	raw := make(Buckets)
	for _, item := range items {
		bucket, fallback, err := s.classify(ctx, item, warehouses, now)
		if err != nil {
			return nil, err
		}
		s.metrics.RecordClassification(bucket.Group, fallback)
		raw.Add(bucket, item)
	}

	result, merged := consolidate(raw, forceSingle)
	s.recordConsolidation(ctx, merged)
	for bucket := range result {
		s.metrics.RecordBucket(bucket)
	}
	return result, nil
}

func (s *Splitter) recordConsolidation(ctx context.Context, merged map[string]int) {
	for supplier, n := range merged {
		s.metrics.RecordConsolidation(supplier, n)
		s.logger.DebugContext(ctx, "physical deliveries consolidated", "supplier", supplier, "buckets", n)
	}
}

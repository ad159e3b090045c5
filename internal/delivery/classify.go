package delivery

import (
	"context"
	"strings"
	"time"

	"github.com/dukerupert/consign/internal/domain"
)

// candidates returns the warehouses to search for an item, in search order.
// A pinned supplier known to the shop is searched alone; a blank or unknown
// pin searches every shop warehouse.
func candidates(warehouses []domain.Warehouse, pinned string) []domain.Warehouse {
	if strings.TrimSpace(pinned) != "" {
		for _, wh := range warehouses {
			if wh.Code == pinned {
				return []domain.Warehouse{wh}
			}
		}
	}
	return warehouses
}

// evaluate classifies an item against the stock record of one warehouse.
// The second result is false when the outcome is tentative and the search
// should move on to the next warehouse.
func evaluate(record *domain.InventoryRecord, item domain.CartItem, digital bool, now time.Time) (domain.FulfillmentGroup, bool) {
	if record == nil {
		return domain.GroupNoStock, false
	}

	if record.Mode == domain.AvailabilityShowroom || !record.IsAvailable(now) {
		return domain.GroupOffline, false
	}

	// Digital goods are not gated by quantity.
	if digital {
		return domain.GroupElectronic, true
	}

	notYetReleased := !record.IsReleased(now)
	backorder := record.Mode == domain.AvailabilityBackorder
	always := record.Mode == domain.AvailabilityAlways

	if notYetReleased && (backorder || always) {
		return domain.GroupDateWait, true
	}

	if always || record.IsAvailableToSell(item.Quantity, false) {
		if notYetReleased {
			return domain.GroupDateWait, true
		}
		return domain.GroupStandard, true
	}

	if backorder {
		return domain.GroupInventoryWait, true
	}

	return domain.GroupNoStock, false
}

// classify searches the candidate warehouses for item and returns the first
// conclusive bucket. When no warehouse is conclusive the last tentative
// result wins. With no tentative result at all the item is NOSTOCK against
// its pinned supplier, or against no supplier.
//
// The second result reports whether the bucket came from a tentative result.
func (s *Splitter) classify(ctx context.Context, item domain.CartItem, warehouses []domain.Warehouse, now time.Time) (domain.DeliveryBucket, bool, error) {
	digital, err := s.catalog.IsDigital(ctx, item.SKU)
	if err != nil {
		return domain.DeliveryBucket{}, false, err
	}

	var last *domain.DeliveryBucket
	for _, wh := range candidates(warehouses, item.SupplierCode) {
		record, err := s.inventory.Find(ctx, wh.Code, item.SKU)
		if err != nil {
			return domain.DeliveryBucket{}, false, err
		}

		group, conclusive := evaluate(record, item, digital, now)
		bucket := domain.NewDeliveryBucket(group, wh.Code)
		if conclusive {
			return bucket, false, nil
		}
		last = &bucket
	}

	if last == nil {
		supplier := ""
		if strings.TrimSpace(item.SupplierCode) != "" {
			supplier = item.SupplierCode
		}
		return domain.NewDeliveryBucket(domain.GroupNoStock, supplier), true, nil
	}
	return *last, true, nil
}

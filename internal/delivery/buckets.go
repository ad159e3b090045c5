package delivery

import (
	"slices"

	"github.com/dukerupert/consign/internal/domain"
)

// Buckets maps each delivery bucket to the cart items that share it.
// Items keep their insertion order within a bucket. Use Keys for any
// output that must be deterministic.
type Buckets map[domain.DeliveryBucket][]domain.CartItem

// Add appends item to bucket.
func (b Buckets) Add(bucket domain.DeliveryBucket, items ...domain.CartItem) {
	b[bucket] = append(b[bucket], items...)
}

// Keys returns the buckets ordered by group label, then supplier.
func (b Buckets) Keys() []domain.DeliveryBucket {
	keys := make([]domain.DeliveryBucket, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, domain.DeliveryBucket.Compare)
	return keys
}

// Count returns the number of items across all buckets.
func (b Buckets) Count() int {
	n := 0
	for _, items := range b {
		n += len(items)
	}
	return n
}

// PhysicalCountBySupplier returns, per supplier, how many buckets would ship
// as a parcel. Every supplier present in b has an entry, possibly zero.
func (b Buckets) PhysicalCountBySupplier() map[string]int {
	counts := make(map[string]int, len(b))
	for k := range b {
		if k.Group.IsPhysical() {
			counts[k.Supplier]++
		} else if _, ok := counts[k.Supplier]; !ok {
			counts[k.Supplier] = 0
		}
	}
	return counts
}

// Find returns the first bucket, in Keys order, holding a line matching item.
func (b Buckets) Find(item domain.CartItem) (domain.DeliveryBucket, bool) {
	for _, k := range b.Keys() {
		for _, ci := range b[k] {
			if ci.SameLine(item) {
				return k, true
			}
		}
	}
	return domain.DeliveryBucket{}, false
}

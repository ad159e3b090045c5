package delivery

import (
	"github.com/dukerupert/consign/internal/domain"
)

// Consolidate folds the physical buckets of every supplier that must ship once
// per order into a single MIX bucket for that supplier. A supplier is folded
// only when forceSingle[supplier] is true and it has more than one physical
// bucket. Electronic, no-stock and offline buckets are left alone.
//
// The input is not modified. Items in a MIX bucket follow the Keys order of
// the buckets they came from.
func Consolidate(buckets Buckets, forceSingle map[string]bool) Buckets {
	out, _ := consolidate(buckets, forceSingle)
	return out
}

// consolidate also reports how many buckets were merged per supplier.
func consolidate(buckets Buckets, forceSingle map[string]bool) (Buckets, map[string]int) {
	physical := buckets.PhysicalCountBySupplier()

	out := make(Buckets, len(buckets))
	merged := make(map[string]int)

	for _, k := range buckets.Keys() {
		items := buckets[k]
		if forceSingle[k.Supplier] && physical[k.Supplier] > 1 && k.Group.IsPhysical() {
			out.Add(domain.NewDeliveryBucket(domain.GroupMix, k.Supplier), items...)
			merged[k.Supplier]++
			continue
		}
		out.Add(k, items...)
	}

	return out, merged
}

package domain

import (
	"cmp"
	"fmt"
	"strings"
)

// FulfillmentGroup labels how a cart item will be fulfilled.
// The set is closed; labels sort in delivery priority order.
type FulfillmentGroup string

const (
	// GroupStandard is a physical good in stock and released.
	GroupStandard FulfillmentGroup = "D1"

	// GroupDateWait is a preorder that is sellable but not yet released.
	GroupDateWait FulfillmentGroup = "D2"

	// GroupInventoryWait is a backorder awaiting stock.
	GroupInventoryWait FulfillmentGroup = "D3"

	// GroupElectronic is a digital good with no physical shipment.
	GroupElectronic FulfillmentGroup = "D4"

	// GroupMix is produced only by consolidation, never by classification.
	GroupMix FulfillmentGroup = "D5"

	// GroupOffline is tracked inventory that cannot be sold right now.
	GroupOffline FulfillmentGroup = "D6"

	// GroupNoStock means no candidate warehouse can fulfill the item.
	GroupNoStock FulfillmentGroup = "D7"
)

var groupNames = map[FulfillmentGroup]string{
	GroupStandard:      "STANDARD",
	GroupDateWait:      "DATE_WAIT",
	GroupInventoryWait: "INVENTORY_WAIT",
	GroupElectronic:    "ELECTRONIC",
	GroupMix:           "MIX",
	GroupOffline:       "OFFLINE",
	GroupNoStock:       "NOSTOCK",
}

// FulfillmentGroups returns every group in label order.
func FulfillmentGroups() []FulfillmentGroup {
	return []FulfillmentGroup{
		GroupStandard,
		GroupDateWait,
		GroupInventoryWait,
		GroupElectronic,
		GroupMix,
		GroupOffline,
		GroupNoStock,
	}
}

// Valid reports whether g is one of the known groups.
func (g FulfillmentGroup) Valid() bool {
	_, ok := groupNames[g]
	return ok
}

// Name returns the upper-case name of the group, e.g. "INVENTORY_WAIT".
func (g FulfillmentGroup) Name() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsPhysical reports whether the group results in a parcel leaving a warehouse.
// Electronic, no-stock and offline items never count towards a supplier's
// physical deliveries and are never merged into a mixed delivery.
func (g FulfillmentGroup) IsPhysical() bool {
	switch g {
	case GroupElectronic, GroupNoStock, GroupOffline:
		return false
	case GroupStandard, GroupDateWait, GroupInventoryWait, GroupMix:
		return true
	default:
		return false
	}
}

// ParseFulfillmentGroup accepts either a label ("D3") or a name ("INVENTORY_WAIT").
func ParseFulfillmentGroup(s string) (FulfillmentGroup, error) {
	s = strings.TrimSpace(s)
	if g := FulfillmentGroup(strings.ToUpper(s)); g.Valid() {
		return g, nil
	}
	for g, name := range groupNames {
		if strings.EqualFold(name, s) {
			return g, nil
		}
	}
	return "", WrapError(ErrUnknownGroup, EINVALID, "bucket.parse", fmt.Sprintf("unknown fulfillment group: %q", s))
}

// DeliveryBucket identifies one logical shipment: a fulfillment group from a supplier.
// It is a comparable value and is used directly as a map key.
type DeliveryBucket struct {
	Group    FulfillmentGroup
	Supplier string
}

// NewDeliveryBucket returns the bucket for group and supplier.
func NewDeliveryBucket(group FulfillmentGroup, supplier string) DeliveryBucket {
	return DeliveryBucket{Group: group, Supplier: supplier}
}

// Compare orders buckets by group label, then supplier code.
func (b DeliveryBucket) Compare(other DeliveryBucket) int {
	if c := cmp.Compare(b.Group, other.Group); c != 0 {
		return c
	}
	return cmp.Compare(b.Supplier, other.Supplier)
}

// String renders the bucket as "group|supplier".
func (b DeliveryBucket) String() string {
	return string(b.Group) + "|" + b.Supplier
}

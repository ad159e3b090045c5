package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// CART DOMAIN TYPES
// =============================================================================
// The cart is owned by the storefront. The fulfillment engine only reads it.

// Cart is a snapshot of a shopping cart for one shop.
type Cart struct {
	ShopID    uuid.UUID
	Items     []CartItem
	OrderInfo OrderInfo
}

// OrderInfo carries the delivery preferences recorded on the cart.
type OrderInfo struct {
	// MultipleDelivery is the customer's choice to receive items as separate shipments.
	MultipleDelivery bool

	// MultipleDeliveryAvailable is the last eligibility result, keyed by supplier code.
	MultipleDeliveryAvailable map[string]bool
}

// CartItem is a single cart line.
type CartItem struct {
	SKU         string
	ProductName string
	Quantity    decimal.Decimal
	Gift        bool

	// SupplierCode pins the line to a warehouse. Blank means resolve automatically.
	SupplierCode string

	// DeliveryBucket is the bucket assigned by a previous computation, if any.
	DeliveryBucket *DeliveryBucket
}

// SameLine reports whether two items refer to the same cart line: the same SKU
// with the same gift flag. Quantity and name are irrelevant.
func (i CartItem) SameLine(other CartItem) bool {
	return i.SKU == other.SKU && i.Gift == other.Gift
}

// Contains reports whether the cart holds a line matching item.
func (c *Cart) Contains(item CartItem) bool {
	for _, ci := range c.Items {
		if ci.SameLine(item) {
			return true
		}
	}
	return false
}

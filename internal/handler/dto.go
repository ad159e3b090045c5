package handler

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/consign/internal/delivery"
	"github.com/dukerupert/consign/internal/domain"
)

// =============================================================================
// Requests
// =============================================================================

// CartItemDTO is a cart line on the wire.
type CartItemDTO struct {
	SKU            string          `json:"sku" validate:"required"`
	ProductName    string          `json:"product_name,omitempty"`
	Quantity       decimal.Decimal `json:"quantity" validate:"gte=0"`
	Gift           bool            `json:"gift,omitempty"`
	SupplierCode   string          `json:"supplier_code,omitempty"`
	DeliveryBucket *BucketDTO      `json:"delivery_bucket,omitempty"`
}

// BucketDTO is a delivery bucket on the wire. Group accepts a label ("D1")
// or a name ("STANDARD"); replies always carry both.
type BucketDTO struct {
	Group     string `json:"group" validate:"required,fulfillment_group"`
	GroupName string `json:"group_name,omitempty"`
	Supplier  string `json:"supplier"`
}

// CartDTO is the cart context for a single-item request.
type CartDTO struct {
	ShopID                    string          `json:"shop_id" validate:"required,uuid"`
	Items                     []CartItemDTO   `json:"items" validate:"dive"`
	MultipleDelivery          bool            `json:"multiple_delivery"`
	MultipleDeliveryAvailable map[string]bool `json:"multiple_delivery_available,omitempty"`
}

// DetermineBucketsRequest is the body of SubjectDetermineBuckets.
type DetermineBucketsRequest struct {
	ShopID      string          `json:"shop_id" validate:"required,uuid"`
	Items       []CartItemDTO   `json:"items" validate:"dive"`
	ForceSingle map[string]bool `json:"force_single,omitempty"`
}

// BucketForItemRequest is the body of SubjectBucketForItem.
type BucketForItemRequest struct {
	Cart CartDTO     `json:"cart"`
	Item CartItemDTO `json:"item"`
}

// MultipleDeliveryRequest is the body of SubjectMultipleDelivery.
type MultipleDeliveryRequest struct {
	ShopID string        `json:"shop_id" validate:"required,uuid"`
	Items  []CartItemDTO `json:"items" validate:"dive"`
}

// =============================================================================
// Responses
// =============================================================================

// BucketItemsDTO is one bucket with the items assigned to it.
type BucketItemsDTO struct {
	BucketDTO
	Items []CartItemDTO `json:"items"`
}

// DetermineBucketsResponse lists buckets in group label, then supplier order.
type DetermineBucketsResponse struct {
	Buckets []BucketItemsDTO `json:"buckets"`
}

// MultipleDeliveryResponse maps supplier codes to whether they would ship
// more than once.
type MultipleDeliveryResponse struct {
	Suppliers map[string]bool `json:"suppliers"`
}

// =============================================================================
// Mapping
// =============================================================================

func (d CartItemDTO) toDomain() domain.CartItem {
	item := domain.CartItem{
		SKU:          d.SKU,
		ProductName:  d.ProductName,
		Quantity:     d.Quantity,
		Gift:         d.Gift,
		SupplierCode: d.SupplierCode,
	}
	if d.DeliveryBucket != nil {
		b := d.DeliveryBucket.toDomain()
		item.DeliveryBucket = &b
	}
	return item
}

// toDomain assumes the group passed validation.
func (d BucketDTO) toDomain() domain.DeliveryBucket {
	group, _ := domain.ParseFulfillmentGroup(d.Group)
	return domain.NewDeliveryBucket(group, d.Supplier)
}

func itemsToDomain(items []CartItemDTO) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	for i, it := range items {
		out[i] = it.toDomain()
	}
	return out
}

func (d CartDTO) toDomain() *domain.Cart {
	return &domain.Cart{
		ShopID: uuid.MustParse(d.ShopID),
		Items:  itemsToDomain(d.Items),
		OrderInfo: domain.OrderInfo{
			MultipleDelivery:          d.MultipleDelivery,
			MultipleDeliveryAvailable: d.MultipleDeliveryAvailable,
		},
	}
}

func bucketFromDomain(b domain.DeliveryBucket) BucketDTO {
	return BucketDTO{
		Group:     string(b.Group),
		GroupName: b.Group.Name(),
		Supplier:  b.Supplier,
	}
}

func itemFromDomain(item domain.CartItem) CartItemDTO {
	dto := CartItemDTO{
		SKU:          item.SKU,
		ProductName:  item.ProductName,
		Quantity:     item.Quantity,
		Gift:         item.Gift,
		SupplierCode: item.SupplierCode,
	}
	if item.DeliveryBucket != nil {
		b := bucketFromDomain(*item.DeliveryBucket)
		dto.DeliveryBucket = &b
	}
	return dto
}

func bucketsFromDomain(buckets delivery.Buckets) DetermineBucketsResponse {
	resp := DetermineBucketsResponse{Buckets: make([]BucketItemsDTO, 0, len(buckets))}
	for _, k := range buckets.Keys() {
		items := buckets[k]
		dtos := make([]CartItemDTO, len(items))
		for i, it := range items {
			dtos[i] = itemFromDomain(it)
		}
		resp.Buckets = append(resp.Buckets, BucketItemsDTO{
			BucketDTO: bucketFromDomain(k),
			Items:     dtos,
		})
	}
	return resp
}

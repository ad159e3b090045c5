// Package domain provides the core fulfillment types, collaborator contracts,
// error codes and context helpers shared by every other package.
package domain

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	// shopContextKey stores the shop a computation runs for.
	shopContextKey contextKey = iota

	// requestIDContextKey stores the request ID for tracing.
	requestIDContextKey
)

// NewContextWithShopID returns a new context with the shop ID attached.
func NewContextWithShopID(ctx context.Context, shopID uuid.UUID) context.Context {
	return context.WithValue(ctx, shopContextKey, shopID)
}

// ShopIDFromContext retrieves the shop ID from context.
// Returns uuid.Nil if no shop is present.
func ShopIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(shopContextKey).(uuid.UUID)
	return id
}

// NewContextWithRequestID returns a new context with the request ID attached.
func NewContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if no request ID is present.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDContextKey).(string)
	return requestID
}

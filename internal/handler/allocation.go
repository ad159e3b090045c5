// Package handler exposes the bucket allocation operations as JSON
// request/reply endpoints keyed by NATS subject.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dukerupert/consign/internal/delivery"
	"github.com/dukerupert/consign/internal/domain"
	"github.com/dukerupert/consign/internal/telemetry"
)

// Request subjects.
const (
	SubjectDetermineBuckets = "fulfillment.buckets.determine"
	SubjectBucketForItem    = "fulfillment.bucket.item"
	SubjectMultipleDelivery = "fulfillment.multidelivery.allowed"
)

// Splitter is the allocation engine behind the handler.
type Splitter interface {
	DetermineBucketsForItems(ctx context.Context, shopID uuid.UUID, items []domain.CartItem, forceSingle map[string]bool) (delivery.Buckets, error)
	DetermineBucketForItem(ctx context.Context, item domain.CartItem, cart *domain.Cart) (domain.DeliveryBucket, error)
	IsMultipleDeliveriesAllowed(ctx context.Context, shopID uuid.UUID, items []domain.CartItem) (map[string]bool, error)
}

var _ Splitter = (*delivery.Splitter)(nil)

// route decodes a request body, runs it and returns the reply value. The
// shop ID is returned even on failure when the body named one.
type route func(ctx context.Context, data []byte) (interface{}, uuid.UUID, error)

// AllocationHandler serves allocation requests.
type AllocationHandler struct {
	splitter Splitter
	validate *validator.Validate
	logger   *slog.Logger
	metrics  *telemetry.AllocationMetrics
	timeout  time.Duration
	routes   map[string]route
}

// NewAllocationHandler creates a handler. A zero timeout leaves request
// deadlines to the caller's context; metrics may be nil.
func NewAllocationHandler(splitter Splitter, logger *slog.Logger, metrics *telemetry.AllocationMetrics, timeout time.Duration) *AllocationHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &AllocationHandler{
		splitter: splitter,
		validate: newValidator(),
		logger:   logger,
		metrics:  metrics,
		timeout:  timeout,
	}
	h.routes = map[string]route{
		SubjectDetermineBuckets: h.determineBuckets,
		SubjectBucketForItem:    h.bucketForItem,
		SubjectMultipleDelivery: h.multipleDelivery,
	}
	return h
}

// Subjects returns the subjects the handler answers, sorted.
func (h *AllocationHandler) Subjects() []string {
	subjects := make([]string, 0, len(h.routes))
	for s := range h.routes {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}

// Serve handles one request and returns the encoded reply. Failures are
// encoded as an ErrorEnvelope, panics included; Serve itself never fails.
func (h *AllocationHandler) Serve(ctx context.Context, subject string, data []byte) (reply []byte) {
	started := time.Now()
	defer func() {
		if p := recover(); p != nil {
			err := domain.Internal(fmt.Errorf("panic: %v", p), "handler.serve", "request panicked")
			h.metrics.RecordRequest(subject, err)
			h.logger.ErrorContext(ctx, "panic recovered",
				"subject", subject,
				"error", p,
				"stack", string(debug.Stack()),
			)
			telemetry.CaptureError(ctx, err, map[string]interface{}{"subject": subject})
			reply = ErrorReply(err)
		}
	}()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	r, ok := h.routes[subject]
	if !ok {
		err := domain.NotFound("handler.serve", "subject", subject)
		h.metrics.RecordRequest(subject, err)
		h.logger.WarnContext(ctx, "unknown subject", "subject", subject)
		return ErrorReply(err)
	}

	resp, shopID, err := r(ctx, data)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && !domain.IsCode(err, domain.ETIMEOUT) {
		err = domain.WrapError(err, domain.ETIMEOUT, "handler.serve", "request timed out")
	}
	h.metrics.RecordRequest(subject, err)

	if shopID != uuid.Nil {
		ctx = domain.NewContextWithShopID(ctx, shopID)
	}
	attrs := []any{
		"subject", subject,
		"request_id", domain.RequestIDFromContext(ctx),
		"duration_ms", time.Since(started).Milliseconds(),
	}
	if shopID != uuid.Nil {
		attrs = append(attrs, "shop_id", shopID.String())
	}

	if err != nil {
		attrs = append(attrs, "error", err, "code", domain.ErrorCode(err))
		if isServerError(err) {
			h.logger.ErrorContext(ctx, "allocation request failed", attrs...)
			telemetry.CaptureError(ctx, err, map[string]interface{}{"subject": subject})
		} else {
			h.logger.InfoContext(ctx, "allocation request rejected", attrs...)
		}
		return ErrorReply(err)
	}

	out, err := json.Marshal(resp)
	if err != nil {
		err = domain.Internal(err, "handler.serve", "failed to encode reply")
		h.logger.ErrorContext(ctx, "allocation reply encoding failed", append(attrs, "error", err)...)
		return ErrorReply(err)
	}

	h.logger.DebugContext(ctx, "allocation request served", attrs...)
	return out
}

// decode unmarshals and validates a request body.
func (h *AllocationHandler) decode(op string, data []byte, req interface{}) error {
	if err := json.Unmarshal(data, req); err != nil {
		return domain.WrapError(err, domain.EINVALID, op, "malformed JSON request")
	}
	return validateRequest(h.validate, op, req)
}

func (h *AllocationHandler) determineBuckets(ctx context.Context, data []byte) (interface{}, uuid.UUID, error) {
	const op = "handler.determine_buckets"

	var req DetermineBucketsRequest
	if err := h.decode(op, data, &req); err != nil {
		return nil, uuid.Nil, err
	}
	shopID := uuid.MustParse(req.ShopID)

	buckets, err := h.splitter.DetermineBucketsForItems(ctx, shopID, itemsToDomain(req.Items), req.ForceSingle)
	if err != nil {
		return nil, shopID, err
	}
	return bucketsFromDomain(buckets), shopID, nil
}

func (h *AllocationHandler) bucketForItem(ctx context.Context, data []byte) (interface{}, uuid.UUID, error) {
	const op = "handler.bucket_for_item"

	var req BucketForItemRequest
	if err := h.decode(op, data, &req); err != nil {
		return nil, uuid.Nil, err
	}
	cart := req.Cart.toDomain()

	bucket, err := h.splitter.DetermineBucketForItem(ctx, req.Item.toDomain(), cart)
	if err != nil {
		return nil, cart.ShopID, err
	}
	return bucketFromDomain(bucket), cart.ShopID, nil
}

func (h *AllocationHandler) multipleDelivery(ctx context.Context, data []byte) (interface{}, uuid.UUID, error) {
	const op = "handler.multiple_delivery"

	var req MultipleDeliveryRequest
	if err := h.decode(op, data, &req); err != nil {
		return nil, uuid.Nil, err
	}
	shopID := uuid.MustParse(req.ShopID)

	allowed, err := h.splitter.IsMultipleDeliveriesAllowed(ctx, shopID, itemsToDomain(req.Items))
	if err != nil {
		return nil, shopID, err
	}
	return MultipleDeliveryResponse{Suppliers: allowed}, shopID, nil
}

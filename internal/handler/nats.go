package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/dukerupert/consign/internal/domain"
)

// RequestIDHeader carries the caller's request ID on NATS messages.
const RequestIDHeader = "X-Request-ID"

// HandleMsg serves a NATS request. Messages without a reply subject are
// processed and their replies dropped.
func (h *AllocationHandler) HandleMsg(msg *nats.Msg) {
	requestID := msg.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx := domain.NewContextWithRequestID(context.Background(), requestID)

	reply := h.Serve(ctx, msg.Subject, msg.Data)
	if msg.Reply == "" {
		return
	}

	out := nats.NewMsg(msg.Reply)
	out.Header.Set(RequestIDHeader, requestID)
	out.Data = reply
	if err := msg.RespondMsg(out); err != nil {
		h.logger.ErrorContext(ctx, "failed to send reply",
			"subject", msg.Subject,
			"request_id", requestID,
			"error", err,
		)
	}
}

// Subscribe registers h on every subject it serves. A non-empty queue
// spreads requests across service instances. Subscriptions made before a
// failure are drained before returning the error.
func Subscribe(nc *nats.Conn, queue string, h *AllocationHandler) ([]*nats.Subscription, error) {
	subs := make([]*nats.Subscription, 0, len(h.routes))
	for _, subject := range h.Subjects() {
		var (
			sub *nats.Subscription
			err error
		)
		if queue != "" {
			sub, err = nc.QueueSubscribe(subject, queue, h.HandleMsg)
		} else {
			sub, err = nc.Subscribe(subject, h.HandleMsg)
		}
		if err != nil {
			for _, s := range subs {
				_ = s.Drain()
			}
			return nil, domain.WrapError(err, domain.EUNAVAILABLE, "handler.subscribe", "failed to subscribe to "+subject)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

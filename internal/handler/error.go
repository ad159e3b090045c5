package handler

import (
	"encoding/json"
	"errors"

	"github.com/dukerupert/consign/internal/domain"
)

// ErrorBody is the error half of every reply.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorEnvelope wraps ErrorBody as {"error": {...}}.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// fieldError is an EINVALID error that carries per-field messages.
type fieldError struct {
	err    *domain.Error
	fields map[string]string
}

func (e *fieldError) Error() string { return e.err.Error() }
func (e *fieldError) Unwrap() error { return e.err }

// ErrorReply encodes err as an error envelope. Internal errors are reported
// with a generic message; their details stay in the logs.
func ErrorReply(err error) []byte {
	body := ErrorBody{
		Code:    domain.ErrorCode(err),
		Message: domain.ErrorMessage(err),
	}
	var fe *fieldError
	if errors.As(err, &fe) {
		body.Fields = fe.fields
	}

	data, mErr := json.Marshal(ErrorEnvelope{Error: body})
	if mErr != nil {
		return []byte(`{"error":{"code":"internal","message":"An internal error occurred. Please try again later."}}`)
	}
	return data
}

// isServerError reports whether err should be logged at error level and
// sent to Sentry.
func isServerError(err error) bool {
	switch domain.ErrorCode(err) {
	case domain.EINTERNAL, domain.EUNAVAILABLE, domain.ETIMEOUT:
		return true
	default:
		return false
	}
}

package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      &Error{Code: EINVALID, Message: "invalid input"},
			expected: "invalid input",
		},
		{
			name:     "with operation",
			err:      &Error{Code: EINVALID, Op: "handler.determine", Message: "invalid input"},
			expected: "handler.determine: invalid input",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "inventory.find",
				Message: "failed to load inventory",
				Err:     errors.New("connection refused"),
			},
			expected: "inventory.find: failed to load inventory: connection refused",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to load inventory",
				Err:     errors.New("connection refused"),
			},
			expected: "failed to load inventory: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := Internal(underlying, "warehouse.list", "failed to list warehouses")

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "domain error", err: ErrShopRequired, expected: EINVALID},
		{name: "wrapped domain error", err: fmt.Errorf("wrapped: %w", NotFound("shop.get", "shop", "x")), expected: ENOTFOUND},
		{name: "non-domain error", err: errors.New("boom"), expected: EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "domain error", err: ErrUnknownGroup, expected: "Unknown fulfillment group"},
		{
			name:     "internal error hides message",
			err:      Internal(errors.New("dsn leaked"), "inventory.find", "failed to query sku_warehouse"),
			expected: "An internal error occurred. Please try again later.",
		},
		{
			name:     "non-domain error returns generic message",
			err:      errors.New("some internal detail"),
			expected: "An internal error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorOp(t *testing.T) {
	if got := ErrorOp(Invalid("handler.determine", "bad")); got != "handler.determine" {
		t.Errorf("ErrorOp() = %q, want %q", got, "handler.determine")
	}
	if got := ErrorOp(errors.New("plain")); got != "" {
		t.Errorf("ErrorOp() = %q, want empty", got)
	}
}

func TestWrapError(t *testing.T) {
	t.Run("wraps non-nil error", func(t *testing.T) {
		underlying := errors.New("db error")
		err := WrapError(underlying, EUNAVAILABLE, "catalog.is_digital", "catalog unavailable")

		if !IsCode(err, EUNAVAILABLE) {
			t.Errorf("code = %q, want %q", ErrorCode(err), EUNAVAILABLE)
		}
		if !errors.Is(err, underlying) {
			t.Error("should wrap underlying error")
		}
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		if err := WrapError(nil, EINTERNAL, "test", "test"); err != nil {
			t.Errorf("WrapError(nil) should return nil, got %v", err)
		}
	})
}

func TestErrorf(t *testing.T) {
	err := Errorf(EINVALID, "bucket.parse", "unknown group: %s", "D9")

	var domainErr *Error
	if !errors.As(err, &domainErr) {
		t.Fatal("Errorf should return *Error")
	}
	if domainErr.Message != "unknown group: D9" {
		t.Errorf("Message = %q, want %q", domainErr.Message, "unknown group: D9")
	}
}

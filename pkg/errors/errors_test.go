package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/pocketai/hubsync/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "model",
			ID:       "google/mobilenet-v2",
		}
		assert.Equal(t, "model with ID google/mobilenet-v2 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("principal", "hub_sync_system")
		assert.Equal(t, "principal with ID hub_sync_system not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("model", "test")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "hub_id",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field hub_id: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid descriptor",
		}
		assert.Equal(t, "validation failed: invalid descriptor", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestAPIError(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		err := pkgerrors.NewAPIError(429, "/api/models", "too many requests")
		assert.True(t, pkgerrors.IsRateLimited(err))
		assert.False(t, pkgerrors.IsHubUnavailable(err))
	})

	t.Run("server error", func(t *testing.T) {
		err := pkgerrors.NewAPIError(503, "/api/models", "service unavailable")
		assert.True(t, pkgerrors.IsHubUnavailable(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		inner := errors.New("connection reset")
		err := &pkgerrors.APIError{Message: "request failed", Err: inner}
		assert.Equal(t, inner, errors.Unwrap(err))
		assert.Contains(t, err.Error(), "request failed")
	})
}

func TestStoreError(t *testing.T) {
	inner := errors.New("database is locked")
	err := pkgerrors.NewStoreError("insert", "model", inner)
	assert.Contains(t, err.Error(), "insert")
	assert.Contains(t, err.Error(), "model")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapParse(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapParse("json", "hub response", nil))
	})

	t.Run("wraps", func(t *testing.T) {
		inner := errors.New("unexpected end of input")
		err := pkgerrors.WrapParse("json", "hub response", inner)
		assert.Contains(t, err.Error(), "json")
		assert.Equal(t, inner, errors.Unwrap(err))
	})
}

package errors

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrBackendUnavailable.WithDetails("GET /users: 503")

	assert.Equal(t, "GET /users: 503", detailed.Details())
	assert.Empty(t, ErrBackendUnavailable.Details())
	assert.ErrorIs(t, detailed, ErrBackendUnavailable)
	assert.NotErrorIs(t, detailed, ErrProfileUnavailable)
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrUnauthenticated.WrapMessage("refresh token rejected")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "UNAUTHENTICATED", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "refresh token rejected")
}

func TestStoreExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreExecuteError(cause, "save user")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "SESSION_STORE_ERROR", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestWithCause_KeepsBothInChain(t *testing.T) {
	err := errors.Wrap(WithCause(ErrProfileUnavailable, context.Canceled), "load profile")

	assert.ErrorIs(t, err, ErrProfileUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "context canceled")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "PROFILE_UNAVAILABLE", appErr.ErrorCode())

	assert.Equal(t, ErrUnauthenticated, WithCause(ErrUnauthenticated, nil))
}

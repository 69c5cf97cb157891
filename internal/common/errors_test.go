package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	base := errors.New("boom")
	err := NewAppError("EXTRACT_FAILED", "could not extract fields", base)

	require.EqualError(t, err, "EXTRACT_FAILED: could not extract fields: boom")
	require.ErrorIs(t, err, base)

	bare := NewAppError("NOT_FOUND", "no such document", nil)
	require.EqualError(t, bare, "NOT_FOUND: no such document")
}

func TestWrapError(t *testing.T) {
	require.NoError(t, WrapError(nil, "context"))

	wrapped := WrapError(ErrValidation, "checking record")
	require.ErrorIs(t, wrapped, ErrValidation)
	require.EqualError(t, wrapped, "checking record: validation failed")
}

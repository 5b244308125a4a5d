package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredError_Error(t *testing.T) {
	err := New(ErrCodeNotFound, "environment not registered")
	assert.Equal(t, "[NOT_FOUND] environment not registered", err.Error())

	wrapped := Wrap(ErrCodeInternal, "export failed", fmt.Errorf("disk full"))
	assert.Equal(t, "[INTERNAL] export failed: disk full", wrapped.Error())
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(ErrCodeInvalidInput, "bad job-name line", cause)

	require.ErrorIs(t, err, cause)

	var se *StructuredError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, ErrCodeInvalidInput, se.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeAlreadyExists, "archive present")
	assert.True(t, IsCode(err, ErrCodeAlreadyExists))
	assert.False(t, IsCode(err, ErrCodeNotFound))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeNotFound))
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeNotFound, "unknown environment",
		map[string]any{"environment": "environments.xsede.CometEnvironment"})
	require.NotNil(t, err.Context)
	assert.Equal(t, "environments.xsede.CometEnvironment", err.Context["environment"])
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Config file not found", "Run 'jobdash init' first")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Contains(t, err.Error(), "✗ Config file not found")
	assert.Contains(t, err.Error(), "Run 'jobdash init' first")
	assert.Nil(t, err.Cause)
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := Wrap(cause, "scp didn't complete")

	assert.Equal(t, ErrTransport, err.Code)
	assert.Contains(t, err.Error(), "scp didn't complete")
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWrapWithCode(t *testing.T) {
	cause := fmt.Errorf("invalid syntax")
	err := WrapWithCode(cause, ErrParse, "Couldn't parse semp output", "Check the remote log format")

	assert.Equal(t, ErrParse, err.Code)
	assert.Contains(t, err.Error(), "Couldn't parse semp output")
	assert.Contains(t, err.Error(), "invalid syntax")
	assert.Contains(t, err.Error(), "Check the remote log format")
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{"matching code", New(ErrIO, "read failed", ""), ErrIO, true},
		{"different code", New(ErrIO, "read failed", ""), ErrParse, false},
		{"wrapped structured error", fmt.Errorf("outer: %w", New(ErrTransport, "copy failed", "")), ErrTransport, true},
		{"plain error", fmt.Errorf("plain"), ErrIO, false},
		{"nil error", nil, ErrIO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCode(tt.err, tt.code))
		})
	}
}

func TestErrorsAs(t *testing.T) {
	inner := New(ErrParse, "bad token", "")
	outer := fmt.Errorf("refresh failed: %w", inner)

	var structured *Error
	require.True(t, errors.As(outer, &structured))
	assert.Equal(t, ErrParse, structured.Code)
}

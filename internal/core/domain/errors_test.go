package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidPath", ErrInvalidPath},
		{"ErrAmbiguousResource", ErrAmbiguousResource},
		{"ErrStaleCursor", ErrStaleCursor},
		{"ErrTransport", ErrTransport},
		{"ErrUnauthorized", ErrUnauthorized},
		{"ErrForbidden", ErrForbidden},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidPath))
}

func TestTransportError_Is(t *testing.T) {
	cause := errors.New("connection reset")
	err := &TransportError{Op: "files.list", StatusCode: 401, Kind: ErrUnauthorized, Err: cause}

	wrapped := fmt.Errorf("list folders: %w", err)

	assert.True(t, errors.Is(wrapped, ErrTransport))
	assert.True(t, errors.Is(wrapped, ErrUnauthorized))
	assert.True(t, errors.Is(wrapped, cause))
	assert.False(t, errors.Is(wrapped, ErrForbidden))

	var te *TransportError
	assert.True(t, errors.As(wrapped, &te))
	assert.Equal(t, 401, te.StatusCode)
}

func TestTransportError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *TransportError
		want string
	}{
		{
			name: "with status and cause",
			err:  &TransportError{Op: "files.create", StatusCode: 500, Err: errors.New("boom")},
			want: "transport error: files.create (status 500): boom",
		},
		{
			name: "without status",
			err:  &TransportError{Op: "messages.list", Err: errors.New("dial tcp")},
			want: "transport error: messages.list: dial tcp",
		},
		{
			name: "op only",
			err:  &TransportError{Op: "events.delete"},
			want: "transport error: events.delete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestTransportError_NilReceiver(t *testing.T) {
	var err *TransportError
	assert.Equal(t, "(*TransportError)(nil)", err.Error())
}

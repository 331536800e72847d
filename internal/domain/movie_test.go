package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovie_HasDirector(t *testing.T) {
	tests := []struct {
		name     string
		director string
		want     bool
	}{
		{"empty", "", false},
		{"blank", "   ", false},
		{"tabs and newlines", "\t\n", false},
		{"name", "Quentin Tarantino", true},
		{"padded name", "  Greta Gerwig ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Movie{Director: tt.director}.HasDirector())
		})
	}
}

func TestUpstreamError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&UpstreamError{Page: 2, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "movie api page 2: connection refused", err.Error())

	var upstream *UpstreamError
	assert.True(t, errors.As(err, &upstream))
	assert.Equal(t, 2, upstream.Page)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Message: MsgInvalidThreshold}
	assert.Equal(t, "Threshold must be a number", err.Error())
}

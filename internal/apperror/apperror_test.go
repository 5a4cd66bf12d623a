package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NotFound("user", 42), ErrNotFound},
		{"validation", ValidationFailed("name", "name is required"), ErrValidation},
		{"unavailable", Unavailable(errors.New("connection refused")), ErrUnavailable},
		{"internal", Internal("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))

			var appErr *AppError
			require.True(t, errors.As(wrapped, &appErr))
			assert.NotEmpty(t, appErr.Message)
		})
	}
}

func TestValidationFailedKeepsField(t *testing.T) {
	err := ValidationFailed("address.city", "city is required")
	assert.Equal(t, "address.city", err.Field)
	assert.Equal(t, "city is required", err.Error())
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("user", 7)
	assert.Equal(t, "user not found with id 7", err.Error())
}

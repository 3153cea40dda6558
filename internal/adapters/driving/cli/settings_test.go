package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/services"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short token",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long token",
			input:    "ghp_1234567890abcdef",
			expected: "ghp_...cdef",
		},
		{
			name:     "Empty token",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskToken(tt.input))
		})
	}
}

func TestCoerceValue(t *testing.T) {
	t.Run("numeric keys parse to int", func(t *testing.T) {
		v, err := coerceValue(services.KeyTopics, "8")
		require.NoError(t, err)
		assert.Equal(t, 8, v)
	})

	t.Run("numeric key rejects text", func(t *testing.T) {
		_, err := coerceValue(services.KeySeed, "many")
		assert.Error(t, err)
	})

	t.Run("pattern keys split on commas", func(t *testing.T) {
		v, err := coerceValue(services.KeyInputInclude, "**/*.md, **/*.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"**/*.md", "**/*.txt"}, v)
	})

	t.Run("string keys pass through", func(t *testing.T) {
		v, err := coerceValue(services.KeyGitHubRepo, "acme/water")
		require.NoError(t, err)
		assert.Equal(t, "acme/water", v)
	})
}

func TestDisplayValue(t *testing.T) {
	t.Run("token is masked", func(t *testing.T) {
		out := displayValue(services.KeyGitHubToken, "ghp_1234567890abcdef")
		assert.Equal(t, "ghp_...cdef", out)
	})

	t.Run("slices join with commas", func(t *testing.T) {
		out := displayValue(services.KeyInputInclude, []string{"a", "b"})
		assert.Equal(t, "a, b", out)
	})

	t.Run("plain values format as-is", func(t *testing.T) {
		assert.Equal(t, "8", displayValue(services.KeyTopics, 8))
	})
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverrides(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		overrides, err := parseOverrides(nil)
		require.NoError(t, err)
		assert.Nil(t, overrides)
	})

	t.Run("valid pairs", func(t *testing.T) {
		overrides, err := parseOverrides([]string{"0=hydrology", "2=agronomy"})
		require.NoError(t, err)
		assert.Equal(t, map[int]string{0: "hydrology", 2: "agronomy"}, overrides)
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		overrides, err := parseOverrides([]string{" 1 = hydrology "})
		require.NoError(t, err)
		assert.Equal(t, map[int]string{1: "hydrology"}, overrides)
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := parseOverrides([]string{"hydrology"})
		assert.Error(t, err)
	})

	t.Run("empty domain", func(t *testing.T) {
		_, err := parseOverrides([]string{"0="})
		assert.Error(t, err)
	})

	t.Run("negative topic", func(t *testing.T) {
		_, err := parseOverrides([]string{"-1=hydrology"})
		assert.Error(t, err)
	})

	t.Run("non-numeric topic", func(t *testing.T) {
		_, err := parseOverrides([]string{"first=hydrology"})
		assert.Error(t, err)
	})
}

func TestResolveRun_NoSettingsService(t *testing.T) {
	oldService := settingsService
	settingsService = nil
	defer func() {
		settingsService = oldService
	}()

	_, _, err := resolveRun(runCmd, nil, false)
	assert.ErrorContains(t, err, "settings service not configured")
}

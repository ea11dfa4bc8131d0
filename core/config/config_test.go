package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toheco/tohekit/core/config"
)

type cartKeysConfig struct {
	Prefix string `env:"TEST_CART_PREFIX" envDefault:"tohe_cart_"`
	Guest  string `env:"TEST_CART_GUEST" envDefault:"tohe_cart_guest"`
}

type timeoutConfig struct {
	Timeout time.Duration `env:"TEST_API_TIMEOUT" envDefault:"15s"`
}

type requiredConfig struct {
	BaseURL string `env:"TEST_REQUIRED_BASE_URL,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg cartKeysConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "tohe_cart_", cfg.Prefix)
	assert.Equal(t, "tohe_cart_guest", cfg.Guest)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_API_TIMEOUT", "3s")

	var cfg timeoutConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_CART_PREFIX", "cached_")

	var first cartKeysConfig
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load has no effect for the
	// same type.
	t.Setenv("TEST_CART_PREFIX", "changed_")

	var second cartKeysConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParseConfig)
}

func TestLoad_NilTarget(t *testing.T) {
	err := config.Load[timeoutConfig](nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParseConfig)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

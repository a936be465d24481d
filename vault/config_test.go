package vault

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(6, 18)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, math.OneInt(), cfg.VirtualAssets)
	assert.Equal(t, math.NewIntWithDecimal(1, 12), cfg.VirtualShares)
	assert.True(t, cfg.MinInitialDeposit.IsZero())
	assert.True(t, cfg.DeadShares.IsZero())

	// Equal scales collapse the offset ratio to 1:1.
	cfg = DefaultConfig(8, 8)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, math.OneInt(), cfg.VirtualShares)
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"nil constant", func(c *Config) { c.VirtualAssets = math.Int{} }},
		{"negative constant", func(c *Config) { c.MinInitialDeposit = math.NewInt(-1) }},
		{"asset decimals out of range", func(c *Config) { c.AssetDecimals = 25 }},
		{"share decimals out of range", func(c *Config) { c.ShareDecimals = 25 }},
		{"virtual shares without virtual assets", func(c *Config) {
			c.VirtualAssets = math.ZeroInt()
			c.VirtualShares = math.OneInt()
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig(6, 18)
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig(6, 6)
	cfg.DeadShares = math.NewInt(-1)
	_, err := NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

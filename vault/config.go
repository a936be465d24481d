package vault

import (
	"fmt"

	"cosmossdk.io/math"
)

// Config holds the vault constants fixed at initialization. Conversions are
// evaluated on the virtually-offset totals (TotalAssets + VirtualAssets,
// TotalShares + VirtualShares); MinInitialDeposit and DeadShares constrain
// the first-deposit path. Both mitigations are pure functions of these
// constants and compose freely.
type Config struct {
	// AssetDecimals is the decimal scale of the underlying asset.
	AssetDecimals uint8
	// ShareDecimals is the decimal scale of the vault share. The empty-vault
	// exchange rate is 10^ShareDecimals shares per 10^AssetDecimals assets.
	ShareDecimals uint8
	// VirtualAssets is added to TotalAssets in every conversion.
	VirtualAssets math.Int
	// VirtualShares is added to TotalShares in every conversion.
	VirtualShares math.Int
	// MinInitialDeposit, when positive, is the smallest asset amount the
	// first deposit (or first mint's asset cost) may carry.
	MinInitialDeposit math.Int
	// DeadShares, when positive, is carved out of the first mint and
	// retained by the vault itself, so TotalShares never drops back to a
	// manipulable dust level.
	DeadShares math.Int
}

// DefaultConfig enables the virtual-offset mitigation at the scale of the
// intended initial exchange rate: one virtual base unit of the asset against
// 10^(shareDecimals-assetDecimals) virtual shares. MinInitialDeposit and
// DeadShares are left at zero.
func DefaultConfig(assetDecimals, shareDecimals uint8) Config {
	virtualShares := math.OneInt()
	if shareDecimals > assetDecimals {
		virtualShares = pow10(shareDecimals - assetDecimals)
	}
	return Config{
		AssetDecimals:     assetDecimals,
		ShareDecimals:     shareDecimals,
		VirtualAssets:     math.OneInt(),
		VirtualShares:     virtualShares,
		MinInitialDeposit: math.ZeroInt(),
		DeadShares:        math.ZeroInt(),
	}
}

// Validate checks the config invariants. A positive VirtualShares requires a
// positive VirtualAssets, otherwise a donated-but-shareless vault would put
// a zero denominator under the asset-to-share conversion.
func (c Config) Validate() error {
	if c.AssetDecimals > 24 || c.ShareDecimals > 24 {
		return fmt.Errorf("%w: decimals out of range", ErrInvalidConfig)
	}
	for _, v := range []math.Int{c.VirtualAssets, c.VirtualShares, c.MinInitialDeposit, c.DeadShares} {
		if v.IsNil() || v.IsNegative() {
			return fmt.Errorf("%w: nil or negative constant", ErrInvalidConfig)
		}
	}
	if c.VirtualShares.IsPositive() && !c.VirtualAssets.IsPositive() {
		return fmt.Errorf("%w: virtual shares without virtual assets", ErrInvalidConfig)
	}
	return nil
}

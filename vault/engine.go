// Package vault implements the share/asset conversion accounting engine of a
// tokenized vault: depositors receive proportional ownership shares, share
// holders redeem proportional assets. The engine is a pure, synchronous
// computation over one VaultState; it performs no I/O and leaves asset
// custody and share balances to a ledger collaborator.
//
// Every conversion carries a mandated rounding direction. Deposit and Redeem
// round down so the vault is never shortchanged; Mint and Withdraw round up
// so the user never pays less (or burns fewer shares) than fair value. The
// Preview variants return bit-identical results to the mutating operations:
// each operation is implemented as its own preview followed by a commit.
package vault

import "cosmossdk.io/math"

// rateScale is the fixed-point scale of ExchangeRate.
const rateScale = 18

// Engine performs the four canonical vault operations and their previews
// against a single VaultState. Mutating calls on the same state must be
// serialized by the embedding system; previews are read-only.
type Engine struct {
	cfg   Config
	state *VaultState
}

// NewEngine validates cfg and binds the engine to state.
func NewEngine(cfg Config, state *VaultState) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if state == nil {
		state = NewVaultState()
	}
	return &Engine{cfg: cfg, state: state}, nil
}

// Config returns the vault constants the engine was initialized with.
func (e *Engine) Config() Config {
	return e.cfg
}

// TotalAssets returns the quantity of the underlying asset held by the vault.
func (e *Engine) TotalAssets() math.Int {
	return e.state.TotalAssets
}

// TotalShares returns the number of shares outstanding.
func (e *Engine) TotalShares() math.Int {
	return e.state.TotalShares
}

// ExchangeRate returns the assets redeemable per share as an 18-decimal
// fixed-point value, evaluated on the virtually-offset totals. When no
// shares exist (and no offsets are configured) it reports the bootstrap
// rate implied by the configured decimal scales.
func (e *Engine) ExchangeRate() (math.Int, error) {
	effAssets, effShares, err := e.effectiveTotals()
	if err != nil {
		return math.Int{}, err
	}
	if effShares.IsZero() {
		return mulDiv(pow10(e.cfg.AssetDecimals), pow10(rateScale), pow10(e.cfg.ShareDecimals), false)
	}
	return mulDiv(effAssets, pow10(rateScale), effShares, false)
}

// PreviewDeposit returns the shares Deposit(assets) would credit, without
// mutating state.
func (e *Engine) PreviewDeposit(assets math.Int) (math.Int, error) {
	shares, _, err := e.quoteDeposit(assets)
	return shares, err
}

// Deposit credits assets into the vault and returns the shares minted to the
// depositor, rounded down. On the first deposit the configured minimum and
// dead-share carve-out apply.
func (e *Engine) Deposit(assets math.Int) (math.Int, error) {
	shares, minted, err := e.quoteDeposit(assets)
	if err != nil {
		return math.Int{}, err
	}
	newAssets, err := checkedAdd(e.state.TotalAssets, assets)
	if err != nil {
		return math.Int{}, err
	}
	newShares, err := checkedAdd(e.state.TotalShares, minted)
	if err != nil {
		return math.Int{}, err
	}
	e.state.TotalAssets = newAssets
	e.state.TotalShares = newShares
	return shares, nil
}

// PreviewMint returns the asset cost Mint(shares) would charge, without
// mutating state.
func (e *Engine) PreviewMint(shares math.Int) (math.Int, error) {
	assets, _, err := e.quoteMint(shares)
	return assets, err
}

// Mint issues exactly shares to the caller and returns the asset amount
// charged, rounded up so the vault receives at least fair value.
func (e *Engine) Mint(shares math.Int) (math.Int, error) {
	assets, minted, err := e.quoteMint(shares)
	if err != nil {
		return math.Int{}, err
	}
	newAssets, err := checkedAdd(e.state.TotalAssets, assets)
	if err != nil {
		return math.Int{}, err
	}
	newShares, err := checkedAdd(e.state.TotalShares, minted)
	if err != nil {
		return math.Int{}, err
	}
	e.state.TotalAssets = newAssets
	e.state.TotalShares = newShares
	return assets, nil
}

// PreviewWithdraw returns the shares Withdraw(assets) would burn, without
// mutating state.
func (e *Engine) PreviewWithdraw(assets math.Int) (math.Int, error) {
	return e.quoteWithdraw(assets)
}

// Withdraw releases exactly assets from the vault and returns the shares
// burned, rounded up so the caller cannot underpay in shares.
func (e *Engine) Withdraw(assets math.Int) (math.Int, error) {
	shares, err := e.quoteWithdraw(assets)
	if err != nil {
		return math.Int{}, err
	}
	e.state.TotalAssets = e.state.TotalAssets.Sub(assets)
	e.state.TotalShares = e.state.TotalShares.Sub(shares)
	return shares, nil
}

// PreviewRedeem returns the assets Redeem(shares) would release, without
// mutating state.
func (e *Engine) PreviewRedeem(shares math.Int) (math.Int, error) {
	return e.quoteRedeem(shares)
}

// Redeem burns exactly shares and returns the assets released, rounded down
// so the vault is never shortchanged.
func (e *Engine) Redeem(shares math.Int) (math.Int, error) {
	assets, err := e.quoteRedeem(shares)
	if err != nil {
		return math.Int{}, err
	}
	e.state.TotalAssets = e.state.TotalAssets.Sub(assets)
	e.state.TotalShares = e.state.TotalShares.Sub(shares)
	return assets, nil
}

// effectiveTotals applies the virtual offsets to the live totals. Offsets
// are applied to every conversion or none, never a subset.
func (e *Engine) effectiveTotals() (assets, shares math.Int, err error) {
	assets, err = checkedAdd(e.state.TotalAssets, e.cfg.VirtualAssets)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	shares, err = checkedAdd(e.state.TotalShares, e.cfg.VirtualShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return assets, shares, nil
}

// quoteDeposit computes the shares credited to the depositor and the total
// shares minted (the two differ by the dead-share carve-out on the first
// deposit) for a given asset amount.
func (e *Engine) quoteDeposit(assets math.Int) (userShares, minted math.Int, err error) {
	if err := validateAmount(assets); err != nil {
		return math.Int{}, math.Int{}, err
	}
	first := e.state.TotalShares.IsZero()
	if first && e.cfg.MinInitialDeposit.IsPositive() && assets.LT(e.cfg.MinInitialDeposit) {
		return math.Int{}, math.Int{}, ErrBelowMinimumDeposit
	}
	effAssets, effShares, err := e.effectiveTotals()
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if effShares.IsZero() {
		minted, err = mulDiv(assets, pow10(e.cfg.ShareDecimals), pow10(e.cfg.AssetDecimals), false)
	} else {
		// Shares outstanding against a zero backing balance price the share
		// at zero; refuse rather than divide by it.
		if effAssets.IsZero() {
			return math.Int{}, math.Int{}, ErrInsufficientAssets
		}
		minted, err = mulDiv(assets, effShares, effAssets, false)
	}
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	userShares = minted
	if first && e.cfg.DeadShares.IsPositive() {
		userShares = minted.Sub(e.cfg.DeadShares)
	}
	if !userShares.IsPositive() {
		return math.Int{}, math.Int{}, ErrZeroQuantity
	}
	return userShares, minted, nil
}

// quoteMint computes the asset cost and total shares minted for issuing
// exactly shares to the caller. The first mint additionally carries the
// dead-share carve-out, charged to the minter.
func (e *Engine) quoteMint(shares math.Int) (assets, minted math.Int, err error) {
	if err := validateAmount(shares); err != nil {
		return math.Int{}, math.Int{}, err
	}
	first := e.state.TotalShares.IsZero()
	minted = shares
	if first && e.cfg.DeadShares.IsPositive() {
		minted, err = checkedAdd(shares, e.cfg.DeadShares)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
	}
	effAssets, effShares, err := e.effectiveTotals()
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if effShares.IsZero() {
		assets, err = mulDiv(minted, pow10(e.cfg.AssetDecimals), pow10(e.cfg.ShareDecimals), true)
	} else {
		assets, err = mulDiv(minted, effAssets, effShares, true)
	}
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !assets.IsPositive() {
		return math.Int{}, math.Int{}, ErrZeroQuantity
	}
	if first && e.cfg.MinInitialDeposit.IsPositive() && assets.LT(e.cfg.MinInitialDeposit) {
		return math.Int{}, math.Int{}, ErrBelowMinimumDeposit
	}
	return assets, minted, nil
}

func (e *Engine) quoteWithdraw(assets math.Int) (math.Int, error) {
	if err := validateAmount(assets); err != nil {
		return math.Int{}, err
	}
	if assets.GT(e.state.TotalAssets) {
		return math.Int{}, ErrInsufficientAssets
	}
	effAssets, effShares, err := e.effectiveTotals()
	if err != nil {
		return math.Int{}, err
	}
	shares, err := mulDiv(assets, effShares, effAssets, true)
	if err != nil {
		return math.Int{}, err
	}
	if !shares.IsPositive() {
		return math.Int{}, ErrZeroQuantity
	}
	if shares.GT(e.state.TotalShares) {
		return math.Int{}, ErrInsufficientShares
	}
	return shares, nil
}

func (e *Engine) quoteRedeem(shares math.Int) (math.Int, error) {
	if err := validateAmount(shares); err != nil {
		return math.Int{}, err
	}
	if shares.GT(e.state.TotalShares) {
		return math.Int{}, ErrInsufficientShares
	}
	effAssets, effShares, err := e.effectiveTotals()
	if err != nil {
		return math.Int{}, err
	}
	assets, err := mulDiv(shares, effAssets, effShares, false)
	if err != nil {
		return math.Int{}, err
	}
	if !assets.IsPositive() {
		return math.Int{}, ErrZeroQuantity
	}
	if assets.GT(e.state.TotalAssets) {
		return math.Int{}, ErrInsufficientAssets
	}
	return assets, nil
}

func validateAmount(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

package vault

import "cosmossdk.io/math"

// VaultState is the only mutable entity of the engine: the vault-wide asset
// and share totals. It is mutated exclusively by the four Engine operations;
// the embedding system must serialize mutating calls on the same state.
type VaultState struct {
	TotalAssets math.Int
	TotalShares math.Int
}

// NewVaultState returns an empty vault: zero assets, zero shares.
func NewVaultState() *VaultState {
	return &VaultState{
		TotalAssets: math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}
}

// Donate credits assets directly into the vault's backing balance without
// minting shares, modeling a transfer that bypasses Deposit/Mint. This is
// the donation primitive of the inflation attack and exists so embeddings
// and tests can reconcile out-of-band balance changes.
func (s *VaultState) Donate(assets math.Int) error {
	if assets.IsNil() || !assets.IsPositive() {
		return ErrInvalidAmount
	}
	total, err := checkedAdd(s.TotalAssets, assets)
	if err != nil {
		return err
	}
	s.TotalAssets = total
	return nil
}

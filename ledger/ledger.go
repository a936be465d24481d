// Package ledger tracks the two balances the conversion engine delegates:
// asset custody held by the vault and per-account share balances. The
// in-memory implementation stands in for the external bank/token layer.
package ledger

import (
	"errors"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultlayer/vault-engine/vault"
)

var ErrDenomMismatch = errors.New("coin denom does not match vault denom")

// Ledger moves the underlying asset in and out of vault custody and mints or
// burns shares against an account. Implementations are not required to be
// safe for concurrent use; the embedding serializes calls.
type Ledger interface {
	// TransferIn moves amount from the account into vault custody.
	TransferIn(from string, amount sdk.Coin) error
	// TransferOut moves amount from vault custody to the account.
	TransferOut(to string, amount sdk.Coin) error
	// MintShares credits newly issued shares to the account.
	MintShares(to string, shares math.Int) error
	// BurnShares debits shares from the account.
	BurnShares(from string, shares math.Int) error

	ShareBalance(account string) math.Int
	Custody() sdk.Coin
}

// InMemory is a reference Ledger backed by plain maps.
type InMemory struct {
	denom   string
	custody math.Int
	shares  map[string]math.Int
}

var _ Ledger = (*InMemory)(nil)

func NewInMemory(denom string) *InMemory {
	return &InMemory{
		denom:   denom,
		custody: math.ZeroInt(),
		shares:  make(map[string]math.Int),
	}
}

func (l *InMemory) TransferIn(from string, amount sdk.Coin) error {
	if err := l.checkCoin(amount); err != nil {
		return err
	}
	l.custody = l.custody.Add(amount.Amount)
	return nil
}

func (l *InMemory) TransferOut(to string, amount sdk.Coin) error {
	if err := l.checkCoin(amount); err != nil {
		return err
	}
	if l.custody.LT(amount.Amount) {
		return fmt.Errorf("%w: custody %s, requested %s", vault.ErrInsufficientAssets, l.custody, amount.Amount)
	}
	l.custody = l.custody.Sub(amount.Amount)
	return nil
}

func (l *InMemory) MintShares(to string, shares math.Int) error {
	if shares.IsNil() || !shares.IsPositive() {
		return vault.ErrInvalidAmount
	}
	l.shares[to] = l.ShareBalance(to).Add(shares)
	return nil
}

func (l *InMemory) BurnShares(from string, shares math.Int) error {
	if shares.IsNil() || !shares.IsPositive() {
		return vault.ErrInvalidAmount
	}
	balance := l.ShareBalance(from)
	if balance.LT(shares) {
		return fmt.Errorf("%w: account %s holds %s, burning %s", vault.ErrInsufficientShares, from, balance, shares)
	}
	l.shares[from] = balance.Sub(shares)
	return nil
}

func (l *InMemory) ShareBalance(account string) math.Int {
	if balance, ok := l.shares[account]; ok {
		return balance
	}
	return math.ZeroInt()
}

func (l *InMemory) Custody() sdk.Coin {
	return sdk.NewCoin(l.denom, l.custody)
}

func (l *InMemory) checkCoin(amount sdk.Coin) error {
	if amount.Denom != l.denom {
		return fmt.Errorf("%w: got %s, want %s", ErrDenomMismatch, amount.Denom, l.denom)
	}
	if amount.Amount.IsNil() || !amount.Amount.IsPositive() {
		return vault.ErrInvalidAmount
	}
	return nil
}

// Package vaultservice is the reference embedding of the conversion engine:
// it serializes mutating operations, keeps the ledger collaborator in
// lock-step with the engine's state, and instruments every call.
package vaultservice

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vaultlayer/vault-engine/ledger"
	"github.com/vaultlayer/vault-engine/logger"
	"github.com/vaultlayer/vault-engine/metrics/indicators/vaultops"
	"github.com/vaultlayer/vault-engine/schema/vaultengine"
	"github.com/vaultlayer/vault-engine/vault"
)

var ErrUnknownMsg = errors.New("unknown message variant")

// Service wraps one vault. Deposit/Mint/Withdraw/Redeem take the write lock
// so at most one mutation is in flight; previews and accessors take the read
// lock so they never observe a half-committed state.
//
// Ledger legs run only after the engine operation succeeds. If a leg fails,
// the engine commit and any completed legs are unwound, so either the whole
// operation lands or none of it does.
type Service struct {
	mu     sync.RWMutex
	denom  string
	state  *vault.VaultState
	engine *vault.Engine
	ledger ledger.Ledger
	log    logger.Logger
	ind    *vaultops.PromIndicators
}

// New builds a Service over a fresh empty vault. ind may be nil to disable
// metrics.
func New(cfg vault.Config, denom string, led ledger.Ledger, log logger.Logger, ind *vaultops.PromIndicators) (*Service, error) {
	state := vault.NewVaultState()
	engine, err := vault.NewEngine(cfg, state)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.MockLogger{}
	}
	return &Service{
		denom:  denom,
		state:  state,
		engine: engine,
		ledger: led,
		log:    log,
		ind:    ind,
	}, nil
}

// Deposit converts assets to shares for sender and moves both legs through
// the ledger.
func (s *Service) Deposit(sender string, assets math.Int) (math.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := *s.state
	shares, err := s.engine.Deposit(assets)
	if err != nil {
		return math.Int{}, s.fail("deposit", err)
	}
	if err := s.ledger.TransferIn(sender, sdk.NewCoin(s.denom, assets)); err != nil {
		*s.state = before
		return math.Int{}, s.fail("deposit", err)
	}
	if err := s.ledger.MintShares(sender, shares); err != nil {
		s.unwind(s.ledger.TransferOut(sender, sdk.NewCoin(s.denom, assets)))
		*s.state = before
		return math.Int{}, s.fail("deposit", err)
	}
	s.ok("deposit", sender, assets, shares)
	return shares, nil
}

// Mint issues exactly shares to sender and charges the rounded-up asset cost.
func (s *Service) Mint(sender string, shares math.Int) (math.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := *s.state
	assets, err := s.engine.Mint(shares)
	if err != nil {
		return math.Int{}, s.fail("mint", err)
	}
	if err := s.ledger.TransferIn(sender, sdk.NewCoin(s.denom, assets)); err != nil {
		*s.state = before
		return math.Int{}, s.fail("mint", err)
	}
	if err := s.ledger.MintShares(sender, shares); err != nil {
		s.unwind(s.ledger.TransferOut(sender, sdk.NewCoin(s.denom, assets)))
		*s.state = before
		return math.Int{}, s.fail("mint", err)
	}
	s.ok("mint", sender, assets, shares)
	return assets, nil
}

// Withdraw releases exactly assets to sender, burning the rounded-up share
// cost. The sender's entitlement is enforced by the ledger's burn.
func (s *Service) Withdraw(sender string, assets math.Int) (math.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := *s.state
	shares, err := s.engine.Withdraw(assets)
	if err != nil {
		return math.Int{}, s.fail("withdraw", err)
	}
	if err := s.ledger.BurnShares(sender, shares); err != nil {
		*s.state = before
		return math.Int{}, s.fail("withdraw", err)
	}
	if err := s.ledger.TransferOut(sender, sdk.NewCoin(s.denom, assets)); err != nil {
		s.unwind(s.ledger.MintShares(sender, shares))
		*s.state = before
		return math.Int{}, s.fail("withdraw", err)
	}
	s.ok("withdraw", sender, assets, shares)
	return shares, nil
}

// Redeem burns exactly shares from sender and pays out the rounded-down
// asset value.
func (s *Service) Redeem(sender string, shares math.Int) (math.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := *s.state
	assets, err := s.engine.Redeem(shares)
	if err != nil {
		return math.Int{}, s.fail("redeem", err)
	}
	if err := s.ledger.BurnShares(sender, shares); err != nil {
		*s.state = before
		return math.Int{}, s.fail("redeem", err)
	}
	if err := s.ledger.TransferOut(sender, sdk.NewCoin(s.denom, assets)); err != nil {
		s.unwind(s.ledger.MintShares(sender, shares))
		*s.state = before
		return math.Int{}, s.fail("redeem", err)
	}
	s.ok("redeem", sender, assets, shares)
	return assets, nil
}

// Donate moves assets into vault custody without minting shares.
func (s *Service) Donate(donor string, assets math.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := *s.state
	if err := s.state.Donate(assets); err != nil {
		return err
	}
	if err := s.ledger.TransferIn(donor, sdk.NewCoin(s.denom, assets)); err != nil {
		*s.state = before
		return err
	}
	s.log.Info("vault donation", logger.WithField("donor", donor), logger.WithField("assets", assets.String()))
	return nil
}

func (s *Service) PreviewDeposit(assets math.Int) (math.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.PreviewDeposit(assets)
}

func (s *Service) PreviewMint(shares math.Int) (math.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.PreviewMint(shares)
}

func (s *Service) PreviewWithdraw(assets math.Int) (math.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.PreviewWithdraw(assets)
}

func (s *Service) PreviewRedeem(shares math.Int) (math.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.PreviewRedeem(shares)
}

func (s *Service) TotalAssets() math.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.TotalAssets()
}

func (s *Service) TotalShares() math.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.TotalShares()
}

func (s *Service) ExchangeRate() (math.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.ExchangeRate()
}

// ShareBalance reports sender's recorded share entitlement.
func (s *Service) ShareBalance(account string) math.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.ShareBalance(account)
}

// HandleExecute dispatches a JSON execute message for sender and returns the
// computed counter-quantity.
func (s *Service) HandleExecute(sender string, msg vaultengine.ExecuteMsg) (*vaultengine.ExecuteResponse, error) {
	var (
		out math.Int
		err error
	)
	switch {
	case msg.Deposit != nil:
		out, err = s.execAmount(msg.Deposit.Amount, func(a math.Int) (math.Int, error) { return s.Deposit(sender, a) })
	case msg.Mint != nil:
		out, err = s.execAmount(msg.Mint.Amount, func(a math.Int) (math.Int, error) { return s.Mint(sender, a) })
	case msg.Withdraw != nil:
		out, err = s.execAmount(msg.Withdraw.Amount, func(a math.Int) (math.Int, error) { return s.Withdraw(sender, a) })
	case msg.Redeem != nil:
		out, err = s.execAmount(msg.Redeem.Amount, func(a math.Int) (math.Int, error) { return s.Redeem(sender, a) })
	default:
		return nil, ErrUnknownMsg
	}
	if err != nil {
		return nil, err
	}
	return &vaultengine.ExecuteResponse{Amount: out.String()}, nil
}

// HandleQuery dispatches a JSON query message and returns the marshaled
// response. The ConvertTo* variants report zero instead of failing when the
// conversion rounds to nothing.
func (s *Service) HandleQuery(msg vaultengine.QueryMsg) ([]byte, error) {
	switch {
	case msg.ConvertToShares != nil:
		out, err := s.queryAmount(msg.ConvertToShares.Assets, s.PreviewDeposit)
		if err != nil {
			return nil, err
		}
		return json.Marshal(vaultengine.ConvertToSharesResponse(out))
	case msg.ConvertToAssets != nil:
		out, err := s.queryAmount(msg.ConvertToAssets.Shares, s.PreviewRedeem)
		if err != nil {
			return nil, err
		}
		return json.Marshal(vaultengine.ConvertToAssetsResponse(out))
	case msg.PreviewDeposit != nil:
		out, err := s.strictQueryAmount(msg.PreviewDeposit.Assets, s.PreviewDeposit)
		if err != nil {
			return nil, err
		}
		return json.Marshal(vaultengine.PreviewDepositResponse(out))
	case msg.PreviewMint != nil:
		out, err := s.strictQueryAmount(msg.PreviewMint.Shares, s.PreviewMint)
		if err != nil {
			return nil, err
		}
		return json.Marshal(vaultengine.PreviewMintResponse(out))
	case msg.PreviewWithdraw != nil:
		out, err := s.strictQueryAmount(msg.PreviewWithdraw.Assets, s.PreviewWithdraw)
		if err != nil {
			return nil, err
		}
		return json.Marshal(vaultengine.PreviewWithdrawResponse(out))
	case msg.PreviewRedeem != nil:
		out, err := s.strictQueryAmount(msg.PreviewRedeem.Shares, s.PreviewRedeem)
		if err != nil {
			return nil, err
		}
		return json.Marshal(vaultengine.PreviewRedeemResponse(out))
	case msg.TotalShares != nil:
		return json.Marshal(vaultengine.TotalSharesResponse(s.TotalShares().String()))
	case msg.TotalAssets != nil:
		return json.Marshal(vaultengine.TotalAssetsResponse(s.TotalAssets().String()))
	case msg.ExchangeRate != nil:
		rate, err := s.ExchangeRate()
		if err != nil {
			return nil, err
		}
		return json.Marshal(vaultengine.ExchangeRateResponse(rate.String()))
	default:
		return nil, ErrUnknownMsg
	}
}

func (s *Service) execAmount(raw string, op func(math.Int) (math.Int, error)) (math.Int, error) {
	amount, err := parseAmount(raw)
	if err != nil {
		return math.Int{}, err
	}
	return op(amount)
}

func (s *Service) queryAmount(raw string, op func(math.Int) (math.Int, error)) (string, error) {
	out, err := s.strictQueryAmount(raw, op)
	if errors.Is(err, vault.ErrZeroQuantity) {
		return "0", nil
	}
	return out, err
}

func (s *Service) strictQueryAmount(raw string, op func(math.Int) (math.Int, error)) (string, error) {
	amount, err := parseAmount(raw)
	if err != nil {
		return "", err
	}
	out, err := op(amount)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func parseAmount(raw string) (math.Int, error) {
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("%w: %q is not an integer", vault.ErrInvalidAmount, raw)
	}
	return amount, nil
}

func (s *Service) ok(operation, sender string, assets, shares math.Int) {
	s.log.Info("vault operation",
		logger.WithField("operation", operation),
		logger.WithField("sender", sender),
		logger.WithField("assets", assets.String()),
		logger.WithField("shares", shares.String()),
	)
	if s.ind == nil {
		return
	}
	s.ind.AddOperationTotal(operation, "ok")
	if rate, err := s.engine.ExchangeRate(); err == nil {
		f, _ := new(big.Float).SetInt(rate.BigInt()).Float64()
		s.ind.SetExchangeRate(f)
	}
}

func (s *Service) fail(operation string, err error) error {
	s.log.Error("vault operation failed",
		logger.WithField("operation", operation),
		logger.WithField("error", err),
	)
	if s.ind != nil {
		s.ind.AddOperationTotal(operation, "error")
	}
	return err
}

// unwind logs a failed compensation leg; there is nothing further to do
// with it.
func (s *Service) unwind(err error) {
	if err != nil {
		s.log.Error("ledger compensation failed", logger.WithField("error", err))
	}
}

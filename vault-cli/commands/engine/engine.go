package engine

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/vaultlayer/vault-engine/ledger"
	"github.com/vaultlayer/vault-engine/logger"
	"github.com/vaultlayer/vault-engine/vault"
	"github.com/vaultlayer/vault-engine/vault-cli/conf"
	"github.com/vaultlayer/vault-engine/vaultservice"
)

// Preview prints the counter-quantity of the given operation against an
// empty vault configured from the active config file.
func Preview(operation, amount string) {
	service := newService()
	in := parseInt(amount)

	var (
		out math.Int
		err error
	)
	switch operation {
	case "deposit":
		out, err = service.PreviewDeposit(in)
	case "mint":
		out, err = service.PreviewMint(in)
	case "withdraw":
		out, err = service.PreviewWithdraw(in)
	case "redeem":
		out, err = service.PreviewRedeem(in)
	default:
		panic(fmt.Sprintf("unknown operation %q, want deposit|mint|withdraw|redeem", operation))
	}
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s %s -> %s\n", operation, amount, out)
}

// Rate prints the vault's configured bootstrap exchange rate.
func Rate() {
	service := newService()
	rate, err := service.ExchangeRate()
	if err != nil {
		panic(err)
	}
	fmt.Printf("exchange rate (assets per share, 18 decimals): %s\n", rate)
}

// SimulateAttack replays the first-depositor inflation sequence against the
// configured vault: attacker deposit, direct donation, victim deposit, then
// both exits.
func SimulateAttack(attackerDeposit, donation, victimDeposit string) {
	service := newService()
	d := parseInt(attackerDeposit)
	dn := parseInt(donation)
	v := parseInt(victimDeposit)

	attackerShares, err := service.Deposit("attacker", d)
	if err != nil {
		panic(err)
	}
	fmt.Printf("attacker deposits %s -> %s shares\n", d, attackerShares)

	if err := service.Donate("attacker", dn); err != nil {
		panic(err)
	}
	fmt.Printf("attacker donates %s, totals: assets=%s shares=%s\n", dn, service.TotalAssets(), service.TotalShares())

	victimShares, err := service.Deposit("victim", v)
	if err != nil {
		fmt.Printf("victim deposit of %s refused: %v\n", v, err)
	} else {
		fmt.Printf("victim deposits %s -> %s shares\n", v, victimShares)
	}

	attackerPayout, err := service.Redeem("attacker", attackerShares)
	if err != nil {
		panic(err)
	}
	attackerNet := attackerPayout.Sub(d).Sub(dn)
	fmt.Printf("attacker redeems %s shares -> %s assets (net %s)\n", attackerShares, attackerPayout, attackerNet)

	if victimShares.IsNil() || victimShares.IsZero() {
		return
	}
	victimPayout, err := service.Redeem("victim", victimShares)
	if err != nil {
		panic(err)
	}
	fmt.Printf("victim redeems %s shares -> %s assets (net %s)\n", victimShares, victimPayout, victimPayout.Sub(v))
}

func newService() *vaultservice.Service {
	cfg := vault.Config{
		AssetDecimals:     conf.C.Vault.AssetDecimals,
		ShareDecimals:     conf.C.Vault.ShareDecimals,
		VirtualAssets:     parseInt(conf.C.Vault.VirtualAssets),
		VirtualShares:     parseInt(conf.C.Vault.VirtualShares),
		MinInitialDeposit: parseInt(conf.C.Vault.MinInitialDeposit),
		DeadShares:        parseInt(conf.C.Vault.DeadShares),
	}

	log := logger.NewTextLogger()
	log.SetLogLevel(conf.C.LogLevel)

	service, err := vaultservice.New(cfg, conf.C.Vault.Denom, ledger.NewInMemory(conf.C.Vault.Denom), log, nil)
	if err != nil {
		panic(err)
	}
	return service
}

func parseInt(raw string) math.Int {
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		panic(fmt.Sprintf("%q is not an integer", raw))
	}
	return amount
}

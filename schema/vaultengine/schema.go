// This file was generated from vault-engine/schema.json.
// DO NOT MODIFY IT BY HAND.

package vaultengine

import "encoding/json"

type ConvertToAssetsResponse string

type ConvertToSharesResponse string

type ExchangeRateResponse string

type PreviewDepositResponse string

type PreviewMintResponse string

type PreviewRedeemResponse string

type PreviewWithdrawResponse string

type TotalAssetsResponse string

type TotalSharesResponse string

// ExecuteMsg Deposit assets into the vault. Sender must transfer the assets
// to the vault custody (this is implementation agnostic). The vault must
// mint the returned shares to the sender, rounded down.
//
// ExecuteMsg Mint exactly `amount` shares to the sender. The vault charges
// the returned asset amount, rounded up.
//
// ExecuteMsg Withdraw exactly `amount` assets from the vault. The vault
// burns the returned shares from the sender, rounded up.
//
// ExecuteMsg Redeem exactly `amount` shares from the sender. The vault pays
// out the returned assets, rounded down.
type ExecuteMsg struct {
	Deposit  *AmountMsg `json:"deposit,omitempty"`
	Mint     *AmountMsg `json:"mint,omitempty"`
	Withdraw *AmountMsg `json:"withdraw,omitempty"`
	Redeem   *AmountMsg `json:"redeem,omitempty"`
}

type AmountMsg struct {
	Amount string `json:"amount"`
}

// ExecuteResponse carries the computed counter-quantity of an execute call:
// shares for Deposit/Withdraw, assets for Mint/Redeem.
type ExecuteResponse struct {
	Amount string `json:"amount"`
}

// QueryMsg ConvertToShares: convert assets to shares, rounded down.
//
// QueryMsg ConvertToAssets: convert shares to assets, rounded down.
//
// QueryMsg PreviewDeposit/PreviewMint/PreviewWithdraw/PreviewRedeem: the
// exact quantity the corresponding ExecuteMsg would return against current
// state, without side effects.
//
// QueryMsg TotalShares: get the total shares in circulation.
//
// QueryMsg TotalAssets: get the total assets under vault.
//
// QueryMsg ExchangeRate: assets redeemable per share, 18-decimal fixed point.
type QueryMsg struct {
	ConvertToShares *ConvertToShares `json:"convert_to_shares,omitempty"`
	ConvertToAssets *ConvertToAssets `json:"convert_to_assets,omitempty"`
	PreviewDeposit  *PreviewDeposit  `json:"preview_deposit,omitempty"`
	PreviewMint     *PreviewMint     `json:"preview_mint,omitempty"`
	PreviewWithdraw *PreviewWithdraw `json:"preview_withdraw,omitempty"`
	PreviewRedeem   *PreviewRedeem   `json:"preview_redeem,omitempty"`
	TotalShares     *TotalShares     `json:"total_shares,omitempty"`
	TotalAssets     *TotalAssets     `json:"total_assets,omitempty"`
	ExchangeRate    *ExchangeRate    `json:"exchange_rate,omitempty"`
}

type ConvertToAssets struct {
	Shares string `json:"shares"`
}

type ConvertToShares struct {
	Assets string `json:"assets"`
}

type PreviewDeposit struct {
	Assets string `json:"assets"`
}

type PreviewMint struct {
	Shares string `json:"shares"`
}

type PreviewWithdraw struct {
	Assets string `json:"assets"`
}

type PreviewRedeem struct {
	Shares string `json:"shares"`
}

type TotalAssets struct {
}

type TotalShares struct {
}

type ExchangeRate struct {
}

func UnmarshalExecuteMsg(data []byte) (ExecuteMsg, error) {
	var r ExecuteMsg
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *ExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalQueryMsg(data []byte) (QueryMsg, error) {
	var r QueryMsg
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *QueryMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalExecuteResponse(data []byte) (ExecuteResponse, error) {
	var r ExecuteResponse
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *ExecuteResponse) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

package domain

import (
	"errors"

	"github.com/seedscan/seedscan-daemon/pkg/explorer"
	"github.com/seedscan/seedscan-daemon/pkg/hdwallet"
)

var (
	// ErrNullSeedPhrase ...
	ErrNullSeedPhrase = errors.New("seed phrase must not be null")
	// ErrNullNetworks ...
	ErrNullNetworks = errors.New("at least one network must be selected")
	// ErrNullBitcoinAddressTypes ...
	ErrNullBitcoinAddressTypes = errors.New(
		"at least one address type must be selected for BTC",
	)
)

const (
	defaultAccountIndices = "0"
	defaultAddressIndices = "0-10"
)

// APIKeys carries the caller-supplied explorer credentials, one per backend
// family. They are request-scoped and never persisted.
type APIKeys struct {
	Bitcoin  string `json:"bitcoin"`
	Ethereum string `json:"ethereum"`
	Tron     string `json:"tron"`
}

// ScanRequest is one wallet scan submission.
type ScanRequest struct {
	SeedPhrase          string                   `json:"seed_phrase"`
	Passphrase          string                   `json:"passphrase"`
	SelectedNetworks    []hdwallet.Network       `json:"selected_networks"`
	AccountIndices      string                   `json:"account_indices"`
	AddressIndices      string                   `json:"address_indices"`
	BitcoinAddressTypes []hdwallet.AddressFormat `json:"bitcoin_address_types"`
	ChangeTypes         []uint32                 `json:"change_types"`
	APIKeys             APIKeys                  `json:"api_keys"`
}

// Validate enforces the front-door rules: a seed phrase is required, at least
// one network must be selected, and scanning BTC requires at least one
// address type. The seed phrase itself is validated later, at derivation.
func (r ScanRequest) Validate() error {
	if len(r.SeedPhrase) <= 0 {
		return ErrNullSeedPhrase
	}
	if len(r.SelectedNetworks) <= 0 {
		return ErrNullNetworks
	}
	for _, network := range r.SelectedNetworks {
		profile, ok := hdwallet.GetNetworkProfile(network)
		if !ok {
			continue
		}
		if profile.HasFormats() && len(r.BitcoinAddressTypes) <= 0 {
			return ErrNullBitcoinAddressTypes
		}
	}
	return nil
}

// WithDefaults returns a copy of the request with the unset range specs
// replaced by their defaults.
func (r ScanRequest) WithDefaults() ScanRequest {
	if len(r.AccountIndices) <= 0 {
		r.AccountIndices = defaultAccountIndices
	}
	if len(r.AddressIndices) <= 0 {
		r.AddressIndices = defaultAddressIndices
	}
	return r
}

// WalletReport joins one derived wallet with the outcome of its explorer
// lookup. The embedded structs flatten into a single JSON object.
type WalletReport struct {
	hdwallet.DerivedWallet
	explorer.AddressReport
}

// HasFunds reports whether the wallet shows any on-chain signal worth
// surfacing: a positive balance or any transaction history.
func (r WalletReport) HasFunds() bool {
	return r.HasRealBalance || r.HasTransactions
}

// ScanReport is the outcome of a whole scan. Results holds only the wallets
// with funds or history, AllDerivedWallets the full unfiltered set in
// derivation order.
type ScanReport struct {
	Results           []WalletReport `json:"results"`
	AllDerivedWallets []WalletReport `json:"all_derived_wallets"`
}

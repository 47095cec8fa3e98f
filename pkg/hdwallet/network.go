package hdwallet

import "github.com/btcsuite/btcd/btcec/v2"

// Network identifies a supported blockchain.
type Network string

const (
	NetworkBTC      Network = "BTC"
	NetworkETH      Network = "ETH"
	NetworkBSC      Network = "BSC"
	NetworkMATIC    Network = "MATIC"
	NetworkBASE     Network = "BASE"
	NetworkOPTIMISM Network = "OPTIMISM"
	NetworkARBITRUM Network = "ARBITRUM"
	NetworkTRX      Network = "TRX"
)

// AddressFormat selects one of the Bitcoin address encodings. Account-model
// networks have a single fixed encoding and report FormatNone.
type AddressFormat string

const (
	FormatP2PKH   AddressFormat = "P2PKH"
	FormatP2SH    AddressFormat = "P2SH"
	FormatBech32  AddressFormat = "BECH32"
	FormatTaproot AddressFormat = "TAPROOT"
	FormatNone    AddressFormat = "N/A"
)

// PrivateKeyEncoding is the external representation policy for derived
// private keys.
type PrivateKeyEncoding int

const (
	// PrivateKeyHex is the raw hexadecimal encoding used by account-model
	// networks.
	PrivateKeyHex PrivateKeyEncoding = iota
	// PrivateKeyWIF is the checksummed legacy encoding used by Bitcoin.
	PrivateKeyWIF
)

// AddressEncoder maps a derived public key to a network address string.
type AddressEncoder func(pubKey *btcec.PublicKey) (string, error)

// FormatProfile binds one Bitcoin address format to its BIP purpose and
// encoder.
type FormatProfile struct {
	Purpose uint32
	Encode  AddressEncoder
}

// NetworkProfile is the static per-network derivation policy. Adding a
// network means adding an entry to the registry below, not new control flow.
type NetworkProfile struct {
	CoinType           uint32
	PrivateKeyEncoding PrivateKeyEncoding

	// Encode is set for account-model networks with a single address
	// encoding.
	Encode AddressEncoder
	// Formats is set for networks supporting multiple address encodings
	// from the same key material.
	Formats map[AddressFormat]FormatProfile
}

// HasFormats reports whether the network derives per-format (Bitcoin) rather
// than with a single fixed encoding.
func (p NetworkProfile) HasFormats() bool {
	return len(p.Formats) > 0
}

// Read-only, process-wide. Coin types follow SLIP-44; every EVM chain shares
// Ethereum's 60.
var networkProfiles = map[Network]NetworkProfile{
	NetworkBTC: {
		CoinType:           0,
		PrivateKeyEncoding: PrivateKeyWIF,
		Formats: map[AddressFormat]FormatProfile{
			FormatP2PKH:   {Purpose: 44, Encode: encodeP2PKH},
			FormatP2SH:    {Purpose: 49, Encode: encodeP2SHWrappedSegwit},
			FormatBech32:  {Purpose: 84, Encode: encodeP2WPKH},
			FormatTaproot: {Purpose: 86, Encode: encodeP2TR},
		},
	},
	NetworkETH:      {CoinType: 60, PrivateKeyEncoding: PrivateKeyHex, Encode: encodeEVM},
	NetworkBSC:      {CoinType: 60, PrivateKeyEncoding: PrivateKeyHex, Encode: encodeEVM},
	NetworkMATIC:    {CoinType: 60, PrivateKeyEncoding: PrivateKeyHex, Encode: encodeEVM},
	NetworkBASE:     {CoinType: 60, PrivateKeyEncoding: PrivateKeyHex, Encode: encodeEVM},
	NetworkOPTIMISM: {CoinType: 60, PrivateKeyEncoding: PrivateKeyHex, Encode: encodeEVM},
	NetworkARBITRUM: {CoinType: 60, PrivateKeyEncoding: PrivateKeyHex, Encode: encodeEVM},
	NetworkTRX:      {CoinType: 195, PrivateKeyEncoding: PrivateKeyHex, Encode: encodeTRX},
}

// GetNetworkProfile returns the profile for the given network, if supported.
func GetNetworkProfile(network Network) (NetworkProfile, bool) {
	profile, ok := networkProfiles[network]
	return profile, ok
}

// IsSupportedNetwork reports whether a profile exists for the given network.
func IsSupportedNetwork(network Network) bool {
	_, ok := networkProfiles[network]
	return ok
}

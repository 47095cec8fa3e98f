package hdwallet

import (
	"errors"
	"strings"

	"github.com/vulpemventures/go-bip39"
)

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic must not be null")
	// ErrInvalidMnemonicWordCount ...
	ErrInvalidMnemonicWordCount = errors.New(
		"mnemonic must contain 12, 15, 18, 21 or 24 words",
	)
	// ErrInvalidMnemonicChecksum ...
	ErrInvalidMnemonicChecksum = errors.New(
		"mnemonic checksum is invalid, check the spelling of the words",
	)
	// ErrNullNetworks ...
	ErrNullNetworks = errors.New("network list must not be empty")
	// ErrInvalidChangeSelector ...
	ErrInvalidChangeSelector = errors.New(
		"change selector must be either 0 (external) or 1 (internal)",
	)
)

// Wallet holds the BIP39 seed derived from a validated mnemonic and allows
// deriving per-network wallet records from it. The seed never leaves the
// struct and is not logged anywhere.
type Wallet struct {
	seed []byte
}

// NewWalletFromMnemonicOpts is the struct given to the NewWalletFromMnemonic
// method
type NewWalletFromMnemonicOpts struct {
	Mnemonic   string
	Passphrase string
}

func (o NewWalletFromMnemonicOpts) validate() error {
	mnemonic := strings.TrimSpace(o.Mnemonic)
	if len(mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if bip39.IsMnemonicValid(mnemonic) {
		return nil
	}
	switch len(strings.Fields(mnemonic)) {
	case 12, 15, 18, 21, 24:
		return ErrInvalidMnemonicChecksum
	default:
		return ErrInvalidMnemonicWordCount
	}
}

// NewWalletFromMnemonic validates the given mnemonic and stretches it into
// the wallet seed. An empty passphrase is equivalent to no passphrase.
func NewWalletFromMnemonic(opts NewWalletFromMnemonicOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	seed := bip39.NewSeed(strings.TrimSpace(opts.Mnemonic), opts.Passphrase)
	return &Wallet{seed: seed}, nil
}

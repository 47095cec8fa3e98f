package hdwallet

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"

	"github.com/seedscan/seedscan-daemon/pkg/rangeutil"
)

// DerivedWallet is one derived address record. Immutable once produced.
type DerivedWallet struct {
	Network        Network       `json:"network"`
	Address        string        `json:"address"`
	DerivationPath string        `json:"derivation_path"`
	PrivateKey     string        `json:"private_key"`
	AddressType    AddressFormat `json:"address_type"`
}

// DeriveWalletsOpts is the struct given to the DeriveWallets method.
// AccountIndexes and AddressIndexes are range-spec strings ("0", "0-5",
// "1,3,5"); empty or malformed specs default to [0].
type DeriveWalletsOpts struct {
	Networks              []Network
	AccountIndexes        string
	AddressIndexes        string
	BitcoinAddressFormats []AddressFormat
	ChangeSelectors       []uint32
}

func (o DeriveWalletsOpts) validate() error {
	if len(o.Networks) <= 0 {
		return ErrNullNetworks
	}
	for _, change := range o.ChangeSelectors {
		if change > 1 {
			return ErrInvalidChangeSelector
		}
	}
	return nil
}

// DeriveWallets folds over the cross-product of the requested dimensions
// (network, account, change, [format], address index) and returns one
// DerivedWallet per combination, in that order. A failure on one
// (network, account, change, format) branch is logged and skipped without
// aborting the others.
func (w *Wallet) DeriveWallets(opts DeriveWalletsOpts) ([]DerivedWallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	accounts := rangeutil.ParseWithDefault(opts.AccountIndexes, []uint32{0})
	indexes := rangeutil.ParseWithDefault(opts.AddressIndexes, []uint32{0})
	changes := opts.ChangeSelectors
	if len(changes) <= 0 {
		changes = []uint32{0}
	}

	wallets := make([]DerivedWallet, 0)

	for _, network := range opts.Networks {
		profile, ok := networkProfiles[network]
		if !ok {
			log.Warnf("no profile configured for network %s, skipping", network)
			continue
		}
		if profile.HasFormats() && len(opts.BitcoinAddressFormats) <= 0 {
			log.Warnf("no address formats selected for %s, skipping", network)
			continue
		}

		for _, account := range accounts {
			for _, change := range changes {
				if !profile.HasFormats() {
					derived, err := w.deriveBranch(
						network, profile, 44, profile.Encode, FormatNone,
						account, change, indexes,
					)
					if err != nil {
						log.WithError(err).Warnf(
							"derivation failed for %s account %d change %d, skipping",
							network, account, change,
						)
						continue
					}
					wallets = append(wallets, derived...)
					continue
				}

				for _, format := range opts.BitcoinAddressFormats {
					formatProfile, ok := profile.Formats[format]
					if !ok {
						log.Warnf(
							"address format %s not configured for %s, skipping",
							format, network,
						)
						continue
					}
					derived, err := w.deriveBranch(
						network, profile, formatProfile.Purpose,
						formatProfile.Encode, format, account, change, indexes,
					)
					if err != nil {
						log.WithError(err).Warnf(
							"derivation failed for %s %s account %d change %d, skipping",
							network, format, account, change,
						)
						continue
					}
					wallets = append(wallets, derived...)
				}
			}
		}
	}

	return wallets, nil
}

func (w *Wallet) deriveBranch(
	network Network, profile NetworkProfile,
	purpose uint32, encode AddressEncoder, format AddressFormat,
	account, change uint32, indexes []uint32,
) ([]DerivedWallet, error) {
	hdNode, err := hdkeychain.NewMaster(w.seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, err
	}

	for _, step := range []uint32{
		hdkeychain.HardenedKeyStart + purpose,
		hdkeychain.HardenedKeyStart + profile.CoinType,
		hdkeychain.HardenedKeyStart + account,
		change,
	} {
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return nil, err
		}
	}

	wallets := make([]DerivedWallet, 0, len(indexes))
	for _, index := range indexes {
		child, err := hdNode.Derive(index)
		if err != nil {
			return nil, err
		}

		pubKey, err := child.ECPubKey()
		if err != nil {
			return nil, err
		}
		address, err := encode(pubKey)
		if err != nil {
			return nil, err
		}

		privKey, err := child.ECPrivKey()
		if err != nil {
			return nil, err
		}
		encodedPrivKey, err := encodePrivateKey(privKey, profile.PrivateKeyEncoding)
		if err != nil {
			return nil, err
		}

		wallets = append(wallets, DerivedWallet{
			Network:        network,
			Address:        address,
			DerivationPath: NewBIP44Path(purpose, profile.CoinType, account, change, index).String(),
			PrivateKey:     encodedPrivKey,
			AddressType:    format,
		})
	}

	return wallets, nil
}

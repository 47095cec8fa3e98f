package main

import (
	"github.com/urfave/cli/v2"

	"github.com/seedscan/seedscan-daemon/pkg/hdwallet"
)

var derive = cli.Command{
	Name:  "derive",
	Usage: "derive wallet addresses and keys offline, without any lookup",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "mnemonic",
			Usage:    "BIP39 seed phrase, quoted",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "passphrase",
			Usage: "optional BIP39 passphrase",
		},
		&cli.StringSliceFlag{
			Name:  "network",
			Usage: "network to derive for (BTC, ETH, BSC, MATIC, BASE, OPTIMISM, ARBITRUM, TRX)",
			Value: cli.NewStringSlice("ETH"),
		},
		&cli.StringFlag{
			Name:  "accounts",
			Usage: "account index range, like \"0\" or \"0-2\" or \"0,3\"",
			Value: "0",
		},
		&cli.StringFlag{
			Name:  "indexes",
			Usage: "address index range, like \"0-10\"",
			Value: "0-10",
		},
		&cli.StringSliceFlag{
			Name:  "btc-type",
			Usage: "bitcoin address type (P2PKH, P2SH, BECH32, TAPROOT)",
			Value: cli.NewStringSlice("BECH32"),
		},
		&cli.IntSliceFlag{
			Name:  "change",
			Usage: "change selector, 0 (external) and/or 1 (internal)",
			Value: cli.NewIntSlice(0),
		},
	},
	Action: deriveAction,
}

func deriveAction(ctx *cli.Context) error {
	wallet, err := hdwallet.NewWalletFromMnemonic(hdwallet.NewWalletFromMnemonicOpts{
		Mnemonic:   ctx.String("mnemonic"),
		Passphrase: ctx.String("passphrase"),
	})
	if err != nil {
		return err
	}

	wallets, err := wallet.DeriveWallets(hdwallet.DeriveWalletsOpts{
		Networks:              toNetworks(ctx.StringSlice("network")),
		AccountIndexes:        ctx.String("accounts"),
		AddressIndexes:        ctx.String("indexes"),
		BitcoinAddressFormats: toFormats(ctx.StringSlice("btc-type")),
		ChangeSelectors:       toChanges(ctx.IntSlice("change")),
	})
	if err != nil {
		return err
	}

	printRespJSON(wallets)
	return nil
}

func toNetworks(names []string) []hdwallet.Network {
	networks := make([]hdwallet.Network, 0, len(names))
	for _, name := range names {
		networks = append(networks, hdwallet.Network(name))
	}
	return networks
}

func toFormats(names []string) []hdwallet.AddressFormat {
	formats := make([]hdwallet.AddressFormat, 0, len(names))
	for _, name := range names {
		formats = append(formats, hdwallet.AddressFormat(name))
	}
	return formats
}

func toChanges(values []int) []uint32 {
	changes := make([]uint32, 0, len(values))
	for _, value := range values {
		changes = append(changes, uint32(value))
	}
	return changes
}

package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/seedscan/seedscan-daemon/config"
	"github.com/seedscan/seedscan-daemon/internal/core/application"
	"github.com/seedscan/seedscan-daemon/internal/core/domain"
)

var scan = cli.Command{
	Name:  "scan",
	Usage: "derive wallets and check each address against its explorer",
	Flags: append(derive.Flags,
		&cli.StringFlag{
			Name:  "etherscan-key",
			Usage: "Etherscan API key, used for every EVM chain",
		},
		&cli.StringFlag{
			Name:  "trongrid-key",
			Usage: "TronGrid API key",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "print every derived wallet, not only the ones with funds or history",
		},
	),
	Action: scanAction,
}

func scanAction(ctx *cli.Context) error {
	scanner, err := application.NewScannerService(application.ScannerServiceOpts{
		ExplorerFactory:      config.NewExplorerFactory(),
		MaxConcurrentLookups: config.GetInt(config.MaxConcurrentLookupsKey),
		ScanTimeout:          config.GetDuration(config.ScanTimeoutKey, time.Second),
	})
	if err != nil {
		return err
	}

	report, err := scanner.Scan(context.Background(), domain.ScanRequest{
		SeedPhrase:          ctx.String("mnemonic"),
		Passphrase:          ctx.String("passphrase"),
		SelectedNetworks:    toNetworks(ctx.StringSlice("network")),
		AccountIndices:      ctx.String("accounts"),
		AddressIndices:      ctx.String("indexes"),
		BitcoinAddressTypes: toFormats(ctx.StringSlice("btc-type")),
		ChangeTypes:         toChanges(ctx.IntSlice("change")),
		APIKeys: domain.APIKeys{
			Ethereum: ctx.String("etherscan-key"),
			Tron:     ctx.String("trongrid-key"),
		},
	})
	if err != nil {
		return err
	}

	if ctx.Bool("all") {
		printRespJSON(report.AllDerivedWallets)
		return nil
	}
	printRespJSON(report.Results)
	return nil
}

package config

import (
	"fmt"
	"time"

	"go.uber.org/ratelimit"

	"github.com/seedscan/seedscan-daemon/internal/core/application"
	"github.com/seedscan/seedscan-daemon/internal/core/domain"
	"github.com/seedscan/seedscan-daemon/pkg/explorer"
	"github.com/seedscan/seedscan-daemon/pkg/explorer/esplora"
	"github.com/seedscan/seedscan-daemon/pkg/explorer/etherscan"
	"github.com/seedscan/seedscan-daemon/pkg/explorer/trongrid"
	"github.com/seedscan/seedscan-daemon/pkg/hdwallet"
	"github.com/seedscan/seedscan-daemon/pkg/pricing"
)

// evmChain is the static per-chain metadata of the unified Etherscan V2
// endpoint.
type evmChain struct {
	chainID      int
	linkBaseURL  string
	usdtContract string
	priceSymbol  string
}

// USDT contract addresses per chain. The L2s settling in ETH share
// Ethereum's price symbol.
var evmChains = map[hdwallet.Network]evmChain{
	hdwallet.NetworkETH: {
		chainID:      1,
		linkBaseURL:  "https://etherscan.io/address/",
		usdtContract: "0xdAC17F958D2ee523a2206206994597C13D831ec7",
		priceSymbol:  "ETH",
	},
	hdwallet.NetworkBSC: {
		chainID:      56,
		linkBaseURL:  "https://bscscan.com/address/",
		usdtContract: "0x55d398326f99059fF775485246999027B3197955",
		priceSymbol:  "BSC",
	},
	hdwallet.NetworkMATIC: {
		chainID:      137,
		linkBaseURL:  "https://polygonscan.com/address/",
		usdtContract: "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
		priceSymbol:  "MATIC",
	},
	hdwallet.NetworkBASE: {
		chainID:      8453,
		linkBaseURL:  "https://basescan.org/address/",
		usdtContract: "0xfde4C96c8593536E31F229EA8f37b2ADa2699bb2",
		priceSymbol:  "ETH",
	},
	hdwallet.NetworkOPTIMISM: {
		chainID:      10,
		linkBaseURL:  "https://optimistic.etherscan.io/address/",
		usdtContract: "0x94b008aA00579c1307B0EF2c499aD98a8ce58e58",
		priceSymbol:  "ETH",
	},
	hdwallet.NetworkARBITRUM: {
		chainID:      42161,
		linkBaseURL:  "https://arbiscan.io/address/",
		usdtContract: "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9",
		priceSymbol:  "ETH",
	},
}

const (
	btcLinkBaseURL  = "https://www.okx.com/web3/explorer/btc/address/"
	trxLinkBaseURL  = "https://tronscan.org/#/address/"
	trxUSDTContract = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
)

type explorerFactory struct {
	requestTimeout time.Duration
	oracle         pricing.Oracle

	// One limiter per backend family, shared across requests so the
	// per-family budget holds daemon-wide.
	esploraLimiter   ratelimit.Limiter
	etherscanLimiter ratelimit.Limiter
	trongridLimiter  ratelimit.Limiter
}

// NewExplorerFactory returns an application.ExplorerFactory wired from
// config. The rate limiters are created once here.
func NewExplorerFactory() application.ExplorerFactory {
	return &explorerFactory{
		requestTimeout:   GetDuration(ExplorerRequestTimeoutKey, time.Millisecond),
		oracle:           pricing.NewDefaultOracle(),
		esploraLimiter:   ratelimit.New(GetInt(EsploraRateLimitKey)),
		etherscanLimiter: ratelimit.New(GetInt(EtherscanRateLimitKey)),
		trongridLimiter:  ratelimit.New(GetInt(TronGridRateLimitKey)),
	}
}

func (f *explorerFactory) NewService(
	network hdwallet.Network, keys domain.APIKeys,
) (explorer.Service, error) {
	switch network {
	case hdwallet.NetworkBTC:
		return esplora.NewService(esplora.ServiceOpts{
			APIURL:              GetString(EsploraEndpointKey),
			ExplorerLinkBaseURL: btcLinkBaseURL,
			RequestTimeout:      f.requestTimeout,
			Oracle:              f.oracle,
			Limiter:             f.esploraLimiter,
		})
	case hdwallet.NetworkTRX:
		return trongrid.NewService(trongrid.ServiceOpts{
			APIURL:              GetString(TronGridEndpointKey),
			APIKey:              keys.Tron,
			ExplorerLinkBaseURL: trxLinkBaseURL,
			USDTContract:        trxUSDTContract,
			RequestTimeout:      f.requestTimeout,
			Oracle:              f.oracle,
			Limiter:             f.trongridLimiter,
		})
	}

	chain, ok := evmChains[network]
	if !ok {
		return nil, fmt.Errorf("no explorer configured for network %s", network)
	}
	return etherscan.NewService(etherscan.ServiceOpts{
		APIURL:              GetString(EtherscanEndpointKey),
		APIKey:              keys.Ethereum,
		ChainID:             chain.chainID,
		ExplorerLinkBaseURL: chain.linkBaseURL,
		USDTContract:        chain.usdtContract,
		PriceSymbol:         chain.priceSymbol,
		RequestTimeout:      f.requestTimeout,
		Oracle:              f.oracle,
		Limiter:             f.etherscanLimiter,
	})
}

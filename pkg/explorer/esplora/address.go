package esplora

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/seedscan/seedscan-daemon/pkg/explorer"
)

// addressStats is the esplora address-summary payload.
type addressStats struct {
	Address      string `json:"address"`
	ChainStats   stats  `json:"chain_stats"`
	MempoolStats stats  `json:"mempool_stats"`
}

type stats struct {
	FundedTxoSum int64 `json:"funded_txo_sum"`
	SpentTxoSum  int64 `json:"spent_txo_sum"`
	TxCount      int64 `json:"tx_count"`
}

func (e *esplora) AddressReport(
	ctx context.Context, address string,
) (*explorer.AddressReport, error) {
	explorerLink := e.linkBaseURL + address

	url := fmt.Sprintf("%s/address/%s", e.apiURL, address)
	status, body, err := e.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("error on retrieving address stats: %w", err)
	}
	if status == http.StatusNoContent || len(body) <= 0 {
		return explorer.NewEmptyReport(explorerLink), nil
	}

	var summary addressStats
	if err := json.Unmarshal([]byte(body), &summary); err != nil {
		return nil, fmt.Errorf("invalid address stats JSON")
	}

	// Confirmed and mempool scopes both count.
	fundedSats := summary.ChainStats.FundedTxoSum + summary.MempoolStats.FundedTxoSum
	spentSats := summary.ChainStats.SpentTxoSum + summary.MempoolStats.SpentTxoSum
	txCount := summary.ChainStats.TxCount + summary.MempoolStats.TxCount
	netSats := fundedSats - spentSats

	balanceBTC := decimal.New(netSats, -8)
	price, _ := e.oracle.Price("BTC")

	return &explorer.AddressReport{
		BalanceCrypto:   balanceBTC,
		BalanceUSD:      balanceBTC.Mul(price),
		HasTransactions: txCount > 0,
		HasRealBalance:  netSats > 0,
		ExplorerLink:    explorerLink,
		BalanceSats:     &netSats,
	}, nil
}

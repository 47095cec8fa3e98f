package trongrid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/seedscan/seedscan-daemon/pkg/explorer"
)

// Both TRX (sun) and TRC20 USDT use 6 decimals.
const assetDecimals = 6

// envelope is the TronGrid response wrapper. Success is a pointer because
// some endpoints omit the flag entirely.
type envelope struct {
	Success *bool             `json:"success"`
	Message string            `json:"message"`
	Data    []json.RawMessage `json:"data"`
}

type accountDetails struct {
	Balance int64               `json:"balance"`
	TRC20   []map[string]string `json:"trc20"`
}

func classifyEnvelope(env envelope) explorer.Classification {
	if env.Success != nil && !*env.Success {
		return explorer.Classification{
			Outcome: explorer.OutcomeWarning,
			Message: env.Message,
		}
	}
	if len(env.Data) <= 0 {
		return explorer.Classification{Outcome: explorer.OutcomeEmpty}
	}
	return explorer.Classification{Outcome: explorer.OutcomeSuccess}
}

func (t *trongrid) AddressReport(
	ctx context.Context, address string,
) (*explorer.AddressReport, error) {
	report := explorer.NewEmptyReport(t.linkBaseURL + address)

	env, err := t.get(ctx, fmt.Sprintf("/v1/accounts/%s", address), nil)
	if err != nil {
		return nil, fmt.Errorf("error on retrieving account: %w", err)
	}

	switch cls := classifyEnvelope(*env); cls.Outcome {
	case explorer.OutcomeWarning:
		log.Warnf("tron account lookup: %s", cls.Message)
		return report, nil
	case explorer.OutcomeEmpty:
		// Never-activated accounts come back with an empty data list.
		return report, nil
	}

	var details accountDetails
	if err := json.Unmarshal(env.Data[0], &details); err != nil {
		return nil, fmt.Errorf("invalid account JSON")
	}

	t.accumulate(report, decimal.New(details.Balance, -assetDecimals), "TRX")
	if amount, ok := t.usdtBalance(details); ok {
		t.accumulate(report, amount, "USDT")
	}

	// The transaction-list query never discards the balances above: on
	// failure the activity flag just stays at its default.
	hasTransactions, err := t.hasTransactions(ctx, address)
	if err != nil {
		log.WithError(err).Warn(
			"tron history lookup failed, activity left unknown",
		)
		return report, nil
	}
	report.HasTransactions = hasTransactions

	return report, nil
}

// usdtBalance locates the configured USDT contract among the account's
// TRC20 holdings.
func (t *trongrid) usdtBalance(details accountDetails) (decimal.Decimal, bool) {
	if len(t.usdtContract) <= 0 {
		return decimal.Zero, false
	}
	for _, token := range details.TRC20 {
		raw, ok := token[t.usdtContract]
		if !ok {
			continue
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			log.Warnf("tron: unexpected token balance %q", raw)
			return decimal.Zero, false
		}
		return amount.Shift(-assetDecimals), true
	}
	return decimal.Zero, false
}

func (t *trongrid) accumulate(
	report *explorer.AddressReport, amount decimal.Decimal, priceSymbol string,
) {
	report.BalanceCrypto = report.BalanceCrypto.Add(amount)
	price, _ := t.oracle.Price(priceSymbol)
	report.BalanceUSD = report.BalanceUSD.Add(amount.Mul(price))
	if amount.IsPositive() {
		report.HasRealBalance = true
	}
}

func (t *trongrid) hasTransactions(
	ctx context.Context, address string,
) (bool, error) {
	env, err := t.get(
		ctx,
		fmt.Sprintf("/v1/accounts/%s/transactions", address),
		url.Values{
			"limit":    {"1"},
			"order_by": {"block_timestamp,desc"},
		},
	)
	if err != nil {
		return false, err
	}

	switch cls := classifyEnvelope(*env); cls.Outcome {
	case explorer.OutcomeSuccess:
		return true, nil
	case explorer.OutcomeWarning:
		log.Warnf("tron history lookup: %s", cls.Message)
	}
	return false, nil
}

package etherscan

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/seedscan/seedscan-daemon/pkg/explorer"
)

const (
	nativeDecimals = 18
	usdtDecimals   = 6
)

func (s *etherscan) AddressReport(
	ctx context.Context, address string,
) (*explorer.AddressReport, error) {
	report := explorer.NewEmptyReport(s.linkBaseURL + address)

	// Native and token balances are balance-determining: a fatal failure on
	// either aborts the whole lookup.
	if err := s.addNativeBalance(ctx, address, report); err != nil {
		return nil, err
	}
	if err := s.addTokenBalance(ctx, address, report); err != nil {
		return nil, err
	}

	// History queries only ever degrade has_transactions, never the
	// balances already collected.
	if s.hasActivity(ctx, address, "txlist", nil) {
		report.HasTransactions = true
	}
	if !report.HasTransactions && len(s.usdtContract) > 0 {
		if s.hasActivity(ctx, address, "tokentx", url.Values{
			"contractaddress": {s.usdtContract},
		}) {
			report.HasTransactions = true
		}
	}

	return report, nil
}

func (s *etherscan) addNativeBalance(
	ctx context.Context, address string, report *explorer.AddressReport,
) error {
	env, err := s.query(ctx, address, "balance", nil)
	if err != nil {
		return fmt.Errorf("error on retrieving native balance: %w", err)
	}

	switch cls := classifyEnvelope(*env); cls.Outcome {
	case explorer.OutcomeSuccess:
		wei, ok := env.resultString()
		if !ok {
			return nil
		}
		balance, err := decimal.NewFromString(wei)
		if err != nil {
			log.Warnf("chain %d: unexpected native balance %q", s.chainID, wei)
			return nil
		}
		s.accumulate(report, balance.Shift(-nativeDecimals), s.priceSymbol)
	case explorer.OutcomeWarning:
		log.Warnf("chain %d native balance: %s", s.chainID, cls.Message)
	}
	return nil
}

func (s *etherscan) addTokenBalance(
	ctx context.Context, address string, report *explorer.AddressReport,
) error {
	if len(s.usdtContract) <= 0 {
		return nil
	}

	env, err := s.query(ctx, address, "tokenbalance", url.Values{
		"contractaddress": {s.usdtContract},
	})
	if err != nil {
		return fmt.Errorf("error on retrieving token balance: %w", err)
	}

	switch cls := classifyEnvelope(*env); cls.Outcome {
	case explorer.OutcomeSuccess:
		units, ok := env.resultString()
		if !ok {
			return nil
		}
		balance, err := decimal.NewFromString(units)
		if err != nil {
			log.Warnf("chain %d: unexpected token balance %q", s.chainID, units)
			return nil
		}
		s.accumulate(report, balance.Shift(-usdtDecimals), "USDT")
	case explorer.OutcomeWarning:
		log.Warnf("chain %d token balance: %s", s.chainID, cls.Message)
	}
	return nil
}

func (s *etherscan) accumulate(
	report *explorer.AddressReport, amount decimal.Decimal, priceSymbol string,
) {
	report.BalanceCrypto = report.BalanceCrypto.Add(amount)
	price, _ := s.oracle.Price(priceSymbol)
	report.BalanceUSD = report.BalanceUSD.Add(amount.Mul(price))
	if amount.IsPositive() {
		report.HasRealBalance = true
	}
}

// hasActivity checks whether the given transaction-list action returns at
// least one entry. One entry is enough, so the page size is capped at 1.
func (s *etherscan) hasActivity(
	ctx context.Context, address, action string, extra url.Values,
) bool {
	query := url.Values{
		"page":   {"1"},
		"offset": {"1"},
		"sort":   {"desc"},
	}
	for key, values := range extra {
		query[key] = values
	}

	env, err := s.query(ctx, address, action, query)
	if err != nil {
		log.WithError(err).Warnf(
			"chain %d: %s history lookup failed, activity left unknown",
			s.chainID, action,
		)
		return false
	}

	switch cls := classifyEnvelope(*env); cls.Outcome {
	case explorer.OutcomeSuccess:
		return env.resultLen() > 0
	case explorer.OutcomeWarning:
		log.Warnf("chain %d %s history: %s", s.chainID, action, cls.Message)
	}
	return false
}

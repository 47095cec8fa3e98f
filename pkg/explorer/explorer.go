package explorer

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service is the interface to implement for any per-network explorer backend
// able to report the balance and activity of an address. A returned error
// means the lookup failed at the transport/parse level and the address state
// is unknown; soft backend failures are normalized into the report instead.
type Service interface {
	AddressReport(ctx context.Context, address string) (*AddressReport, error)
}

// AddressReport is the canonical normalized result of one address lookup.
type AddressReport struct {
	BalanceCrypto   decimal.Decimal `json:"balance_crypto"`
	BalanceUSD      decimal.Decimal `json:"balance_usd"`
	HasTransactions bool            `json:"has_transactions"`
	HasRealBalance  bool            `json:"has_real_balance"`
	ExplorerLink    string          `json:"explorer_link"`

	// BalanceSats is only set by UTXO-chain backends reporting in the
	// smallest unit.
	BalanceSats *int64 `json:"balance_smallest_unit,omitempty"`

	// FatalError, when set, marks every other field as not meaningful.
	FatalError string `json:"error_fatal,omitempty"`
}

// NewEmptyReport returns a zero-balance, zero-activity report for the given
// explorer deep link.
func NewEmptyReport(explorerLink string) *AddressReport {
	return &AddressReport{
		BalanceCrypto: decimal.Zero,
		BalanceUSD:    decimal.Zero,
		ExplorerLink:  explorerLink,
	}
}

// NewFatalReport returns a report carrying only the fatal error and the
// explorer deep link, with all numeric fields zeroed.
func NewFatalReport(explorerLink string, err error) *AddressReport {
	report := NewEmptyReport(explorerLink)
	report.FatalError = err.Error()
	return report
}

// Outcome tags the classification of a backend response envelope. The
// explorer APIs consumed here overload their envelopes: a success-shaped
// response may actually mean "no data" or "rate limited", so every family
// classifies explicitly instead of relying on errors for control flow.
type Outcome int

const (
	// OutcomeSuccess is a genuine success envelope with usable data.
	OutcomeSuccess Outcome = iota
	// OutcomeEmpty is a failure-shaped envelope that actually encodes
	// "no data for this address" and must normalize to a zero result.
	OutcomeEmpty
	// OutcomeWarning is a non-fatal backend failure (rate limit, bad key)
	// that leaves the corresponding report component at its default.
	OutcomeWarning
	// OutcomeFatal is a transport or parse failure; the whole lookup is
	// unreliable.
	OutcomeFatal
)

// Classification is the tagged result of classifying one response envelope.
type Classification struct {
	Outcome Outcome
	Message string
}

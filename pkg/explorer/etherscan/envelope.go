package etherscan

import (
	"encoding/json"
	"strings"

	"github.com/seedscan/seedscan-daemon/pkg/explorer"
)

// envelope is the Etherscan-style response wrapper. Result is kept raw
// because its shape depends on the action (string for balances, array for
// transaction lists).
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Messages that come wrapped in a status "0" envelope but actually mean
// "this address has no data", not an error.
var noDataMessages = []string{
	"no transactions found",
	"no records found",
	"zero balance",
	"address not found",
}

// classifyEnvelope resolves the status "0" ambiguity: a no-data message is a
// zero-result success, anything else (rate limit, invalid key) is a
// non-fatal warning.
func classifyEnvelope(env envelope) explorer.Classification {
	if env.Status == "1" {
		return explorer.Classification{Outcome: explorer.OutcomeSuccess}
	}

	message := strings.ToLower(env.Message)
	for _, noData := range noDataMessages {
		if strings.Contains(message, noData) {
			return explorer.Classification{Outcome: explorer.OutcomeEmpty}
		}
	}
	return explorer.Classification{
		Outcome: explorer.OutcomeWarning,
		Message: env.Message,
	}
}

// resultString decodes a scalar result field ("12345" wei, token units).
func (env envelope) resultString() (string, bool) {
	var value string
	if err := json.Unmarshal(env.Result, &value); err != nil {
		return "", false
	}
	return value, true
}

// resultLen decodes a list result field and returns its length.
func (env envelope) resultLen() int {
	var entries []json.RawMessage
	if err := json.Unmarshal(env.Result, &entries); err != nil {
		return 0
	}
	return len(entries)
}

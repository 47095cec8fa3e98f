package pricing

import "github.com/shopspring/decimal"

// Oracle resolves the USD reference price for an asset symbol. The balance
// normalizers depend on this interface only, so a live feed can replace the
// static table without touching the explorer adapters.
type Oracle interface {
	Price(symbol string) (decimal.Decimal, bool)
}

// StaticOracle serves prices from a fixed in-memory table. Read-only after
// construction.
type StaticOracle struct {
	prices map[string]decimal.Decimal
}

// NewStaticOracle returns an Oracle backed by the given price table.
func NewStaticOracle(prices map[string]decimal.Decimal) *StaticOracle {
	table := make(map[string]decimal.Decimal, len(prices))
	for symbol, price := range prices {
		table[symbol] = price
	}
	return &StaticOracle{prices: table}
}

// NewDefaultOracle returns a StaticOracle loaded with the reference price
// table. The values are placeholders for USD conversion, not market data.
func NewDefaultOracle() *StaticOracle {
	return NewStaticOracle(map[string]decimal.Decimal{
		"BTC":   decimal.RequireFromString("70000.00"),
		"ETH":   decimal.RequireFromString("3500.00"),
		"BSC":   decimal.RequireFromString("600.00"),
		"MATIC": decimal.RequireFromString("0.70"),
		"TRX":   decimal.RequireFromString("0.12"),
		"USDT":  decimal.RequireFromString("1.00"),
	})
}

func (o *StaticOracle) Price(symbol string) (decimal.Decimal, bool) {
	price, ok := o.prices[symbol]
	return price, ok
}

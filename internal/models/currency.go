package models

// Currency is the closed set of currencies the agency operates in. Records
// may carry other currency codes, but only these take part in aggregation;
// anything else is silently excluded from the finance summary.
type Currency string

const (
	CurrencyAZN Currency = "AZN"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Currencies lists every recognized currency in report order.
var Currencies = []Currency{CurrencyAZN, CurrencyUSD, CurrencyEUR}

// Recognized reports whether the currency takes part in aggregation.
func (c Currency) Recognized() bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}

// Money is an amount in one currency.
type Money struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

package models

import "encoding/json"

// Capital is the agency's starting funds, held in exactly one currency. It is
// a singleton: updating it overwrites the previous value, no history is kept.
type Capital struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// SummaryByCurrency holds one figure per recognized currency.
type SummaryByCurrency map[Currency]float64

// NewSummaryByCurrency returns a summary with every recognized currency
// present and zeroed, so reports always show the full currency set.
func NewSummaryByCurrency() SummaryByCurrency {
	summary := make(SummaryByCurrency, len(Currencies))
	for _, currency := range Currencies {
		summary[currency] = 0
	}
	return summary
}

// FinanceSummary is the dashboard payload. Order and admin expenses are
// intermediate figures and intentionally not part of the response.
type FinanceSummary struct {
	Capital       Capital           `json:"capital"`
	TotalIncome   SummaryByCurrency `json:"totalIncome"`
	TotalExpenses SummaryByCurrency `json:"totalExpenses"`
	NetProfit     SummaryByCurrency `json:"netProfit"`
	FinalBalance  SummaryByCurrency `json:"finalBalance"`
}

// CapitalUpdate is the payload for replacing the capital. Amount stays raw:
// the legacy frontend sometimes sends it as a string, and a missing amount
// must be distinguishable from zero.
type CapitalUpdate struct {
	Amount   json.RawMessage `json:"amount"`
	Currency Currency        `json:"currency"`
}

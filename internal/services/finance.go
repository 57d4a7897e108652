package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/turagency/backoffice/internal/models"
)

// FinanceService builds the dashboard summary and owns the capital singleton.
type FinanceService struct {
	storage financeStorage
	mu      sync.Mutex
}

type financeStorage interface {
	GetOrders() ([]models.Order, error)
	GetExpenses() ([]models.Expense, error)
	GetCapital() (models.Capital, error)
	SaveCapital(capital models.Capital) error
}

func NewFinanceService(storage financeStorage) *FinanceService {
	return &FinanceService{storage: storage}
}

// GetSummary reduces orders, expenses and capital into per-currency totals.
// The optional month filter is a plain "YYYY-MM" prefix match against each
// record's creation timestamp, not a calendar computation. Amounts in
// unrecognized currencies are dropped from the sums. No FX conversion
// happens anywhere: the capital amount lands only in its own currency's
// final balance.
func (f *FinanceService) GetSummary(ctx context.Context, month string) (models.FinanceSummary, error) {
	capital, err := f.storage.GetCapital()
	if err != nil {
		return models.FinanceSummary{}, err
	}
	orders, err := f.storage.GetOrders()
	if err != nil {
		return models.FinanceSummary{}, err
	}
	expenses, err := f.storage.GetExpenses()
	if err != nil {
		return models.FinanceSummary{}, err
	}

	totalIncome := models.NewSummaryByCurrency()
	totalOrderExpenses := models.NewSummaryByCurrency()
	totalAdminExpenses := models.NewSummaryByCurrency()
	totalExpenses := models.NewSummaryByCurrency()
	netProfit := models.NewSummaryByCurrency()
	finalBalance := models.NewSummaryByCurrency()

	for _, order := range orders {
		if month != "" && !strings.HasPrefix(order.CreationTimestamp, month) {
			continue
		}
		if order.Satish.Currency.Recognized() {
			totalIncome[order.Satish.Currency] += order.Satish.Amount
		}
		if order.Alish.Currency.Recognized() {
			totalOrderExpenses[order.Alish.Currency] += order.Alish.Amount
		}
	}

	for _, expense := range expenses {
		if month != "" && !strings.HasPrefix(expense.CreationTimestamp, month) {
			continue
		}
		if expense.Currency.Recognized() {
			totalAdminExpenses[expense.Currency] += expense.TotalAmount
		}
	}

	for _, currency := range models.Currencies {
		totalExpenses[currency] = totalOrderExpenses[currency] + totalAdminExpenses[currency]
		netProfit[currency] = totalIncome[currency] - totalExpenses[currency]
		finalBalance[currency] = netProfit[currency]
	}
	if capital.Currency.Recognized() {
		finalBalance[capital.Currency] += capital.Amount
	}

	return models.FinanceSummary{
		Capital:       capital,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		FinalBalance:  finalBalance,
	}, nil
}

// UpdateCapital replaces the capital singleton. Amount must be present and
// currency non-empty; a non-numeric amount is coerced to 0, matching the
// legacy behavior the frontend depends on.
func (f *FinanceService) UpdateCapital(ctx context.Context, update models.CapitalUpdate) (models.Capital, error) {
	if len(update.Amount) == 0 || update.Currency == "" {
		return models.Capital{}, fmt.Errorf("%w: amount and currency are required", ErrValidation)
	}

	capital := models.Capital{
		Amount:   coerceAmount(update.Amount),
		Currency: update.Currency,
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.storage.SaveCapital(capital); err != nil {
		return models.Capital{}, err
	}
	return capital, nil
}

// coerceAmount accepts a JSON number or a numeric string; everything else
// becomes 0.
func coerceAmount(raw json.RawMessage) float64 {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return parsed
		}
	}
	return 0
}

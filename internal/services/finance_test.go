package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/store"
)

func newFinanceFixture(t *testing.T) (*FinanceService, *store.Store) {
	storage, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewFinanceService(storage), storage
}

func TestGetSummaryAggregatesPerCurrency(t *testing.T) {
	s, storage := newFinanceFixture(t)

	require.NoError(t, storage.SaveAllOrders([]models.Order{
		{
			ID:                "1",
			SatisNo:           "1001",
			Alish:             models.Money{Amount: 400, Currency: models.CurrencyAZN},
			Satish:            models.Money{Amount: 500, Currency: models.CurrencyAZN},
			CreationTimestamp: "2024-03-10T12:00:00.000Z",
		},
		{
			ID:                "2",
			SatisNo:           "1002",
			Alish:             models.Money{Amount: 100, Currency: models.CurrencyUSD},
			Satish:            models.Money{Amount: 150, Currency: models.CurrencyUSD},
			CreationTimestamp: "2024-03-15T12:00:00.000Z",
		},
	}))
	require.NoError(t, storage.SaveAllExpenses([]models.Expense{
		{ID: "e1", TotalAmount: 50, Currency: models.CurrencyAZN, CreationTimestamp: "2024-03-20T12:00:00.000Z"},
	}))
	require.NoError(t, storage.SaveCapital(models.Capital{Amount: 1000, Currency: models.CurrencyUSD}))

	summary, err := s.GetSummary(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 500.0, summary.TotalIncome[models.CurrencyAZN])
	assert.Equal(t, 150.0, summary.TotalIncome[models.CurrencyUSD])
	assert.Equal(t, 450.0, summary.TotalExpenses[models.CurrencyAZN])
	assert.Equal(t, 100.0, summary.TotalExpenses[models.CurrencyUSD])
	assert.Equal(t, 50.0, summary.NetProfit[models.CurrencyAZN])
	assert.Equal(t, 50.0, summary.NetProfit[models.CurrencyUSD])

	// Capital lands only in its own currency's balance, no conversion.
	assert.Equal(t, 50.0, summary.FinalBalance[models.CurrencyAZN])
	assert.Equal(t, 1050.0, summary.FinalBalance[models.CurrencyUSD])
	assert.Equal(t, 0.0, summary.FinalBalance[models.CurrencyEUR])
}

func TestGetSummaryDropsUnrecognizedCurrencies(t *testing.T) {
	s, storage := newFinanceFixture(t)

	require.NoError(t, storage.SaveAllOrders([]models.Order{
		{
			ID:                "1",
			SatisNo:           "1001",
			Satish:            models.Money{Amount: 500, Currency: "GBP"},
			CreationTimestamp: "2024-03-10T12:00:00.000Z",
		},
	}))

	summary, err := s.GetSummary(context.Background(), "")
	require.NoError(t, err)

	for _, currency := range models.Currencies {
		assert.Equal(t, 0.0, summary.TotalIncome[currency])
	}
	_, present := summary.TotalIncome["GBP"]
	assert.False(t, present)
}

func TestGetSummaryMonthFilterIsPrefixMatch(t *testing.T) {
	s, storage := newFinanceFixture(t)

	require.NoError(t, storage.SaveAllOrders([]models.Order{
		{
			ID:                "1",
			SatisNo:           "1001",
			Satish:            models.Money{Amount: 500, Currency: models.CurrencyAZN},
			CreationTimestamp: "2024-03-10T12:00:00.000Z",
		},
		{
			ID:                "2",
			SatisNo:           "1002",
			Satish:            models.Money{Amount: 300, Currency: models.CurrencyAZN},
			CreationTimestamp: "2024-04-02T12:00:00.000Z",
		},
	}))

	summary, err := s.GetSummary(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, 500.0, summary.TotalIncome[models.CurrencyAZN])

	summary, err = s.GetSummary(context.Background(), "2024-04")
	require.NoError(t, err)
	assert.Equal(t, 300.0, summary.TotalIncome[models.CurrencyAZN])
}

func TestGetSummaryDefaultsCapital(t *testing.T) {
	s, _ := newFinanceFixture(t)

	summary, err := s.GetSummary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, models.Capital{Amount: 0, Currency: models.CurrencyAZN}, summary.Capital)
}

func TestUpdateCapital(t *testing.T) {
	testCases := []struct {
		testName       string
		update         models.CapitalUpdate
		expectedAmount float64
		expectError    bool
	}{
		{
			testName:       "numeric amount",
			update:         models.CapitalUpdate{Amount: json.RawMessage(`1500.5`), Currency: models.CurrencyAZN},
			expectedAmount: 1500.5,
		},
		{
			testName:       "string amount is coerced",
			update:         models.CapitalUpdate{Amount: json.RawMessage(`"250"`), Currency: models.CurrencyUSD},
			expectedAmount: 250,
		},
		{
			testName:       "garbage amount becomes zero",
			update:         models.CapitalUpdate{Amount: json.RawMessage(`"abc"`), Currency: models.CurrencyEUR},
			expectedAmount: 0,
		},
		{
			testName:    "missing amount is rejected",
			update:      models.CapitalUpdate{Currency: models.CurrencyAZN},
			expectError: true,
		},
		{
			testName:    "missing currency is rejected",
			update:      models.CapitalUpdate{Amount: json.RawMessage(`100`)},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			s, storage := newFinanceFixture(t)

			capital, err := s.UpdateCapital(context.Background(), tc.update)
			if tc.expectError {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedAmount, capital.Amount)

			stored, err := storage.GetCapital()
			require.NoError(t, err)
			assert.Equal(t, capital, stored)
		})
	}
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/store"
)

func newBookkeepingFixture(t *testing.T) (*BookkeepingService, *store.Store) {
	storage, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewBookkeepingService(storage), storage
}

func TestCreateOrderRequiresSatisNo(t *testing.T) {
	s, _ := newBookkeepingFixture(t)

	_, err := s.CreateOrder(context.Background(), models.OrderInput{}, "tester")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrderStampsRecord(t *testing.T) {
	s, _ := newBookkeepingFixture(t)

	order, err := s.CreateOrder(context.Background(), models.OrderInput{
		SatisNo: "1001",
		Satish:  models.Money{Amount: 500, Currency: models.CurrencyAZN},
	}, "tester")
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.CreationTimestamp)
	assert.Equal(t, "tester", order.CreatedBy)
}

func TestDeleteOrderIsSoft(t *testing.T) {
	s, storage := newBookkeepingFixture(t)
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, models.OrderInput{SatisNo: "1001"}, "tester")
	require.NoError(t, err)

	require.NoError(t, s.DeleteOrder(ctx, "1001"))

	active, err := storage.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, active)

	deleted, err := storage.GetDeletedOrders()
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, "1001", deleted[0].SatisNo)

	assert.ErrorIs(t, s.DeleteOrder(ctx, "1001"), ErrOrderNotFound)
}

func TestCreateExpenseValidation(t *testing.T) {
	s, _ := newBookkeepingFixture(t)
	ctx := context.Background()

	_, err := s.CreateExpense(ctx, models.ExpenseInput{Currency: models.CurrencyAZN}, "tester")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateExpense(ctx, models.ExpenseInput{TotalAmount: 50}, "tester")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteExpenseIsSoft(t *testing.T) {
	s, storage := newBookkeepingFixture(t)
	ctx := context.Background()

	expense, err := s.CreateExpense(ctx, models.ExpenseInput{
		Description: "office rent",
		TotalAmount: 800,
		Currency:    models.CurrencyAZN,
	}, "tester")
	require.NoError(t, err)

	require.NoError(t, s.DeleteExpense(ctx, expense.ID))

	active, err := storage.GetExpenses()
	require.NoError(t, err)
	assert.Empty(t, active)

	deleted, err := storage.GetDeletedExpenses()
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, expense.ID, deleted[0].ID)
}

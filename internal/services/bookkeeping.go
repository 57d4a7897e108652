package services

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/utils"
)

// BookkeepingService is order/expense CRUD. Deleting never erases: records
// move to the parallel deleted collections and stay restorable from the
// recycle bin.
type BookkeepingService struct {
	storage  bookkeepingStorage
	validate *validator.Validate
	mu       sync.Mutex
}

type bookkeepingStorage interface {
	GetOrders() ([]models.Order, error)
	SaveAllOrders(orders []models.Order) error
	GetExpenses() ([]models.Expense, error)
	SaveAllExpenses(expenses []models.Expense) error
	GetDeletedOrders() ([]models.Order, error)
	SaveAllDeletedOrders(orders []models.Order) error
	GetDeletedExpenses() ([]models.Expense, error)
	SaveAllDeletedExpenses(expenses []models.Expense) error
}

func NewBookkeepingService(storage bookkeepingStorage) *BookkeepingService {
	return &BookkeepingService{storage: storage, validate: newValidator()}
}

func (s *BookkeepingService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.storage.GetOrders()
}

func (s *BookkeepingService) CreateOrder(ctx context.Context, input models.OrderInput, actor string) (models.Order, error) {
	if err := validateStruct(s.validate, input); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:                uuid.NewString(),
		SatisNo:           input.SatisNo,
		Alish:             input.Alish,
		Satish:            input.Satish,
		CreationTimestamp: utils.NowStamp(),
		Tourists:          input.Tourists,
		Hotels:            input.Hotels,
		Costs:             input.Costs,
		CreatedBy:         actor,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.storage.GetOrders()
	if err != nil {
		return models.Order{}, err
	}
	orders = append(orders, order)
	if err := s.storage.SaveAllOrders(orders); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// DeleteOrder soft-deletes: the order is appended to the deleted collection
// first, then removed from the active one. Two saves, not atomic.
func (s *BookkeepingService) DeleteOrder(ctx context.Context, satisNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.storage.GetOrders()
	if err != nil {
		return err
	}

	idx := -1
	for i, o := range orders {
		if o.SatisNo == satisNo {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrOrderNotFound
	}

	deleted, err := s.storage.GetDeletedOrders()
	if err != nil {
		return err
	}
	deleted = append(deleted, orders[idx])
	if err := s.storage.SaveAllDeletedOrders(deleted); err != nil {
		return err
	}

	remaining := append(orders[:idx:idx], orders[idx+1:]...)
	return s.storage.SaveAllOrders(remaining)
}

func (s *BookkeepingService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.storage.GetExpenses()
}

func (s *BookkeepingService) CreateExpense(ctx context.Context, input models.ExpenseInput, actor string) (models.Expense, error) {
	if err := validateStruct(s.validate, input); err != nil {
		return models.Expense{}, err
	}

	expense := models.Expense{
		ID:                uuid.NewString(),
		Description:       input.Description,
		TotalAmount:       input.TotalAmount,
		Currency:          input.Currency,
		CreationTimestamp: utils.NowStamp(),
		CreatedBy:         actor,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.storage.GetExpenses()
	if err != nil {
		return models.Expense{}, err
	}
	expenses = append(expenses, expense)
	if err := s.storage.SaveAllExpenses(expenses); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func (s *BookkeepingService) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.storage.GetExpenses()
	if err != nil {
		return err
	}

	idx := -1
	for i, e := range expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrExpenseNotFound
	}

	deleted, err := s.storage.GetDeletedExpenses()
	if err != nil {
		return err
	}
	deleted = append(deleted, expenses[idx])
	if err := s.storage.SaveAllDeletedExpenses(deleted); err != nil {
		return err
	}

	remaining := append(expenses[:idx:idx], expenses[idx+1:]...)
	return s.storage.SaveAllExpenses(remaining)
}

package services

import (
	"context"
	"errors"
	"sync"

	"github.com/turagency/backoffice/internal/models"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrExpenseNotFound = errors.New("expense not found")
)

// RecycleBinService moves records between the active and deleted collections.
// A move is two sequential whole-collection saves; a crash between them can
// duplicate (restore) or lose (soft delete) the record. Known failure mode,
// kept as is.
type RecycleBinService struct {
	storage recycleBinStorage
	mu      sync.Mutex
}

type recycleBinStorage interface {
	GetOrders() ([]models.Order, error)
	SaveAllOrders(orders []models.Order) error
	GetExpenses() ([]models.Expense, error)
	SaveAllExpenses(expenses []models.Expense) error
	GetDeletedOrders() ([]models.Order, error)
	SaveAllDeletedOrders(orders []models.Order) error
	GetDeletedExpenses() ([]models.Expense, error)
	SaveAllDeletedExpenses(expenses []models.Expense) error
}

func NewRecycleBinService(storage recycleBinStorage) *RecycleBinService {
	return &RecycleBinService{storage: storage}
}

func (s *RecycleBinService) ListDeleted(ctx context.Context) (models.DeletedItems, error) {
	deletedOrders, err := s.storage.GetDeletedOrders()
	if err != nil {
		return models.DeletedItems{}, err
	}
	deletedExpenses, err := s.storage.GetDeletedExpenses()
	if err != nil {
		return models.DeletedItems{}, err
	}
	return models.DeletedItems{
		DeletedOrders:   deletedOrders,
		DeletedExpenses: deletedExpenses,
	}, nil
}

// RestoreOrder moves the order matching satisNo back to the active
// collection. Nothing is mutated when the key is absent.
func (s *RecycleBinService) RestoreOrder(ctx context.Context, satisNo string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.storage.GetDeletedOrders()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, o := range deleted {
		if o.SatisNo == satisNo {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrOrderNotFound
	}
	restored := deleted[idx]

	active, err := s.storage.GetOrders()
	if err != nil {
		return nil, err
	}
	active = append(active, restored)
	if err := s.storage.SaveAllOrders(active); err != nil {
		return nil, err
	}

	remaining := append(deleted[:idx:idx], deleted[idx+1:]...)
	if err := s.storage.SaveAllDeletedOrders(remaining); err != nil {
		return nil, err
	}
	return &restored, nil
}

// RestoreExpense moves the expense matching id back to the active collection.
func (s *RecycleBinService) RestoreExpense(ctx context.Context, id string) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.storage.GetDeletedExpenses()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range deleted {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrExpenseNotFound
	}
	restored := deleted[idx]

	active, err := s.storage.GetExpenses()
	if err != nil {
		return nil, err
	}
	active = append(active, restored)
	if err := s.storage.SaveAllExpenses(active); err != nil {
		return nil, err
	}

	remaining := append(deleted[:idx:idx], deleted[idx+1:]...)
	if err := s.storage.SaveAllDeletedExpenses(remaining); err != nil {
		return nil, err
	}
	return &restored, nil
}

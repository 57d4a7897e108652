package store

import (
	"github.com/turagency/backoffice/internal/models"
)

// Typed accessors, one get/saveAll pair per collection. Thin by design: the
// store knows nothing about the records beyond their JSON shape.

func (s *Store) GetOrders() ([]models.Order, error) {
	return read[models.Order](s, Orders)
}

func (s *Store) SaveAllOrders(orders []models.Order) error {
	return write(s, Orders, orders)
}

func (s *Store) GetExpenses() ([]models.Expense, error) {
	return read[models.Expense](s, Expenses)
}

func (s *Store) SaveAllExpenses(expenses []models.Expense) error {
	return write(s, Expenses, expenses)
}

func (s *Store) GetDeletedOrders() ([]models.Order, error) {
	return read[models.Order](s, DeletedOrders)
}

func (s *Store) SaveAllDeletedOrders(orders []models.Order) error {
	return write(s, DeletedOrders, orders)
}

func (s *Store) GetDeletedExpenses() ([]models.Expense, error) {
	return read[models.Expense](s, DeletedExpenses)
}

func (s *Store) SaveAllDeletedExpenses(expenses []models.Expense) error {
	return write(s, DeletedExpenses, expenses)
}

// GetCapital returns the stored capital or the zero AZN default when none has
// been set yet.
func (s *Store) GetCapital() (models.Capital, error) {
	capital, found, err := readDoc[models.Capital](s, Capital)
	if err != nil {
		return models.Capital{}, err
	}
	if !found {
		return models.Capital{Amount: 0, Currency: models.CurrencyAZN}, nil
	}
	return capital, nil
}

func (s *Store) SaveCapital(capital models.Capital) error {
	return writeDoc(s, Capital, capital)
}

func (s *Store) GetCars() ([]models.Car, error) {
	return read[models.Car](s, Cars)
}

func (s *Store) SaveAllCars(cars []models.Car) error {
	return write(s, Cars, cars)
}

func (s *Store) GetReservations() ([]models.Reservation, error) {
	return read[models.Reservation](s, Reservations)
}

func (s *Store) SaveAllReservations(reservations []models.Reservation) error {
	return write(s, Reservations, reservations)
}

func (s *Store) GetPartners() ([]models.Partner, error) {
	return read[models.Partner](s, Partners)
}

func (s *Store) SaveAllPartners(partners []models.Partner) error {
	return write(s, Partners, partners)
}

func (s *Store) GetUsers() ([]models.User, error) {
	return read[models.User](s, Users)
}

func (s *Store) SaveAllUsers(users []models.User) error {
	return write(s, Users, users)
}

func (s *Store) GetChatHistory() ([]models.ChatMessage, error) {
	return read[models.ChatMessage](s, ChatHistory)
}

func (s *Store) SaveAllChatHistory(messages []models.ChatMessage) error {
	return write(s, ChatHistory, messages)
}

func (s *Store) GetAuditLog() ([]models.AuditEntry, error) {
	return read[models.AuditEntry](s, AuditLog)
}

func (s *Store) SaveAllAuditLog(entries []models.AuditEntry) error {
	return write(s, AuditLog, entries)
}

func (s *Store) GetPhotoLog() ([]models.PhotoEntry, error) {
	return read[models.PhotoEntry](s, PhotoLog)
}

func (s *Store) SaveAllPhotoLog(entries []models.PhotoEntry) error {
	return write(s, PhotoLog, entries)
}

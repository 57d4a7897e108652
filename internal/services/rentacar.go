package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/utils"
)

var (
	ErrCarNotFound         = errors.New("car not found")
	ErrDuplicatePlate      = errors.New("car with this plate already exists")
	ErrReservationNotFound = errors.New("reservation not found")
)

// RentacarService manages the fleet and the reservation lifecycle.
type RentacarService struct {
	storage  rentacarStorage
	validate *validator.Validate

	// mu serializes read-modify-write cycles against the car and
	// reservation collections.
	mu sync.Mutex
}

type rentacarStorage interface {
	GetCars() ([]models.Car, error)
	SaveAllCars(cars []models.Car) error
	GetReservations() ([]models.Reservation, error)
	SaveAllReservations(reservations []models.Reservation) error
}

func NewRentacarService(storage rentacarStorage) *RentacarService {
	return &RentacarService{storage: storage, validate: newValidator()}
}

// expireOverdue promotes every reservation whose return date has passed and
// whose status is still active to the terminal "not returned" status. Pure:
// callers persist the result when changed is true. Expiry is evaluated lazily
// on reads; there is no background timer, an overdue reservation is
// discovered and fixed together with the read that sees it.
func expireOverdue(reservations []models.Reservation, now time.Time) ([]models.Reservation, bool) {
	updated := make([]models.Reservation, len(reservations))
	copy(updated, reservations)

	changed := false
	for i, r := range updated {
		if r.Status.Terminal() {
			continue
		}
		returnDate, ok := utils.ParseDate(r.ReturnDate)
		if !ok {
			continue
		}
		if now.After(returnDate) {
			updated[i].Status = models.StatusNotReturned
			changed = true
		}
	}
	return updated, changed
}

// rentalDays recomputes the derived day count when both dates parse.
func rentalDays(pickup, ret string) (int, bool) {
	start, okStart := utils.ParseDate(pickup)
	end, okEnd := utils.ParseDate(ret)
	if !okStart || !okEnd {
		return 0, false
	}
	return utils.RentalDays(start, end), true
}

func matchesQuery(r models.Reservation, q string) bool {
	return strings.Contains(strings.ToLower(r.CarPlate), q) ||
		strings.Contains(strings.ToLower(r.CustomerName), q) ||
		strings.Contains(strings.ToLower(r.Phone), q)
}

// ListReservations applies the overdue auto-transition, persists it if
// anything changed, then optionally filters by a case-insensitive substring
// match on plate, customer name or phone.
func (s *RentacarService) ListReservations(ctx context.Context, query string) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations, err := s.storage.GetReservations()
	if err != nil {
		return nil, err
	}

	updated, changed := expireOverdue(reservations, time.Now())
	if changed {
		if err := s.storage.SaveAllReservations(updated); err != nil {
			return nil, err
		}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return updated, nil
	}

	filtered := make([]models.Reservation, 0, len(updated))
	for _, r := range updated {
		if matchesQuery(r, q) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *RentacarService) CreateReservation(ctx context.Context, input models.ReservationInput, actor string) (models.Reservation, error) {
	if err := validateStruct(s.validate, input); err != nil {
		return models.Reservation{}, err
	}

	days, ok := rentalDays(input.PickupDate, input.ReturnDate)
	if !ok {
		return models.Reservation{}, fmt.Errorf("%w: pickupDate and returnDate must be valid dates", ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = models.StatusOnHold
	}

	reservation := models.Reservation{
		ID:           uuid.NewString(),
		CarPlate:     input.CarPlate,
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		IDNumber:     input.IDNumber,
		Notes:        input.Notes,
		PickupDate:   input.PickupDate,
		ReturnDate:   input.ReturnDate,
		Days:         days,
		Status:       status,
		IDImagePath:  input.IDImagePath,
		CreatedAt:    utils.NowStamp(),
		CreatedBy:    actor,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reservations, err := s.storage.GetReservations()
	if err != nil {
		return models.Reservation{}, err
	}
	reservations = append(reservations, reservation)
	if err := s.storage.SaveAllReservations(reservations); err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

func (s *RentacarService) UpdateReservation(ctx context.Context, id string, update models.ReservationUpdate, actor string) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations, err := s.storage.GetReservations()
	if err != nil {
		return models.Reservation{}, err
	}

	idx := -1
	for i, r := range reservations {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Reservation{}, ErrReservationNotFound
	}

	r := &reservations[idx]
	if update.CarPlate != nil {
		r.CarPlate = *update.CarPlate
	}
	if update.CustomerName != nil {
		r.CustomerName = *update.CustomerName
	}
	if update.Phone != nil {
		r.Phone = *update.Phone
	}
	if update.IDNumber != nil {
		r.IDNumber = *update.IDNumber
	}
	if update.Notes != nil {
		r.Notes = *update.Notes
	}
	if update.PickupDate != nil {
		r.PickupDate = *update.PickupDate
	}
	if update.ReturnDate != nil {
		r.ReturnDate = *update.ReturnDate
	}
	if update.Status != nil {
		r.Status = *update.Status
	}
	if update.IDImagePath != nil {
		r.IDImagePath = *update.IDImagePath
	}

	if days, ok := rentalDays(r.PickupDate, r.ReturnDate); ok {
		r.Days = days
	}
	r.UpdatedAt = utils.NowStamp()
	r.UpdatedBy = actor

	if err := s.storage.SaveAllReservations(reservations); err != nil {
		return models.Reservation{}, err
	}
	return *r, nil
}

func (s *RentacarService) DeleteReservation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations, err := s.storage.GetReservations()
	if err != nil {
		return err
	}

	remaining := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.ID != id {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) == len(reservations) {
		return ErrReservationNotFound
	}
	return s.storage.SaveAllReservations(remaining)
}

func (s *RentacarService) ListCars(ctx context.Context) ([]models.Car, error) {
	return s.storage.GetCars()
}

// CreateCar registers a car. Plate uniqueness is checked against the
// currently active fleet only.
func (s *RentacarService) CreateCar(ctx context.Context, input models.CarInput, actor string) (models.Car, error) {
	if err := validateStruct(s.validate, input); err != nil {
		return models.Car{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := s.storage.GetCars()
	if err != nil {
		return models.Car{}, err
	}
	for _, c := range cars {
		if c.Plate == input.Plate {
			return models.Car{}, ErrDuplicatePlate
		}
	}

	car := models.Car{
		ID:        uuid.NewString(),
		Plate:     input.Plate,
		Brand:     input.Brand,
		Model:     input.Model,
		Year:      input.Year,
		Color:     input.Color,
		Notes:     input.Notes,
		CreatedAt: utils.NowStamp(),
		CreatedBy: actor,
	}

	cars = append(cars, car)
	if err := s.storage.SaveAllCars(cars); err != nil {
		return models.Car{}, err
	}
	return car, nil
}

func (s *RentacarService) UpdateCar(ctx context.Context, id string, update models.CarUpdate, actor string) (models.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := s.storage.GetCars()
	if err != nil {
		return models.Car{}, err
	}

	idx := -1
	for i, c := range cars {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Car{}, ErrCarNotFound
	}

	c := &cars[idx]
	if update.Plate != nil {
		c.Plate = *update.Plate
	}
	if update.Brand != nil {
		c.Brand = *update.Brand
	}
	if update.Model != nil {
		c.Model = *update.Model
	}
	if update.Year != nil {
		c.Year = *update.Year
	}
	if update.Color != nil {
		c.Color = *update.Color
	}
	if update.Notes != nil {
		c.Notes = *update.Notes
	}
	c.UpdatedAt = utils.NowStamp()
	c.UpdatedBy = actor

	if err := s.storage.SaveAllCars(cars); err != nil {
		return models.Car{}, err
	}
	return *c, nil
}

func (s *RentacarService) DeleteCar(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := s.storage.GetCars()
	if err != nil {
		return err
	}

	remaining := make([]models.Car, 0, len(cars))
	for _, c := range cars {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(cars) {
		return ErrCarNotFound
	}
	return s.storage.SaveAllCars(remaining)
}

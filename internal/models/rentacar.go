package models

// ReservationStatus is persisted as the display string the frontend shows,
// which is why the values are Azerbaijani.
type ReservationStatus string

const (
	StatusOnHold      ReservationStatus = "Brondadır"
	StatusPickedUp    ReservationStatus = "Götürülüb"
	StatusInUse       ReservationStatus = "İstifadədədir"
	StatusReturned    ReservationStatus = "Qaytarılıb"
	StatusCanceled    ReservationStatus = "Ləğv edilib"
	StatusNotReturned ReservationStatus = "Qaytarılmayıb"
)

// Terminal reports whether the status is final: terminal reservations are
// never promoted by the overdue auto-transition.
func (s ReservationStatus) Terminal() bool {
	switch s {
	case StatusReturned, StatusCanceled, StatusNotReturned:
		return true
	}
	return false
}

// Car is an entry of the rent-a-car fleet.
type Car struct {
	ID        string `json:"id"`
	Plate     string `json:"plate"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Year      string `json:"year"`
	Color     string `json:"color"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
	CreatedBy string `json:"createdBy"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// Reservation is a rental booking. Days is derived from the pickup/return
// span and is at least 1. CarPlate is free text and is not validated against
// the fleet.
type Reservation struct {
	ID           string            `json:"id"`
	CarPlate     string            `json:"carPlate"`
	CustomerName string            `json:"customerName"`
	Phone        string            `json:"phone"`
	IDNumber     string            `json:"idNumber"`
	Notes        string            `json:"notes"`
	PickupDate   string            `json:"pickupDate"`
	ReturnDate   string            `json:"returnDate"`
	Days         int               `json:"days"`
	Status       ReservationStatus `json:"status"`
	IDImagePath  string            `json:"idImagePath"`
	CreatedAt    string            `json:"createdAt"`
	CreatedBy    string            `json:"createdBy"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
	UpdatedBy    string            `json:"updatedBy,omitempty"`
}

// CarInput is the payload for registering a car.
type CarInput struct {
	Plate string `json:"plate" validate:"required"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Color string `json:"color"`
	Notes string `json:"notes"`
}

// CarUpdate carries partial car fields; nil means "leave unchanged".
type CarUpdate struct {
	Plate *string `json:"plate"`
	Brand *string `json:"brand"`
	Model *string `json:"model"`
	Year  *string `json:"year"`
	Color *string `json:"color"`
	Notes *string `json:"notes"`
}

// ReservationInput is the payload for creating a reservation. Status is
// optional and defaults to on hold. IDImagePath is filled by the handler when
// a file was uploaded alongside the fields.
type ReservationInput struct {
	CarPlate     string            `json:"carPlate" validate:"required"`
	CustomerName string            `json:"customerName" validate:"required"`
	Phone        string            `json:"phone" validate:"required"`
	IDNumber     string            `json:"idNumber"`
	Notes        string            `json:"notes"`
	PickupDate   string            `json:"pickupDate" validate:"required"`
	ReturnDate   string            `json:"returnDate" validate:"required"`
	Status       ReservationStatus `json:"status"`
	IDImagePath  string            `json:"idImagePath"`
}

// ReservationUpdate carries partial reservation fields; nil means "leave
// unchanged". Fields outside this set are ignored, not rejected.
type ReservationUpdate struct {
	CarPlate     *string            `json:"carPlate"`
	CustomerName *string            `json:"customerName"`
	Phone        *string            `json:"phone"`
	IDNumber     *string            `json:"idNumber"`
	Notes        *string            `json:"notes"`
	PickupDate   *string            `json:"pickupDate"`
	ReturnDate   *string            `json:"returnDate"`
	Status       *ReservationStatus `json:"status"`
	IDImagePath  *string            `json:"-"`
}

package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Service interfaces consumed by the HTTP layer. Handlers resolve these from
// the request context, which keeps them free of concrete dependencies and
// lets tests swap implementations.

type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*User, error)

	GetUser(ctx context.Context, username string) (*User, error)
}

type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

type FinanceService interface {
	GetSummary(ctx context.Context, month string) (FinanceSummary, error)

	UpdateCapital(ctx context.Context, update CapitalUpdate) (Capital, error)
}

type RentacarService interface {
	ListCars(ctx context.Context) ([]Car, error)

	CreateCar(ctx context.Context, input CarInput, actor string) (Car, error)

	UpdateCar(ctx context.Context, id string, update CarUpdate, actor string) (Car, error)

	DeleteCar(ctx context.Context, id string) error

	ListReservations(ctx context.Context, query string) ([]Reservation, error)

	CreateReservation(ctx context.Context, input ReservationInput, actor string) (Reservation, error)

	UpdateReservation(ctx context.Context, id string, update ReservationUpdate, actor string) (Reservation, error)

	DeleteReservation(ctx context.Context, id string) error
}

type RecycleBinService interface {
	ListDeleted(ctx context.Context) (DeletedItems, error)

	RestoreOrder(ctx context.Context, satisNo string) (*Order, error)

	RestoreExpense(ctx context.Context, id string) (*Expense, error)
}

type PartnerService interface {
	ListPartners(ctx context.Context) ([]Partner, error)

	CreatePartner(ctx context.Context, input PartnerInput, actor string) (Partner, error)

	UpdatePartner(ctx context.Context, id string, update PartnerUpdate, actor string) (Partner, error)

	DeletePartner(ctx context.Context, id string) error
}

type BookkeepingService interface {
	ListOrders(ctx context.Context) ([]Order, error)

	CreateOrder(ctx context.Context, input OrderInput, actor string) (Order, error)

	DeleteOrder(ctx context.Context, satisNo string) error

	ListExpenses(ctx context.Context) ([]Expense, error)

	CreateExpense(ctx context.Context, input ExpenseInput, actor string) (Expense, error)

	DeleteExpense(ctx context.Context, id string) error
}

type AuditService interface {
	Record(user PublicUser, action string, details map[string]any)

	Entries(ctx context.Context) ([]AuditEntry, error)
}

type UploadService interface {
	Upload(ctx context.Context, filename string, data []byte, user string) (string, error)
}

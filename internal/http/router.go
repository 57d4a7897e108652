package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turagency/backoffice/internal/chat"
	"github.com/turagency/backoffice/internal/logger"
	"github.com/turagency/backoffice/internal/middlewares"
	"github.com/turagency/backoffice/internal/models"
)

type Config struct {
	// Endpoint is the address and port the server listens on.
	Endpoint string
	// UploadsDir is where reservation ID images are stored.
	UploadsDir string
}

type Router struct {
	config             Config
	authService        models.AuthService
	jwtService         models.JWTService
	financeService     models.FinanceService
	rentacarService    models.RentacarService
	recycleBinService  models.RecycleBinService
	partnerService     models.PartnerService
	bookkeepingService models.BookkeepingService
	auditService       models.AuditService
	uploadService      models.UploadService
	hub                *chat.Hub
}

// New creates a Router with its dependencies.
func New(
	config Config,
	authService models.AuthService,
	jwtService models.JWTService,
	financeService models.FinanceService,
	rentacarService models.RentacarService,
	recycleBinService models.RecycleBinService,
	partnerService models.PartnerService,
	bookkeepingService models.BookkeepingService,
	auditService models.AuditService,
	uploadService models.UploadService,
	hub *chat.Hub,
) *Router {
	return &Router{
		config:             config,
		authService:        authService,
		jwtService:         jwtService,
		financeService:     financeService,
		rentacarService:    rentacarService,
		recycleBinService:  recycleBinService,
		partnerService:     partnerService,
		bookkeepingService: bookkeepingService,
		auditService:       auditService,
		uploadService:      uploadService,
		hub:                hub,
	}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			router.authService,
			router.jwtService,
			router.financeService,
			router.rentacarService,
			router.recycleBinService,
			router.partnerService,
			router.bookkeepingService,
			router.auditService,
			router.uploadService,
		),
		logger.RequestLogger,
		middlewares.AuthMiddleware().WithExcludedPaths(
			"/login",
			"/logout",
		).Middleware,
	)

	r.With(middlewares.JSONMiddleware[models.Credentials]).Post("/login", Login)
	r.Get("/logout", Logout)

	r.Route("/api", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", GetFinanceSummary)
			r.With(
				middlewares.RequireRoles(models.RoleOwner, models.RoleFinance),
				middlewares.JSONMiddleware[models.CapitalUpdate],
			).Post("/capital", UpdateCapital)
		})

		r.Route("/rentacar", func(r chi.Router) {
			r.Get("/cars", ListCars)
			r.With(middlewares.JSONMiddleware[models.CarInput]).Post("/cars", CreateCar)
			r.With(middlewares.JSONMiddleware[models.CarUpdate]).Put("/cars/{id}", UpdateCar)
			r.Delete("/cars/{id}", DeleteCar)

			r.Get("/reservations", ListReservations)
			r.Post("/reservations", router.CreateReservation)
			r.Put("/reservations/{id}", router.UpdateReservation)
			r.Delete("/reservations/{id}", DeleteReservation)
		})

		r.Route("/recycle-bin", func(r chi.Router) {
			r.Get("/", ListDeletedItems)
			r.Post("/orders/{satisNo}/restore", RestoreOrder)
			r.Post("/expenses/{id}/restore", RestoreExpense)
		})

		r.Route("/partners", func(r chi.Router) {
			r.Get("/", ListPartners)
			r.With(middlewares.JSONMiddleware[models.PartnerInput]).Post("/", CreatePartner)
			r.With(middlewares.JSONMiddleware[models.PartnerUpdate]).Put("/{id}", UpdatePartner)
			r.Delete("/{id}", DeletePartner)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ListOrders)
			r.With(middlewares.JSONMiddleware[models.OrderInput]).Post("/", CreateOrder)
			r.Delete("/{satisNo}", DeleteOrder)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", ListExpenses)
			r.With(middlewares.JSONMiddleware[models.ExpenseInput]).Post("/", CreateExpense)
			r.Delete("/{id}", DeleteExpense)
		})

		r.With(middlewares.RequireRoles(models.RoleOwner, models.RoleFinance)).
			Get("/audit", ListAuditEntries)

		r.Post("/upload", UploadImage)
	})

	r.Get("/ws", router.ChatSocket)

	return r
}

// Run starts the HTTP server and blocks.
func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}

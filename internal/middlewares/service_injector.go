package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/turagency/backoffice/internal/models"
)

type key int

const (
	AuthServiceKey key = iota
	JwtServiceKey
	FinanceServiceKey
	RentacarServiceKey
	RecycleBinServiceKey
	PartnerServiceKey
	BookkeepingServiceKey
	AuditServiceKey
	UploadServiceKey
)

// ServiceInjectorMiddleware places every service into the request context so
// handlers can stay plain functions.
func ServiceInjectorMiddleware(
	authService models.AuthService,
	jwtService models.JWTService,
	financeService models.FinanceService,
	rentacarService models.RentacarService,
	recycleBinService models.RecycleBinService,
	partnerService models.PartnerService,
	bookkeepingService models.BookkeepingService,
	auditService models.AuditService,
	uploadService models.UploadService,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), AuthServiceKey, authService)
			ctx = context.WithValue(ctx, JwtServiceKey, jwtService)
			ctx = context.WithValue(ctx, FinanceServiceKey, financeService)
			ctx = context.WithValue(ctx, RentacarServiceKey, rentacarService)
			ctx = context.WithValue(ctx, RecycleBinServiceKey, recycleBinService)
			ctx = context.WithValue(ctx, PartnerServiceKey, partnerService)
			ctx = context.WithValue(ctx, BookkeepingServiceKey, bookkeepingService)
			ctx = context.WithValue(ctx, AuditServiceKey, auditService)
			ctx = context.WithValue(ctx, UploadServiceKey, uploadService)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetServiceFromContext resolves a service placed by the injector. Responds
// with a 500 and returns nil when wiring is broken.
func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}

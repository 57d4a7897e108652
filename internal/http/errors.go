package router

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/turagency/backoffice/internal/logger"
	"github.com/turagency/backoffice/internal/services"
	"github.com/turagency/backoffice/internal/store"
)

// writeServiceError maps service errors onto HTTP statuses. Validation and
// lookup failures are the caller's problem; storage failures are ours and get
// logged before the 500 goes out.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrDuplicatePlate):
		http.Error(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, services.ErrCarNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrPartnerNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrExpenseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, store.ErrStorage):
		logger.Log.Error("storage failure",
			zap.String("uri", r.RequestURI), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)

	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

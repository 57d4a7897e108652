package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turagency/backoffice/internal/middlewares"
	"github.com/turagency/backoffice/internal/models"
)

func ListOrders(w http.ResponseWriter, r *http.Request) {
	bookkeepingService := middlewares.GetServiceFromContext[models.BookkeepingService](w, r, middlewares.BookkeepingServiceKey)

	orders, err := (*bookkeepingService).ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, orders)
}

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	input := middlewares.GetParsedJSONData[models.OrderInput](w, r)
	bookkeepingService := middlewares.GetServiceFromContext[models.BookkeepingService](w, r, middlewares.BookkeepingServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	order, err := (*bookkeepingService).CreateOrder(r.Context(), input, user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, order)
}

// DeleteOrder moves an order to the recycle bin. Orders are addressed by
// their sale number.
func DeleteOrder(w http.ResponseWriter, r *http.Request) {
	bookkeepingService := middlewares.GetServiceFromContext[models.BookkeepingService](w, r, middlewares.BookkeepingServiceKey)
	auditService := middlewares.GetServiceFromContext[models.AuditService](w, r, middlewares.AuditServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	satisNo := chi.URLParam(r, "satisNo")
	if err := (*bookkeepingService).DeleteOrder(r.Context(), satisNo); err != nil {
		writeServiceError(w, r, err)
		return
	}

	(*auditService).Record(user.Public(), "DELETE_ORDER", map[string]any{
		"satisNo": satisNo,
	})

	middlewares.EncodeJSONResponse(w, map[string]bool{"ok": true})
}

func ListExpenses(w http.ResponseWriter, r *http.Request) {
	bookkeepingService := middlewares.GetServiceFromContext[models.BookkeepingService](w, r, middlewares.BookkeepingServiceKey)

	expenses, err := (*bookkeepingService).ListExpenses(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, expenses)
}

func CreateExpense(w http.ResponseWriter, r *http.Request) {
	input := middlewares.GetParsedJSONData[models.ExpenseInput](w, r)
	bookkeepingService := middlewares.GetServiceFromContext[models.BookkeepingService](w, r, middlewares.BookkeepingServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	expense, err := (*bookkeepingService).CreateExpense(r.Context(), input, user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, expense)
}

func DeleteExpense(w http.ResponseWriter, r *http.Request) {
	bookkeepingService := middlewares.GetServiceFromContext[models.BookkeepingService](w, r, middlewares.BookkeepingServiceKey)
	auditService := middlewares.GetServiceFromContext[models.AuditService](w, r, middlewares.AuditServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	id := chi.URLParam(r, "id")
	if err := (*bookkeepingService).DeleteExpense(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	(*auditService).Record(user.Public(), "DELETE_EXPENSE", map[string]any{
		"id": id,
	})

	middlewares.EncodeJSONResponse(w, map[string]bool{"ok": true})
}

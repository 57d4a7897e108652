package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turagency/backoffice/internal/middlewares"
	"github.com/turagency/backoffice/internal/models"
)

func ListDeletedItems(w http.ResponseWriter, r *http.Request) {
	recycleBinService := middlewares.GetServiceFromContext[models.RecycleBinService](w, r, middlewares.RecycleBinServiceKey)

	items, err := (*recycleBinService).ListDeleted(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, items)
}

// RestoreOrder moves a soft-deleted order back to the active ledger. Orders
// are addressed by their sale number rather than the internal id.
func RestoreOrder(w http.ResponseWriter, r *http.Request) {
	recycleBinService := middlewares.GetServiceFromContext[models.RecycleBinService](w, r, middlewares.RecycleBinServiceKey)
	auditService := middlewares.GetServiceFromContext[models.AuditService](w, r, middlewares.AuditServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	order, err := (*recycleBinService).RestoreOrder(r.Context(), chi.URLParam(r, "satisNo"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	(*auditService).Record(user.Public(), "RESTORE_ORDER", map[string]any{
		"satisNo": order.SatisNo,
	})

	middlewares.EncodeJSONResponse(w, order)
}

func RestoreExpense(w http.ResponseWriter, r *http.Request) {
	recycleBinService := middlewares.GetServiceFromContext[models.RecycleBinService](w, r, middlewares.RecycleBinServiceKey)
	auditService := middlewares.GetServiceFromContext[models.AuditService](w, r, middlewares.AuditServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	expense, err := (*recycleBinService).RestoreExpense(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	(*auditService).Record(user.Public(), "RESTORE_EXPENSE", map[string]any{
		"id":          expense.ID,
		"description": expense.Description,
	})

	middlewares.EncodeJSONResponse(w, expense)
}

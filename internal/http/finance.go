package router

import (
	"net/http"

	"github.com/turagency/backoffice/internal/middlewares"
	"github.com/turagency/backoffice/internal/models"
)

// GetFinanceSummary returns the dashboard figures, optionally windowed by a
// month=YYYY-MM query parameter.
func GetFinanceSummary(w http.ResponseWriter, r *http.Request) {
	financeService := middlewares.GetServiceFromContext[models.FinanceService](w, r, middlewares.FinanceServiceKey)

	summary, err := (*financeService).GetSummary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, summary)
}

// UpdateCapital replaces the starting capital. Restricted to owner/finance
// roles by the route.
func UpdateCapital(w http.ResponseWriter, r *http.Request) {
	update := middlewares.GetParsedJSONData[models.CapitalUpdate](w, r)
	financeService := middlewares.GetServiceFromContext[models.FinanceService](w, r, middlewares.FinanceServiceKey)
	auditService := middlewares.GetServiceFromContext[models.AuditService](w, r, middlewares.AuditServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	capital, err := (*financeService).UpdateCapital(r.Context(), update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	(*auditService).Record(user.Public(), "UPDATE_CAPITAL", map[string]any{
		"amount":   capital.Amount,
		"currency": capital.Currency,
	})

	middlewares.EncodeJSONResponse(w, capital)
}

// ListAuditEntries returns the audit trail. Restricted to owner/finance.
func ListAuditEntries(w http.ResponseWriter, r *http.Request) {
	auditService := middlewares.GetServiceFromContext[models.AuditService](w, r, middlewares.AuditServiceKey)

	entries, err := (*auditService).Entries(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, entries)
}

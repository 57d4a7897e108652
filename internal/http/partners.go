package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turagency/backoffice/internal/middlewares"
	"github.com/turagency/backoffice/internal/models"
)

// ListPartners returns the registry, newest entries first.
func ListPartners(w http.ResponseWriter, r *http.Request) {
	partnerService := middlewares.GetServiceFromContext[models.PartnerService](w, r, middlewares.PartnerServiceKey)

	partners, err := (*partnerService).ListPartners(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, partners)
}

func CreatePartner(w http.ResponseWriter, r *http.Request) {
	input := middlewares.GetParsedJSONData[models.PartnerInput](w, r)
	partnerService := middlewares.GetServiceFromContext[models.PartnerService](w, r, middlewares.PartnerServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	partner, err := (*partnerService).CreatePartner(r.Context(), input, user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, partner)
}

func UpdatePartner(w http.ResponseWriter, r *http.Request) {
	update := middlewares.GetParsedJSONData[models.PartnerUpdate](w, r)
	partnerService := middlewares.GetServiceFromContext[models.PartnerService](w, r, middlewares.PartnerServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	partner, err := (*partnerService).UpdatePartner(r.Context(), chi.URLParam(r, "id"), update, user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, partner)
}

func DeletePartner(w http.ResponseWriter, r *http.Request) {
	partnerService := middlewares.GetServiceFromContext[models.PartnerService](w, r, middlewares.PartnerServiceKey)

	if err := (*partnerService).DeletePartner(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]bool{"ok": true})
}

package router

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/turagency/backoffice/internal/middlewares"
	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/services"
)

// UploadImage proxies an image to the external hoster and returns its public
// link. The image bytes are not persisted locally.
func UploadImage(w http.ResponseWriter, r *http.Request) {
	uploadService := middlewares.GetServiceFromContext[models.UploadService](w, r, middlewares.UploadServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during parsing form: %s", err.Error()), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "A file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during reading file: %s", err.Error()), http.StatusBadRequest)
		return
	}

	link, err := (*uploadService).Upload(r.Context(), header.Filename, data, user.Username)
	if err != nil {
		if errors.Is(err, services.ErrUploadNotConfigured) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]string{"link": link})
}

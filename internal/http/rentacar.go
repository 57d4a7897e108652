package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/turagency/backoffice/internal/middlewares"
	"github.com/turagency/backoffice/internal/models"
)

// maxUploadSize caps multipart reservation bodies, ID image included.
const maxUploadSize = 10 << 20

func ListCars(w http.ResponseWriter, r *http.Request) {
	rentacarService := middlewares.GetServiceFromContext[models.RentacarService](w, r, middlewares.RentacarServiceKey)

	cars, err := (*rentacarService).ListCars(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, cars)
}

func CreateCar(w http.ResponseWriter, r *http.Request) {
	input := middlewares.GetParsedJSONData[models.CarInput](w, r)
	rentacarService := middlewares.GetServiceFromContext[models.RentacarService](w, r, middlewares.RentacarServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	car, err := (*rentacarService).CreateCar(r.Context(), input, user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, car)
}

func UpdateCar(w http.ResponseWriter, r *http.Request) {
	update := middlewares.GetParsedJSONData[models.CarUpdate](w, r)
	rentacarService := middlewares.GetServiceFromContext[models.RentacarService](w, r, middlewares.RentacarServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	car, err := (*rentacarService).UpdateCar(r.Context(), chi.URLParam(r, "id"), update, user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, car)
}

func DeleteCar(w http.ResponseWriter, r *http.Request) {
	rentacarService := middlewares.GetServiceFromContext[models.RentacarService](w, r, middlewares.RentacarServiceKey)

	if err := (*rentacarService).DeleteCar(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]bool{"ok": true})
}

// ListReservations returns the reservations, expiry applied, optionally
// filtered by the q= substring query.
func ListReservations(w http.ResponseWriter, r *http.Request) {
	rentacarService := middlewares.GetServiceFromContext[models.RentacarService](w, r, middlewares.RentacarServiceKey)

	reservations, err := (*rentacarService).ListReservations(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, reservations)
}

// CreateReservation accepts either a JSON body or a multipart form with an
// optional idImage file.
func (router *Router) CreateReservation(w http.ResponseWriter, r *http.Request) {
	rentacarService := middlewares.GetServiceFromContext[models.RentacarService](w, r, middlewares.RentacarServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	var input models.ReservationInput
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during parsing form: %s", err.Error()), http.StatusBadRequest)
			return
		}

		input = models.ReservationInput{
			CarPlate:     r.FormValue("carPlate"),
			CustomerName: r.FormValue("customerName"),
			Phone:        r.FormValue("phone"),
			IDNumber:     r.FormValue("idNumber"),
			Notes:        r.FormValue("notes"),
			PickupDate:   r.FormValue("pickupDate"),
			ReturnDate:   r.FormValue("returnDate"),
			Status:       models.ReservationStatus(r.FormValue("status")),
			IDImagePath:  r.FormValue("idImagePath"),
		}

		path, err := router.saveIDImage(r)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during storing id image: %s", err.Error()), http.StatusBadRequest)
			return
		}
		if path != "" {
			input.IDImagePath = path
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during unmarshaling data %s", err.Error()), http.StatusBadRequest)
			return
		}
	}

	reservation, err := (*rentacarService).CreateReservation(r.Context(), input, user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, reservation)
}

// UpdateReservation applies partial fields from a JSON body or a multipart
// form; with a form, only keys actually present are applied.
func (router *Router) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	rentacarService := middlewares.GetServiceFromContext[models.RentacarService](w, r, middlewares.RentacarServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	var update models.ReservationUpdate
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during parsing form: %s", err.Error()), http.StatusBadRequest)
			return
		}

		update = reservationUpdateFromForm(r)

		path, err := router.saveIDImage(r)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during storing id image: %s", err.Error()), http.StatusBadRequest)
			return
		}
		if path != "" {
			update.IDImagePath = &path
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during unmarshaling data %s", err.Error()), http.StatusBadRequest)
			return
		}
	}

	reservation, err := (*rentacarService).UpdateReservation(r.Context(), chi.URLParam(r, "id"), update, user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, reservation)
}

func DeleteReservation(w http.ResponseWriter, r *http.Request) {
	rentacarService := middlewares.GetServiceFromContext[models.RentacarService](w, r, middlewares.RentacarServiceKey)

	if err := (*rentacarService).DeleteReservation(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]bool{"ok": true})
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func reservationUpdateFromForm(r *http.Request) models.ReservationUpdate {
	var update models.ReservationUpdate

	formValue := func(key string) *string {
		values, ok := r.MultipartForm.Value[key]
		if !ok || len(values) == 0 {
			return nil
		}
		return &values[0]
	}

	update.CarPlate = formValue("carPlate")
	update.CustomerName = formValue("customerName")
	update.Phone = formValue("phone")
	update.IDNumber = formValue("idNumber")
	update.Notes = formValue("notes")
	update.PickupDate = formValue("pickupDate")
	update.ReturnDate = formValue("returnDate")
	if value := formValue("status"); value != nil {
		status := models.ReservationStatus(*value)
		update.Status = &status
	}

	return update
}

// saveIDImage stores an uploaded idImage file under the uploads directory and
// returns the public path, or "" when no file was attached.
func (router *Router) saveIDImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("idImage")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	dir := filepath.Join(router.config.UploadsDir, "id_images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/uploads/id_images/" + name, nil
}

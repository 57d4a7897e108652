package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/turagency/backoffice/internal/middlewares"
	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/services"
)

// Login authenticates the credentials and issues the session cookie.
func Login(w http.ResponseWriter, r *http.Request) {
	creds := middlewares.GetParsedJSONData[models.Credentials](w, r)
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)

	user, err := (*authService).Login(r.Context(), creds)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, services.ErrUserIsNotExist) || errors.Is(err, services.ErrPasswordIsIncorrect) {
			http.Error(w, "Username or password is incorrect", http.StatusUnauthorized)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during login: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	token, err := (*jwtService).GenerateJWT(user.Username)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during generating jwt token: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   24 * 60 * 60,
	})

	middlewares.EncodeJSONResponse(w, user.Public())
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side session state to destroy.
func Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	w.WriteHeader(http.StatusOK)
}

package router

import (
	"net/http"

	"github.com/turagency/backoffice/internal/middlewares"
)

// ChatSocket upgrades the request and attaches the client to the chat hub.
// Auth middleware has already identified the user by the time we get here.
func (router *Router) ChatSocket(w http.ResponseWriter, r *http.Request) {
	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	router.hub.ServeWS(w, r, user.Public())
}

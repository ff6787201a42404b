package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils/response"
)

// requireSession reads the session set by middleware.Session. When it is missing
// the error response has been written and ok is false.
func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.SessionFromContext(r.Context())
	if !ok || id == "" {
		middleware.LoggerFromContext(r.Context()).Warn("Request without session")
		response.Error(w, errors.BadRequestError("Session is required").WithDetail(middleware.SessionHeader+" header missing"))

		return "", false
	}

	return id, true
}

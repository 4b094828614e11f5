package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/koach/internal/common"
	"github.com/dmitrijs2005/koach/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

// Client-facing messages. Internal error text is never sent.
const (
	msgAlreadyExists      = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgMissingToken       = "Access Denied, No Token Provided"
	msgInvalidToken       = "Invalid Token"
	msgNotFound           = "User not found"
	msgBadRequest         = "Invalid request body"
	msgInternal           = "Internal Server Error"

	msgRegistered = "User registered successfully"
	msgLoggedIn   = "Login successful"
	msgUpdated    = "Profile updated successfully"
	msgDeleted    = "User deleted successfully"
)

// errBadRequest marks an undecodable or incomplete request body.
var errBadRequest = errors.New("bad request body")

// statusFor maps an error to its HTTP status and fixed message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, msgBadRequest
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusBadRequest, msgAlreadyExists
	case errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusBadRequest, msgInvalidCredentials
	case errors.Is(err, common.ErrMissingToken), errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, msgMissingToken
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, msgInvalidToken
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, msgNotFound
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError answers with the fixed outcome for err. Server-side failures
// are logged with their cause.
func writeError(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
	}
	writeJSON(w, status, MessageResponse{Message: msg})
}

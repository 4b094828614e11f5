package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/koach/internal/logging"
	"github.com/dmitrijs2005/koach/internal/server/models"
	"github.com/go-playground/validator/v10"
)

// AccountService registers users and logs them in.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// ProfileService acts on the caller identified by the request context.
type ProfileService interface {
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, name *string) (*models.User, error)
	DeleteProfile(ctx context.Context) error
}

// Handlers serves the account and profile routes.
type Handlers struct {
	accounts AccountService
	profiles ProfileService
	validate *validator.Validate
	logger   logging.Logger
}

func NewHandlers(a AccountService, p ProfileService, l logging.Logger) *Handlers {
	return &Handlers{
		accounts: a,
		profiles: p,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   l,
	}
}

// decode reads a JSON body into dst and runs its validate tags.
func (h *Handlers) decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// Register godoc
// @Summary     Register a new user
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     RegisterRequest true "New account"
// @Success     201  {object} RegisterResponse
// @Failure     400  {object} MessageResponse
// @Failure     500  {object} MessageResponse
// @Router      /register [post]
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	user, token, err := h.accounts.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, RegisterResponse{Message: msgRegistered, User: user, Token: token})
}

// Login godoc
// @Summary     Log in with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     LoginRequest true "Credentials"
// @Success     200  {object} LoginResponse
// @Failure     400  {object} MessageResponse
// @Failure     500  {object} MessageResponse
// @Router      /login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	token, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Message: msgLoggedIn, Token: token})
}

// Profile godoc
// @Summary     Get the caller's profile
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ProfileResponse
// @Failure     401 {object} MessageResponse
// @Failure     404 {object} MessageResponse
// @Failure     500 {object} MessageResponse
// @Router      /profile [get]
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ProfileResponse{User: user})
}

// UpdateProfile godoc
// @Summary     Change the caller's display name
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body     UpdateProfileRequest true "New name"
// @Success     200  {object} UpdateProfileResponse
// @Failure     400  {object} MessageResponse
// @Failure     401  {object} MessageResponse
// @Failure     404  {object} MessageResponse
// @Failure     500  {object} MessageResponse
// @Router      /update-profile [put]
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	user, err := h.profiles.UpdateProfile(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, UpdateProfileResponse{Message: msgUpdated, User: user})
}

// DeleteProfile godoc
// @Summary     Delete the caller's account
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse
// @Failure     401 {object} MessageResponse
// @Failure     404 {object} MessageResponse
// @Failure     500 {object} MessageResponse
// @Router      /delete-profile [delete]
func (h *Handlers) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.DeleteProfile(r.Context()); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: msgDeleted})
}

// Healthz godoc
// @Summary     Liveness probe
// @Tags        ops
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /healthz [get]
func (h *Handlers) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

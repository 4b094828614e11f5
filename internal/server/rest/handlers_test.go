package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/koach/internal/common"
	"github.com/dmitrijs2005/koach/internal/logging"
	"github.com/dmitrijs2005/koach/internal/server/auth"
	"github.com/dmitrijs2005/koach/internal/server/models"
	"github.com/dmitrijs2005/koach/internal/server/repositories/users"
	"github.com/dmitrijs2005/koach/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccounts struct {
	err error
}

func (s stubAccounts) Register(context.Context, string, string, string) (*models.User, string, error) {
	return nil, "", s.err
}

func (s stubAccounts) Login(context.Context, string, string) (string, error) {
	return "", s.err
}

type stubProfiles struct {
	err      error
	calls    int
	lastName *string
}

func (s *stubProfiles) GetProfile(context.Context) (*models.User, error) { return nil, s.err }

func (s *stubProfiles) UpdateProfile(_ context.Context, name *string) (*models.User, error) {
	s.calls++
	s.lastName = name
	if s.err != nil {
		return nil, s.err
	}
	u := &models.User{ID: "u-1", Name: "Jane"}
	if name != nil {
		u.Name = *name
	}
	return u, nil
}

func (s *stubProfiles) DeleteProfile(context.Context) error { return s.err }

func TestHandlers_InternalErrorsAreHidden(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&logs, nil)))

	cause := errors.New("db error: password authentication failed for user koach")
	h := NewHandlers(stubAccounts{err: cause}, &stubProfiles{err: cause}, logger)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		body    string
	}{
		{"register", h.Register, `{"name":"a","email":"a@example.com","password":"p"}`},
		{"login", h.Login, `{"email":"a@example.com","password":"p"}`},
		{"profile", h.Profile, ``},
		{"update", h.UpdateProfile, `{"name":"x"}`},
		{"delete", h.DeleteProfile, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs.Reset()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req = req.WithContext(auth.WithUserID(req.Context(), "u-1"))
			rec := httptest.NewRecorder()

			tt.handler(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "password authentication")
			assert.Contains(t, logs.String(), "password authentication failed")
		})
	}
}

func TestHandlers_HashingFailureIs500(t *testing.T) {
	h := NewHandlers(stubAccounts{err: common.ErrHashingFailure}, &stubProfiles{}, logging.Nop{})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"name":"a","email":"a@example.com","password":"p"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateProfile_NameIsNotValidated(t *testing.T) {
	long := strings.Repeat("x", 500)
	tests := []struct {
		name     string
		body     string
		wantName *string
		wantUser string
	}{
		{name: "empty name", body: `{"name":""}`, wantName: ptr(""), wantUser: ""},
		{name: "long name", body: `{"name":"` + long + `"}`, wantName: ptr(long), wantUser: long},
		{name: "absent name", body: `{}`, wantName: nil, wantUser: "Jane"},
		{name: "null name", body: `{"name":null}`, wantName: nil, wantUser: "Jane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &stubProfiles{}
			h := NewHandlers(stubAccounts{}, p, logging.Nop{})

			req := httptest.NewRequest(http.MethodPut, "/update-profile", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.UpdateProfile(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, p.calls)
			assert.Equal(t, tt.wantName, p.lastName)

			var resp UpdateProfileResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantUser, resp.User.Name)
		})
	}
}

func TestHandlers_NoIdentityIs401(t *testing.T) {
	profiles := services.NewProfileService(users.NewMemoryRepository())
	h := NewHandlers(stubAccounts{}, profiles, logging.Nop{})

	tests := []struct {
		name    string
		handler http.HandlerFunc
		body    string
	}{
		{"profile", h.Profile, ``},
		{"update", h.UpdateProfile, `{"name":"x"}`},
		{"delete", h.DeleteProfile, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			tt.handler(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Access Denied, No Token Provided"}`, rec.Body.String())
		})
	}
}

func ptr(s string) *string { return &s }

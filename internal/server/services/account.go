// Package services contains the server-side business logic: account
// registration and login, and operations on the caller's own profile.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/koach/internal/common"
	"github.com/dmitrijs2005/koach/internal/server/auth"
	"github.com/dmitrijs2005/koach/internal/server/models"
	"github.com/dmitrijs2005/koach/internal/server/repositories/users"
)

// TokenIssuer mints a session token for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AccountService registers users and logs them in.
type AccountService struct {
	users  users.Repository
	hasher auth.PasswordHasher
	tokens TokenIssuer
}

func NewAccountService(r users.Repository, h auth.PasswordHasher, t TokenIssuer) *AccountService {
	return &AccountService{users: r, hasher: h, tokens: t}
}

// Register creates a user and returns it with a fresh session token.
// A taken email yields common.ErrorAlreadyExists and nothing is written.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, "", common.ErrorAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		// Lost the race with a concurrent registration of the same email.
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrorAlreadyExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login checks the credentials and returns a new session token. An unknown
// email and a wrong password both yield common.ErrorInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

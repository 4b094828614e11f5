package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/koach/internal/common"
	"github.com/dmitrijs2005/koach/internal/server/auth"
	"github.com/dmitrijs2005/koach/internal/server/models"
	"github.com/dmitrijs2005/koach/internal/server/repositories/users"
)

// ProfileService reads and changes the profile of the authenticated caller.
// The target user is always taken from the request context.
type ProfileService struct {
	users users.Repository
}

func NewProfileService(r users.Repository) *ProfileService {
	return &ProfileService{users: r}
}

func callerID(ctx context.Context) (string, error) {
	id, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", common.ErrorUnauthorized
	}
	return id, nil
}

func (s *ProfileService) GetProfile(ctx context.Context) (*models.User, error) {
	id, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

// UpdateProfile overwrites the caller's name and returns the updated user.
// A nil name leaves the record as it is.
func (s *ProfileService) UpdateProfile(ctx context.Context, name *string) (*models.User, error) {
	id, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Update(ctx, id, models.UserUpdate{Name: name})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// DeleteProfile permanently removes the caller. Tokens already issued for
// the caller stay valid until they expire.
func (s *ProfileService) DeleteProfile(ctx context.Context) error {
	id, err := callerID(ctx)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

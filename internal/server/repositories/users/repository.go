// Package users persists user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/koach/internal/server/models"
)

// Repository is the user store. Lookups of absent users return
// common.ErrorNotFound; creating a user with a taken email returns
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

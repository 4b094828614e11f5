package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/koach/internal/server/models"
)

// fakeUsersRepo returns canned results and counts writes.
type fakeUsersRepo struct {
	findOut *models.User
	findErr error

	createErr error
	creates   int

	updateOut *models.User
	updateErr error
	updatedID string
	updated   models.UserUpdate

	deleteErr error
	deletedID string
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "new-id"
	return u, nil
}

func (f *fakeUsersRepo) FindByEmail(context.Context, string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeUsersRepo) FindByID(context.Context, string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeUsersRepo) Update(_ context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	f.updatedID = id
	f.updated = upd
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeUsersRepo) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

// plainHasher prefixes instead of hashing so tests stay fast.
type plainHasher struct {
	err error
}

func (h plainHasher) Hash(p string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + p, nil
}

func (h plainHasher) Verify(p, hashed string) bool {
	return strings.TrimPrefix(hashed, "hashed:") == p && strings.HasPrefix(hashed, "hashed:")
}

type fakeIssuer struct {
	err    error
	issued []string
}

func (f *fakeIssuer) Issue(userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.issued = append(f.issued, userID)
	return "token-for-" + userID, nil
}

var errDB = errors.New("db error: connection reset")


func ptr(s string) *string { return &s }

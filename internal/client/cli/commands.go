package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/koach/internal/client/api"
	"github.com/dmitrijs2005/koach/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// report prints a short explanation of err for the user and returns it.
func report(err error) error {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Server unavailable, try again later")
	case errors.Is(err, api.ErrNotLoggedIn):
		printlnFn("Please log in first")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrMissingToken):
		printlnFn("Session is no longer valid, please log in again")
	default:
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			printlnFn("Error:", apiErr.Message)
		} else {
			printlnFn("Error:", err.Error())
		}
	}
	return err
}

// Register prompts for name, email and password and creates an account.
// On success the CLI is logged in as the new user.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		return report(err)
	}

	a.email = user.Email
	printlnFn("Registered as", user.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, email, password); err != nil {
		return report(err)
	}

	a.email = email
	printlnFn("Login successful")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	user, err := a.api.Profile(ctx)
	if err != nil {
		return report(err)
	}

	printlnFn("ID:     ", user.ID)
	printlnFn("Name:   ", user.Name)
	printlnFn("Email:  ", user.Email)
	if !user.CreatedAt.IsZero() {
		printlnFn("Created:", user.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// Rename changes the display name of the logged-in user.
func (a *App) Rename(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter new name", a.out)
	if err != nil {
		return err
	}

	user, err := a.api.UpdateProfile(ctx, name)
	if err != nil {
		return report(err)
	}

	printlnFn("Name changed to", user.Name)
	return nil
}

// Delete removes the account after an explicit confirmation.
func (a *App) Delete(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete your account permanently? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.api.DeleteProfile(ctx); err != nil {
		return report(err)
	}

	a.email = ""
	printlnFn("Account deleted")
	return nil
}

// Logout forgets the session token locally.
func (a *App) Logout(_ context.Context) error {
	a.api.Logout()
	a.email = ""
	printlnFn("Logged out")
	return nil
}

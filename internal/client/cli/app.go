package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/koach/internal/client/api"
	"github.com/dmitrijs2005/koach/internal/client/config"
)

// apiClient is the part of api.Client the commands use.
type apiClient interface {
	Register(ctx context.Context, name, email, password string) (*api.User, error)
	Login(ctx context.Context, email, password string) error
	Profile(ctx context.Context) (*api.User, error)
	UpdateProfile(ctx context.Context, name string) (*api.User, error)
	DeleteProfile(ctx context.Context) error
	Logout()
	Token() string
}

type App struct {
	config *config.Config
	api    apiClient
	reader *bufio.Reader
	out    io.Writer
	email  string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) getStatus() string {
	if a.isLoggedIn() && a.email != "" {
		return "(" + a.email + ")"
	}
	return ""
}

// Run prints a greeting and serves the REPL until EOF or "exit".
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to KOACH CLI, server", a.config.ServerURL, "(type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

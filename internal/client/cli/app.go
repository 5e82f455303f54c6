// Package cli is the interactive terminal client: a small REPL for
// registering, logging in, browsing texts and running practice sessions
// against the server API.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/memorizer/internal/client/api"
	"github.com/dmitrijs2005/memorizer/internal/client/config"
)

type App struct {
	config *config.Config
	api    *api.Client
	email  string
	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.email
	}
	return "not logged in"
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

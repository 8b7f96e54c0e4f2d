// Package cli implements the interactive terminal client for Event-Hub.
// It wraps the API client in a small REPL: register, log in, browse events,
// and manage the events the user owns.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/Pritish2005/Event-Hub/internal/client/api"
	"github.com/Pritish2005/Event-Hub/internal/client/config"
)

type App struct {
	config    *config.Config
	api       *api.Client
	userEmail string
	reader    *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerBaseURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}

// getStatus renders the prompt suffix, e.g. "(alice@example.com)".
func (a *App) getStatus() string {
	if a.userEmail == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userEmail)
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to Event-Hub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Package cli implements the command-line surface of the expense tracker.
// Commands map one-to-one onto the operations the session manager and
// expense store expose: login, logout, add, list, delete, clear, summary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gitlab.com/pennywise/pennywise/internal/config"
	"gitlab.com/pennywise/pennywise/internal/models"
	"gitlab.com/pennywise/pennywise/internal/session"
	"gitlab.com/pennywise/pennywise/internal/store"
)

// ErrNotLoggedIn is returned by commands that need an active session.
var ErrNotLoggedIn = errors.New(`not logged in, run "pennywise login" first`)

// App wires the session manager and expense store to the command line.
type App struct {
	cfg      *config.Config
	sessions *session.Manager
	expenses *store.Store

	stdin  io.Reader
	stdout io.Writer
	now    func() time.Time
}

// New creates an App reading from stdin and writing to stdout.
func New(cfg *config.Config, sessions *session.Manager, expenses *store.Store) *App {
	return &App{
		cfg:      cfg,
		sessions: sessions,
		expenses: expenses,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		now:      time.Now,
	}
}

// Run dispatches a single command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.handleLogin(ctx, rest)
	case "logout":
		return a.handleLogout(ctx)
	case "whoami":
		return a.handleWhoami(ctx)
	case "add":
		return a.handleAdd(ctx, rest)
	case "list":
		return a.handleList(ctx, rest)
	case "delete":
		return a.handleDelete(ctx, rest)
	case "clear":
		return a.handleClear(ctx, rest)
	case "summary":
		return a.handleSummary(ctx, rest)
	case "export":
		return a.handleExport(ctx, rest)
	case "chart":
		return a.handleChart(ctx, rest)
	case "help":
		a.printUsage()
		return nil
	default:
		a.printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// activeUser restores the persisted session and loads that user's
// expenses into the store. Commands that mutate or read expense state go
// through here.
func (a *App) activeUser(ctx context.Context) (*models.User, error) {
	user := a.sessions.Restore(ctx)
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	a.expenses.Load(ctx, user.ID)
	return user, nil
}

func (a *App) printUsage() {
	fmt.Fprint(a.stdout, `pennywise - personal expense tracker

Usage:
  pennywise login -email <email> [-name <name>] [-password <password>]
  pennywise logout
  pennywise whoami
  pennywise add [-category <name>] [-date YYYY-MM-DD] [-desc <text>]
                [-payment <method>] [-tags a,b] <amount> <title>
  pennywise list [-limit <n>]
  pennywise delete <id>
  pennywise clear [-yes]
  pennywise summary [-watch]
  pennywise export [-o <file.csv>]
  pennywise chart [-o <file.png>]
  pennywise version

Categories: Food, Travel, Shopping, Bills, Other
Payment methods: cash, card, upi, bank_transfer, other
`)
}

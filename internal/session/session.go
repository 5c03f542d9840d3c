// Package session implements the mock authentication state machine.
// There is no credential verification against any authority: any non-empty
// email and password pair logs in, synthesizing a local user.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gitlab.com/pennywise/pennywise/internal/logger"
	"gitlab.com/pennywise/pennywise/internal/models"
)

// ErrMissingCredentials is returned by Login when email or password is empty.
var ErrMissingCredentials = errors.New("email and password are required")

// ErrNotLoggedIn is returned by Logout when no session is active.
var ErrNotLoggedIn = errors.New("no active session")

// SessionStorage is the persistence surface for the session and for the
// expense partition cleanup on logout. *storage.Gateway implements it.
type SessionStorage interface {
	ReadSession(ctx context.Context) *models.User
	WriteSession(ctx context.Context, user *models.User) error
	ClearSession(ctx context.Context) error
	DeleteExpensesFor(ctx context.Context, userID string) error
}

// Manager holds the session state: logged out, or logged in as one user.
type Manager struct {
	storage SessionStorage

	mu   sync.Mutex
	user *models.User
}

// NewManager creates a logged-out manager backed by storage.
func NewManager(storage SessionStorage) *Manager {
	return &Manager{storage: storage}
}

// Current returns the active user, or nil when logged out.
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.Current() != nil
}

// Restore transitions to logged-in from a persisted session. It does
// nothing when a session is already active or none is persisted, and
// returns the active user either way.
func (m *Manager) Restore(ctx context.Context) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user != nil {
		return m.user
	}

	user := m.storage.ReadSession(ctx)
	if user == nil {
		return nil
	}

	m.user = user
	logger.Log.Debug().
		Str("user", logger.HashUserID(user.ID)).
		Msg("Session restored")
	return user
}

// Login accepts any non-empty email and password, synthesizes a user (or
// reuses the persisted session's user when the email matches, keeping that
// user's expense partition reachable) and persists the session.
func (m *Manager) Login(ctx context.Context, email, password, name string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user := m.user
	if user == nil {
		user = m.storage.ReadSession(ctx)
	}
	if user == nil || !strings.EqualFold(user.Email, email) {
		user = models.NewUser(email, name)
	}

	if err := m.storage.WriteSession(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.user = user
	logger.Log.Info().
		Str("user", logger.HashUserID(user.ID)).
		Str("email", logger.HashEmail(user.Email)).
		Msg("Logged in")
	return user, nil
}

// Logout clears the session and deletes the active user's expense
// partition from storage.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return ErrNotLoggedIn
	}
	userID := m.user.ID

	if err := m.storage.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := m.storage.DeleteExpensesFor(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete expense partition: %w", err)
	}

	m.user = nil
	logger.Log.Info().
		Str("user", logger.HashUserID(userID)).
		Msg("Logged out")
	return nil
}

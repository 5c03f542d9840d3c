// Package storage persists expenses and the current session in a local
// key-value table. Expense lists are stored whole, JSON-encoded, under a
// per-user key, so switching the active user can never surface another
// user's records through a missed filter.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gitlab.com/pennywise/pennywise/internal/database"
	"gitlab.com/pennywise/pennywise/internal/logger"
	"gitlab.com/pennywise/pennywise/internal/models"
)

// SessionKey is the fixed key the current user is stored under.
const SessionKey = "pennywise_user"

// expensesKeyPrefix namespaces expense partitions per user.
const expensesKeyPrefix = "pennywise_expenses_"

// ExpensesKey returns the storage key for a user's expense partition.
func ExpensesKey(userID string) string {
	return expensesKeyPrefix + userID
}

// Gateway reads and writes the persisted application state. Reads are
// forgiving: absent or malformed values behave like empty state and never
// fail the caller.
type Gateway struct {
	db  database.DBTX
	now func() time.Time
}

// NewGateway creates a gateway on top of db.
func NewGateway(db database.DBTX) *Gateway {
	return &Gateway{db: db, now: time.Now}
}

// ReadExpenses returns the persisted expense list for userID. An absent
// partition or unparsable stored value yields an empty list. Records from
// older builds are upgraded in place (missing fields filled with defaults)
// before being returned.
func (g *Gateway) ReadExpenses(ctx context.Context, userID string) []models.Expense {
	raw, ok := g.get(ctx, ExpensesKey(userID))
	if !ok {
		return nil
	}

	var list []models.Expense
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		logger.Log.Warn().
			Err(err).
			Str("user", logger.HashUserID(userID)).
			Msg("Stored expense list is malformed, treating as empty")
		return nil
	}

	now := g.now()
	upgraded := 0
	for i := range list {
		if list[i].Upgrade(userID, now) {
			upgraded++
		}
	}
	if upgraded > 0 {
		logger.Log.Debug().
			Int("records", upgraded).
			Str("user", logger.HashUserID(userID)).
			Msg("Upgraded legacy expense records on read")
	}

	return list
}

// WriteExpenses replaces the persisted partition for userID with list.
// The full list is always written; there are no incremental writes.
func (g *Gateway) WriteExpenses(ctx context.Context, userID string, list []models.Expense) error {
	if list == nil {
		list = []models.Expense{}
	}
	value, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode expense list: %w", err)
	}
	if err := g.set(ctx, ExpensesKey(userID), string(value)); err != nil {
		return fmt.Errorf("failed to persist expense list: %w", err)
	}
	return nil
}

// DeleteExpensesFor removes a user's persisted partition entirely.
func (g *Gateway) DeleteExpensesFor(ctx context.Context, userID string) error {
	if err := g.delete(ctx, ExpensesKey(userID)); err != nil {
		return fmt.Errorf("failed to delete expense partition: %w", err)
	}
	return nil
}

// ReadSession returns the persisted user, or nil when no session is stored
// or the stored value is unparsable.
func (g *Gateway) ReadSession(ctx context.Context) *models.User {
	raw, ok := g.get(ctx, SessionKey)
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logger.Log.Warn().Err(err).Msg("Stored session is malformed, treating as absent")
		return nil
	}
	if user.ID == "" {
		return nil
	}
	return &user
}

// WriteSession persists user as the current session.
func (g *Gateway) WriteSession(ctx context.Context, user *models.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := g.set(ctx, SessionKey, string(value)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// ClearSession removes the persisted session.
func (g *Gateway) ClearSession(ctx context.Context) error {
	if err := g.delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (g *Gateway) get(ctx context.Context, key string) (string, bool) {
	var value string
	err := g.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		logger.Log.Warn().Err(err).Str("key", key).Msg("Storage read failed, treating as absent")
		return "", false
	}
	return value, true
}

func (g *Gateway) set(ctx context.Context, key, value string) error {
	_, err := g.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

func (g *Gateway) delete(ctx context.Context, key string) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

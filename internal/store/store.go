// Package store holds the in-memory expense list for the active user and
// writes every mutation through to persistent storage before returning.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gitlab.com/pennywise/pennywise/internal/logger"
	"gitlab.com/pennywise/pennywise/internal/models"
)

// ErrUserMismatch is returned when an expense is added under a user id
// that does not match the expense's own owner.
var ErrUserMismatch = errors.New("expense does not belong to the active user")

// ExpenseStorage is the persistence surface the store writes through.
// *storage.Gateway implements it.
type ExpenseStorage interface {
	ReadExpenses(ctx context.Context, userID string) []models.Expense
	WriteExpenses(ctx context.Context, userID string, list []models.Expense) error
	DeleteExpensesFor(ctx context.Context, userID string) error
}

// ChangeFunc observes the expense list after a mutation. Callbacks run
// synchronously, post-mutation, in registration order, and receive a copy
// of the list.
type ChangeFunc func(list []models.Expense)

// Store is the expense state machine. It owns the in-memory list for
// exactly one active user at a time; loading a different user fully
// replaces the list, never merges.
type Store struct {
	storage ExpenseStorage

	mu       sync.Mutex
	list     []models.Expense
	loading  bool
	onChange []ChangeFunc
}

// New creates an empty store backed by storage.
func New(storage ExpenseStorage) *Store {
	return &Store{storage: storage}
}

// OnChange registers fn to be called after every completed mutation.
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Load replaces the list with the persisted partition for userID.
// It is idempotent and safe to call repeatedly for the same user.
func (s *Store) Load(ctx context.Context, userID string) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	list := s.storage.ReadExpenses(ctx, userID)

	s.mu.Lock()
	s.list = list
	s.loading = false
	s.mu.Unlock()

	s.notify()
}

// Add appends expense to the list and persists the full updated list under
// userID. The expense must already be validated; Add only enforces that it
// belongs to userID. A storage write failure is returned to the caller but
// the in-memory list keeps the new record.
func (s *Store) Add(ctx context.Context, expense *models.Expense, userID string) error {
	if expense.UserID != userID {
		return ErrUserMismatch
	}

	s.mu.Lock()
	s.list = append(s.list, *expense)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	defer s.notify()

	if err := s.storage.WriteExpenses(ctx, userID, snapshot); err != nil {
		logger.Log.Warn().
			Err(err).
			Str("user", logger.HashUserID(userID)).
			Msg("Write-through failed, in-memory state retained")
		return fmt.Errorf("failed to persist added expense: %w", err)
	}
	return nil
}

// Delete removes the expense with the given id and persists the updated
// list. Deleting an id that is not present is a successful no-op.
func (s *Store) Delete(ctx context.Context, id, userID string) error {
	s.mu.Lock()
	found := false
	for i := range s.list {
		if s.list[i].ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			found = true
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if !found {
		return nil
	}

	defer s.notify()

	if err := s.storage.WriteExpenses(ctx, userID, snapshot); err != nil {
		logger.Log.Warn().
			Err(err).
			Str("user", logger.HashUserID(userID)).
			Msg("Write-through failed, in-memory state retained")
		return fmt.Errorf("failed to persist deletion: %w", err)
	}
	return nil
}

// Clear empties the list and deletes the persisted partition for userID.
func (s *Store) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	s.list = nil
	s.mu.Unlock()

	defer s.notify()

	if err := s.storage.DeleteExpensesFor(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear expense partition: %w", err)
	}
	return nil
}

// List returns a copy of the current expense list.
func (s *Store) List() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Loading reports whether a load is in progress.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) snapshotLocked() []models.Expense {
	out := make([]models.Expense, len(s.list))
	copy(out, s.list)
	return out
}

func (s *Store) notify() {
	s.mu.Lock()
	callbacks := make([]ChangeFunc, len(s.onChange))
	copy(callbacks, s.onChange)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(snapshot)
	}
}

package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("uses given name", func(t *testing.T) {
		user := NewUser("alice@example.com", "Alice")
		require.NotEmpty(t, user.ID)
		require.Equal(t, "alice@example.com", user.Email)
		require.Equal(t, "Alice", user.Name)
	})

	t.Run("defaults name to email local part", func(t *testing.T) {
		user := NewUser("bob@example.com", "")
		require.Equal(t, "bob", user.Name)
	})

	t.Run("generates unique ids", func(t *testing.T) {
		a := NewUser("a@example.com", "")
		b := NewUser("a@example.com", "")
		require.NotEqual(t, a.ID, b.ID)
	})
}

func TestNewExpense(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	valid := Draft{
		Title:    "Coffee",
		Amount:   decimal.NewFromFloat(4.50),
		Category: "Food",
		Date:     NewDate(2024, time.March, 1),
	}

	t.Run("assigns id and creation time", func(t *testing.T) {
		e, err := NewExpense(valid, "u1", now)
		require.NoError(t, err)
		require.NotEmpty(t, e.ID)
		require.Equal(t, "u1", e.UserID)
		require.Equal(t, now, e.CreatedAt)
		require.True(t, e.UpdatedAt.IsZero())
	})

	t.Run("trims title and description", func(t *testing.T) {
		draft := valid
		draft.Title = "  Coffee  "
		draft.Description = " with friends "
		e, err := NewExpense(draft, "u1", now)
		require.NoError(t, err)
		require.Equal(t, "Coffee", e.Title)
		require.Equal(t, "with friends", e.Description)
	})

	t.Run("drops empty tags", func(t *testing.T) {
		draft := valid
		draft.Tags = []string{" work ", "", "  "}
		e, err := NewExpense(draft, "u1", now)
		require.NoError(t, err)
		require.Equal(t, []string{"work"}, e.Tags)
	})

	t.Run("permits zero amounts", func(t *testing.T) {
		draft := valid
		draft.Amount = decimal.Zero
		_, err := NewExpense(draft, "u1", now)
		require.NoError(t, err)
	})
}

func TestExpenseValidate(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	base := Draft{
		Title:    "Coffee",
		Amount:   decimal.NewFromFloat(4.50),
		Category: "Food",
		Date:     NewDate(2024, time.March, 1),
	}

	tests := []struct {
		name    string
		mutate  func(*Draft)
		userID  string
		wantErr error
	}{
		{"missing title", func(d *Draft) { d.Title = "" }, "u1", ErrMissingTitle},
		{"negative amount", func(d *Draft) { d.Amount = decimal.NewFromInt(-1) }, "u1", ErrNegativeAmount},
		{"missing category", func(d *Draft) { d.Category = "" }, "u1", ErrMissingCategory},
		{"unknown category", func(d *Draft) { d.Category = "Groceries" }, "u1", ErrInvalidCategory},
		{"missing date", func(d *Draft) { d.Date = Date{} }, "u1", ErrMissingDate},
		{"missing user", func(d *Draft) {}, "", ErrMissingUser},
		{"unknown payment method", func(d *Draft) { d.PaymentMethod = "cheque" }, "u1", ErrInvalidPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := base
			tt.mutate(&draft)
			_, err := NewExpense(draft, tt.userID, now)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("accepts every category", func(t *testing.T) {
		for _, cat := range Categories {
			draft := base
			draft.Category = cat
			_, err := NewExpense(draft, "u1", now)
			require.NoError(t, err)
		}
	})

	t.Run("accepts every payment method", func(t *testing.T) {
		for _, method := range PaymentMethods {
			draft := base
			draft.PaymentMethod = method
			_, err := NewExpense(draft, "u1", now)
			require.NoError(t, err)
		}
	})
}

package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestExpenseUpgrade(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("fills missing id, owner and creation time", func(t *testing.T) {
		e := Expense{
			Title:    "Coffee",
			Amount:   decimal.NewFromFloat(4.50),
			Category: "Food",
			Date:     NewDate(2024, time.March, 1),
		}
		require.True(t, e.Upgrade("u1", now))
		require.NotEmpty(t, e.ID)
		require.Equal(t, "u1", e.UserID)
		require.Equal(t, now, e.CreatedAt)
	})

	t.Run("maps unknown category to Other", func(t *testing.T) {
		e := Expense{ID: "e1", UserID: "u1", Category: "Groceries", CreatedAt: now}
		require.True(t, e.Upgrade("u1", now))
		require.Equal(t, CategoryOther, e.Category)
	})

	t.Run("clears invalid payment method", func(t *testing.T) {
		e := Expense{ID: "e1", UserID: "u1", Category: "Food", PaymentMethod: "cheque", CreatedAt: now}
		require.True(t, e.Upgrade("u1", now))
		require.Empty(t, e.PaymentMethod)
	})

	t.Run("leaves complete records untouched", func(t *testing.T) {
		e := Expense{
			ID:            "e1",
			Title:         "Coffee",
			Amount:        decimal.NewFromFloat(4.50),
			Category:      "Food",
			Date:          NewDate(2024, time.March, 1),
			UserID:        "u1",
			PaymentMethod: "card",
			CreatedAt:     now,
		}
		before := e
		require.False(t, e.Upgrade("u1", now.Add(time.Hour)))
		require.Equal(t, before, e)
	})

	t.Run("keeps existing owner over partition owner", func(t *testing.T) {
		e := Expense{ID: "e1", UserID: "u2", Category: "Food", CreatedAt: now}
		e.Upgrade("u1", now)
		require.Equal(t, "u2", e.UserID)
	})
}

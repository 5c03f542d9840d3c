package cli

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gitlab.com/pennywise/pennywise/internal/models"
)

func TestGenerateExpensesCSV(t *testing.T) {
	expenses := []models.Expense{
		{
			ID:            "e1",
			Title:         "Coffee",
			Amount:        decimal.NewFromFloat(4.50),
			Category:      "Food",
			Date:          models.NewDate(2024, time.March, 1),
			UserID:        "u1",
			PaymentMethod: "card",
			Tags:          []string{"work", "morning"},
			CreatedAt:     time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:       "e2",
			Title:    "Bus ticket",
			Amount:   decimal.NewFromFloat(2.80),
			Category: "Travel",
			Date:     models.NewDate(2024, time.March, 2),
			UserID:   "u1",
		},
	}

	data, err := GenerateExpensesCSV(expenses)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, []string{"ID", "Date", "Title", "Amount", "Category", "Payment Method", "Tags", "Created At"}, records[0])
	require.Equal(t, []string{"e1", "2024-03-01", "Coffee", "4.50", "Food", "card", "work;morning", "2024-03-01 09:30:00"}, records[1])
	require.Equal(t, []string{"e2", "2024-03-02", "Bus ticket", "2.80", "Travel", "", "", ""}, records[2])
}

func TestGenerateExpensesCSVEmpty(t *testing.T) {
	data, err := GenerateExpensesCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

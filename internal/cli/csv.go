package cli

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"gitlab.com/pennywise/pennywise/internal/models"
)

// GenerateExpensesCSV generates a CSV document from a list of expenses.
func GenerateExpensesCSV(expenses []models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Date", "Title", "Amount", "Category", "Payment Method", "Tags", "Created At"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range expenses {
		created := ""
		if !expenses[i].CreatedAt.IsZero() {
			created = expenses[i].CreatedAt.Format("2006-01-02 15:04:05")
		}

		row := []string{
			expenses[i].ID,
			expenses[i].Date.String(),
			expenses[i].Title,
			expenses[i].Amount.StringFixed(2),
			expenses[i].Category,
			expenses[i].PaymentMethod,
			strings.Join(expenses[i].Tags, ";"),
			created,
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

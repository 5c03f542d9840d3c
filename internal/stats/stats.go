// Package stats computes the read-only aggregates shown to the user.
// Everything here is a pure function of the expense list, the active user
// and a reference time; nothing is persisted.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gitlab.com/pennywise/pennywise/internal/models"
)

// Summary is the derived view model for one user at one point in time.
type Summary struct {
	Total             decimal.Decimal
	MonthlyTotal      decimal.Decimal
	CategoryCount     int
	SortedList        []models.Expense
	WeeklyCount       int
	AveragePerExpense decimal.Decimal
}

// Compute derives the summary for activeUserID at the reference time now.
// Records owned by other users are excluded entirely.
func Compute(list []models.Expense, activeUserID string, now time.Time) Summary {
	owned := filterByUser(list, activeUserID)

	total := decimal.Zero
	monthly := decimal.Zero
	weekly := 0
	categories := make(map[string]struct{})
	// Day granularity: expense dates are midnight-normalized, so a date
	// exactly seven days back still counts regardless of the clock time.
	weekCutoff := models.DateOf(now.AddDate(0, 0, -7))

	for _, e := range owned {
		total = total.Add(e.Amount)
		if e.Date.SameMonth(now) {
			monthly = monthly.Add(e.Amount)
		}
		if !e.Date.Before(weekCutoff.Time) && !e.Date.After(now) {
			weekly++
		}
		categories[e.Category] = struct{}{}
	}

	average := decimal.Zero
	if len(owned) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(owned))))
	}

	return Summary{
		Total:             total,
		MonthlyTotal:      monthly,
		CategoryCount:     len(categories),
		SortedList:        sortNewestFirst(owned),
		WeeklyCount:       weekly,
		AveragePerExpense: average,
	}
}

// CategoryTotals groups a user's expenses and returns the total per
// category. Used for the chart rendering.
func CategoryTotals(list []models.Expense, activeUserID string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range filterByUser(list, activeUserID) {
		if existing, ok := totals[e.Category]; ok {
			totals[e.Category] = existing.Add(e.Amount)
		} else {
			totals[e.Category] = e.Amount
		}
	}
	return totals
}

func filterByUser(list []models.Expense, userID string) []models.Expense {
	var owned []models.Expense
	for _, e := range list {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	return owned
}

// sortNewestFirst orders by creation time descending, falling back to the
// expense date for records without a creation timestamp. The sort is
// stable so equal keys keep their original relative order.
func sortNewestFirst(list []models.Expense) []models.Expense {
	out := make([]models.Expense, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]).After(sortKey(out[j]))
	})
	return out
}

func sortKey(e models.Expense) time.Time {
	if !e.CreatedAt.IsZero() {
		return e.CreatedAt
	}
	return e.Date.Time
}

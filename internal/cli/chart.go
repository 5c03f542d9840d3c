package cli

import (
	"fmt"
	"sort"

	"github.com/go-analyze/charts"
	"github.com/shopspring/decimal"
)

// RenderCategoryChart creates a pie chart showing the spending breakdown
// by category. Returns the PNG image as bytes. Categories are sorted by
// name so output is deterministic.
func RenderCategoryChart(totals map[string]decimal.Decimal, period string) ([]byte, error) {
	if len(totals) == 0 {
		return nil, fmt.Errorf("no expenses to chart")
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]float64, 0, len(names))
	for _, name := range names {
		values = append(values, totals[name].InexactFloat64())
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Expense Breakdown - %s", period),
		}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}

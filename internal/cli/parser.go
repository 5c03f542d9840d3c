package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse errors surfaced to the user as-is.
var (
	ErrEmptyInput   = errors.New("nothing to add")
	ErrNoAmount     = errors.New("input must start with an amount, like \"5.50 Coffee\"")
	ErrMissingTitle = errors.New("a title is required after the amount")
)

// amountRegex matches amounts like "5", "5.50", "5,50".
var amountRegex = regexp.MustCompile(`^(\d+(?:[.,]\d{1,2})?)`)

// ParsedEntry is the amount/title pair extracted from free-text input.
type ParsedEntry struct {
	Amount decimal.Decimal
	Title  string
}

// ParseEntry parses free-text expense input like "5.50 Coffee" or
// "12 Lunch with team". The amount must lead; everything after it becomes
// the title. A comma decimal separator is accepted. Zero amounts are
// allowed, negative amounts never match.
func ParseEntry(input string) (*ParsedEntry, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	match := amountRegex.FindString(input)
	if match == "" {
		return nil, ErrNoAmount
	}

	normalized := strings.ReplaceAll(match, ",", ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount %q: %w", match, err)
	}

	title := strings.TrimSpace(input[len(match):])
	if title == "" {
		return nil, ErrMissingTitle
	}

	return &ParsedEntry{Amount: amount, Title: title}, nil
}

// Package models defines the domain entities for the expense tracker.
package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxTitleLength is the maximum allowed length for expense titles.
const MaxTitleLength = 120

// MaxTagLength is the maximum allowed length for a single tag.
const MaxTagLength = 30

// Categories lists the fixed expense categories.
var Categories = []string{"Food", "Travel", "Shopping", "Bills", "Other"}

// CategoryOther is the fallback category for records with an unknown category.
const CategoryOther = "Other"

// PaymentMethods lists the accepted payment method values.
var PaymentMethods = []string{"cash", "card", "upi", "bank_transfer", "other"}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	return slices.Contains(Categories, name)
}

// ValidPaymentMethod reports whether method is an accepted payment method.
func ValidPaymentMethod(method string) bool {
	return slices.Contains(PaymentMethods, method)
}

// Validation errors returned by Expense.Validate and NewExpense.
var (
	ErrMissingTitle         = errors.New("title is required")
	ErrTitleTooLong         = errors.New("title is too long")
	ErrNegativeAmount       = errors.New("amount cannot be negative")
	ErrMissingCategory      = errors.New("category is required")
	ErrInvalidCategory      = errors.New("unknown category")
	ErrMissingDate          = errors.New("date is required")
	ErrMissingUser          = errors.New("user id is required")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
)

// User represents an authenticated user. Authentication is a local stub:
// users are synthesized at login and never verified against any authority.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewUser synthesizes a user for a fresh login. An empty name defaults to
// the local part of the email address.
func NewUser(email, name string) *User {
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return &User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
}

// Expense represents a single expense entry.
type Expense struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          Date            `json:"date"`
	UserID        string          `json:"userId"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	CreatedAt     time.Time       `json:"createdAt,omitzero"`
	UpdatedAt     time.Time       `json:"updatedAt,omitzero"`
}

// Draft holds the user-supplied fields for a new expense.
type Draft struct {
	Title         string
	Amount        decimal.Decimal
	Category      string
	Date          Date
	Description   string
	PaymentMethod string
	Tags          []string
}

// NewExpense builds a validated expense from a draft. The id and creation
// timestamp are assigned here and never change afterwards.
func NewExpense(draft Draft, userID string, now time.Time) (*Expense, error) {
	e := &Expense{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(draft.Title),
		Amount:        draft.Amount,
		Category:      draft.Category,
		Date:          draft.Date,
		UserID:        userID,
		Description:   strings.TrimSpace(draft.Description),
		PaymentMethod: draft.PaymentMethod,
		Tags:          normalizeTags(draft.Tags),
		CreatedAt:     now,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the required fields. Zero amounts are permitted,
// negative amounts are not.
func (e *Expense) Validate() error {
	switch {
	case e.Title == "":
		return ErrMissingTitle
	case len(e.Title) > MaxTitleLength:
		return ErrTitleTooLong
	case e.Amount.IsNegative():
		return ErrNegativeAmount
	case e.Category == "":
		return ErrMissingCategory
	case !ValidCategory(e.Category):
		return fmt.Errorf("%w: %q", ErrInvalidCategory, e.Category)
	case e.Date.IsZero():
		return ErrMissingDate
	case e.UserID == "":
		return ErrMissingUser
	}
	if e.PaymentMethod != "" && !ValidPaymentMethod(e.PaymentMethod) {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, e.PaymentMethod)
	}
	return nil
}

func normalizeTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if len(tag) > MaxTagLength {
			tag = tag[:MaxTagLength]
		}
		out = append(out, tag)
	}
	return out
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// CurrentSchemaVersion is the schema version written by this build. Stored
// records carry no version marker before version 1, so any record missing
// fields is treated as legacy and upgraded on read.
const CurrentSchemaVersion = 1

// Upgrade fills in fields that older stored records may lack, in place.
// It accepts records of unknown shape (any subset of the current fields)
// and applies these default-fill rules:
//
//   - missing id        -> freshly generated
//   - missing userId    -> ownerID (the partition the record was read from)
//   - missing createdAt -> now
//   - unknown category  -> "Other" (empty stays empty for Validate to catch)
//   - invalid paymentMethod -> cleared
//
// It returns true when any field was changed. Upgrade never rejects a
// record; validation is a separate concern.
func (e *Expense) Upgrade(ownerID string, now time.Time) bool {
	changed := false

	if e.ID == "" {
		e.ID = uuid.NewString()
		changed = true
	}
	if e.UserID == "" {
		e.UserID = ownerID
		changed = true
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
		changed = true
	}
	if e.Category != "" && !ValidCategory(e.Category) {
		e.Category = CategoryOther
		changed = true
	}
	if e.PaymentMethod != "" && !ValidPaymentMethod(e.PaymentMethod) {
		e.PaymentMethod = ""
		changed = true
	}

	return changed
}

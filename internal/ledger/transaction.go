package ledger

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. Category is free text on purpose.
// Recurrence, Member and TargetAccount are weak references that may point at
// rows which no longer exist.
type Transaction struct {
	Meta
	Amount        decimal.Decimal
	Label         string
	Type          EntryType
	Date          time.Time
	Status        Status
	IsAutomatic   bool
	Account       uuid.UUID
	Category      string
	Recurrence    uuid.NullUUID
	Member        uuid.NullUUID
	TargetAccount uuid.NullUUID
}

func (t Transaction) Validate() error {
	if err := t.validateOwner(); err != nil {
		return err
	}
	if t.Amount.IsZero() {
		return required("amount")
	}
	if t.Amount.IsNegative() {
		return invalid("amount", "must be a positive magnitude")
	}
	if strings.TrimSpace(t.Label) == "" {
		return required("label")
	}
	if !t.Type.Valid() {
		return invalid("type", "must be one of %v", EntryTypes)
	}
	if t.Date.IsZero() {
		return required("date")
	}
	if !t.Status.Valid() {
		return invalid("status", "must be one of %v", Statuses)
	}
	if t.Account == uuid.Nil {
		return required("account")
	}
	return validateTransfer(t.Type, t.Account, t.TargetAccount)
}

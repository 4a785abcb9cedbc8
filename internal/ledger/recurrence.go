package ledger

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Recurrence describes an entry that repeats on a schedule. Deleting its
// account deletes it; its target account may disappear without notice.
type Recurrence struct {
	Meta
	Amount        decimal.Decimal
	Label         string
	Type          EntryType
	Frequency     Frequency
	DayOfMonth    *int
	NextDueDate   time.Time
	Active        bool
	Account       uuid.UUID
	TargetAccount uuid.NullUUID
}

func (r Recurrence) Validate() error {
	if err := r.validateOwner(); err != nil {
		return err
	}
	if r.Amount.IsZero() {
		return required("amount")
	}
	if r.Amount.IsNegative() {
		return invalid("amount", "must be a positive magnitude")
	}
	if strings.TrimSpace(r.Label) == "" {
		return required("label")
	}
	if !r.Type.Valid() {
		return invalid("type", "must be one of %v", EntryTypes)
	}
	if !r.Frequency.Valid() {
		return invalid("frequency", "must be one of %v", Frequencies)
	}
	if r.DayOfMonth != nil {
		if err := validateDay("day_of_month", *r.DayOfMonth); err != nil {
			return err
		}
	}
	if r.NextDueDate.IsZero() {
		return required("next_due_date")
	}
	if r.Account == uuid.Nil {
		return required("account")
	}
	return validateTransfer(r.Type, r.Account, r.TargetAccount)
}

func validateDay(field string, day int) error {
	if day < MinDayOfMonth || day > MaxDayOfMonth {
		return invalid(field, "must be between %d and %d", MinDayOfMonth, MaxDayOfMonth)
	}
	return nil
}

func validateTransfer(t EntryType, account uuid.UUID, target uuid.NullUUID) error {
	if t != EntryTypeTransfer {
		return nil
	}
	if !target.Valid || target.UUID == uuid.Nil {
		return invalid("target_account", "is required for transfers")
	}
	if target.UUID == account {
		return invalid("target_account", "must differ from account")
	}
	return nil
}

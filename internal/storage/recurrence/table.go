package recurrence

import (
	"database/sql"
	"time"

	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
)

// Store reads and writes recurrence templates.
type Store = sqlconfig.Store[ledger.Recurrence]

type row struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Amount          decimal.Decimal `db:"amount"`
	Label           string          `db:"label"`
	Type            string          `db:"type"`
	Frequency       string          `db:"frequency"`
	DayOfMonth      sql.NullInt32   `db:"day_of_month"`
	NextDueDate     time.Time       `db:"next_due_date"`
	Active          bool            `db:"active"`
	AccountID       uuid.UUID       `db:"account_id"`
	TargetAccountID uuid.NullUUID   `db:"target_account_id"`
	Created         time.Time       `db:"created"`
	Updated         time.Time       `db:"updated"`
}

var mapping = &sqlconfig.Mapping[ledger.Recurrence, row]{
	Table: "recurrences",
	Columns: []string{
		"user_id", "amount", "label", "type", "frequency", "day_of_month",
		"next_due_date", "active", "account_id", "target_account_id",
	},
	Values: func(r ledger.Recurrence) []any {
		day := sql.NullInt32{}
		if r.DayOfMonth != nil {
			day = sql.NullInt32{Int32: int32(*r.DayOfMonth), Valid: true}
		}
		return []any{
			r.User, r.Amount, r.Label, string(r.Type), string(r.Frequency), day,
			r.NextDueDate, r.Active, r.Account, r.TargetAccount,
		}
	},
	ToRecord:     toRecurrence,
	RecordID:     func(r ledger.Recurrence) uuid.UUID { return r.ID },
	DefaultOrder: []sqlconfig.Order{{Column: "next_due_date"}},
}

func NewTable(exec bob.Executor) Store {
	return sqlconfig.NewTable(exec, mapping)
}

func toRecurrence(r row) ledger.Recurrence {
	var day *int
	if r.DayOfMonth.Valid {
		d := int(r.DayOfMonth.Int32)
		day = &d
	}
	return ledger.Recurrence{
		Meta:          ledger.Meta{ID: r.ID, User: r.UserID, Created: r.Created, Updated: r.Updated},
		Amount:        r.Amount,
		Label:         r.Label,
		Type:          ledger.EntryType(r.Type),
		Frequency:     ledger.Frequency(r.Frequency),
		DayOfMonth:    day,
		NextDueDate:   r.NextDueDate,
		Active:        r.Active,
		Account:       r.AccountID,
		TargetAccount: r.TargetAccountID,
	}
}

package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"
)

// Store reads and writes ledger transactions.
//
//go:generate mockery --name Store --output mock_Store.go
type Store interface {
	sqlconfig.Store[ledger.Transaction]
	// Legs totals every transaction touching account, grouped by status,
	// type and direction.
	Legs(ctx context.Context, user, account uuid.UUID) ([]ledger.Leg, error)
}

type row struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Amount          decimal.Decimal `db:"amount"`
	Label           string          `db:"label"`
	Type            string          `db:"type"`
	Date            time.Time       `db:"date"`
	Status          string          `db:"status"`
	IsAutomatic     bool            `db:"is_automatic"`
	AccountID       uuid.UUID       `db:"account_id"`
	Category        string          `db:"category"`
	RecurrenceID    uuid.NullUUID   `db:"recurrence_id"`
	MemberID        uuid.NullUUID   `db:"member_id"`
	TargetAccountID uuid.NullUUID   `db:"target_account_id"`
	Created         time.Time       `db:"created"`
	Updated         time.Time       `db:"updated"`
}

type legRow struct {
	Status   string          `db:"status"`
	Type     string          `db:"type"`
	Outgoing bool            `db:"outgoing"`
	Total    decimal.Decimal `db:"total"`
}

var mapping = &sqlconfig.Mapping[ledger.Transaction, row]{
	Table: "transactions",
	Columns: []string{
		"user_id", "amount", "label", "type", "date", "status", "is_automatic",
		"account_id", "category", "recurrence_id", "member_id", "target_account_id",
	},
	Values: func(t ledger.Transaction) []any {
		return []any{
			t.User, t.Amount, t.Label, string(t.Type), t.Date, string(t.Status), t.IsAutomatic,
			t.Account, t.Category, t.Recurrence, t.Member, t.TargetAccount,
		}
	},
	ToRecord:     toTransaction,
	RecordID:     func(t ledger.Transaction) uuid.UUID { return t.ID },
	DefaultOrder: []sqlconfig.Order{{Column: "date", Desc: true}},
}

const legsQuery = `SELECT status, type, account_id = ? AS outgoing, sum(abs(amount)) AS total
FROM transactions
WHERE user_id = ? AND (account_id = ? OR (type = 'transfer' AND target_account_id = ?))
GROUP BY status, type, outgoing`

type Table struct {
	*sqlconfig.Table[ledger.Transaction, row]
	exec bob.Executor
}

var _ Store = (*Table)(nil)

func NewTable(exec bob.Executor) *Table {
	return &Table{
		Table: sqlconfig.NewTable(exec, mapping),
		exec:  exec,
	}
}

func (t *Table) Legs(ctx context.Context, user, account uuid.UUID) ([]ledger.Leg, error) {
	q := psql.RawQuery(legsQuery, account, user, account, account)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[legRow]())
	if err != nil {
		return nil, fmt.Errorf("transactions: legs for %s: %w", account, err)
	}

	legs := make([]ledger.Leg, len(rows))
	for i, r := range rows {
		legs[i] = ledger.Leg{
			Status:   ledger.Status(r.Status),
			Type:     ledger.EntryType(r.Type),
			Outgoing: r.Outgoing,
			Total:    r.Total,
		}
	}
	return legs, nil
}

func toTransaction(r row) ledger.Transaction {
	return ledger.Transaction{
		Meta:          ledger.Meta{ID: r.ID, User: r.UserID, Created: r.Created, Updated: r.Updated},
		Amount:        r.Amount,
		Label:         r.Label,
		Type:          ledger.EntryType(r.Type),
		Date:          r.Date,
		Status:        ledger.Status(r.Status),
		IsAutomatic:   r.IsAutomatic,
		Account:       r.AccountID,
		Category:      r.Category,
		Recurrence:    r.RecurrenceID,
		Member:        r.MemberID,
		TargetAccount: r.TargetAccountID,
	}
}

package account

import (
	"time"

	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
)

// Store reads and writes accounts.
type Store = sqlconfig.Store[ledger.Account]

type row struct {
	ID             uuid.UUID           `db:"id"`
	UserID         uuid.UUID           `db:"user_id"`
	Name           string              `db:"name"`
	Type           string              `db:"type"`
	InitialBalance decimal.NullDecimal `db:"initial_balance"`
	Created        time.Time           `db:"created"`
	Updated        time.Time           `db:"updated"`
}

var mapping = &sqlconfig.Mapping[ledger.Account, row]{
	Table:   "accounts",
	Columns: []string{"user_id", "name", "type", "initial_balance"},
	Values: func(a ledger.Account) []any {
		return []any{a.User, a.Name, string(a.Type), a.InitialBalance}
	},
	ToRecord:     toAccount,
	RecordID:     func(a ledger.Account) uuid.UUID { return a.ID },
	DefaultOrder: []sqlconfig.Order{{Column: "name"}},
}

func NewTable(exec bob.Executor) Store {
	return sqlconfig.NewTable(exec, mapping)
}

func toAccount(r row) ledger.Account {
	return ledger.Account{
		Meta:           ledger.Meta{ID: r.ID, User: r.UserID, Created: r.Created, Updated: r.Updated},
		Name:           r.Name,
		Type:           ledger.AccountType(r.Type),
		InitialBalance: r.InitialBalance,
	}
}

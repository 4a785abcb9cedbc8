package rawinbox

import (
	"encoding/json"
	"time"

	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
)

// Store reads and writes raw inbox items.
type Store = sqlconfig.Store[ledger.RawInboxItem]

type row struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Date        time.Time       `db:"date"`
	Label       string          `db:"label"`
	Amount      decimal.Decimal `db:"amount"`
	IsProcessed bool            `db:"is_processed"`
	RawPayload  string          `db:"raw_payload"`
	Metadata    []byte          `db:"metadata"`
	Created     time.Time       `db:"created"`
	Updated     time.Time       `db:"updated"`
}

var mapping = &sqlconfig.Mapping[ledger.RawInboxItem, row]{
	Table:   "raw_inbox",
	Columns: []string{"user_id", "date", "label", "amount", "is_processed", "raw_payload", "metadata"},
	Values: func(r ledger.RawInboxItem) []any {
		return []any{r.User, r.Date, r.Label, r.Amount, r.IsProcessed, r.RawPayload, sqlconfig.JSONArg(r.Metadata)}
	},
	ToRecord: func(r row) ledger.RawInboxItem {
		return ledger.RawInboxItem{
			Meta:        ledger.Meta{ID: r.ID, User: r.UserID, Created: r.Created, Updated: r.Updated},
			Date:        r.Date,
			Label:       r.Label,
			Amount:      r.Amount,
			IsProcessed: r.IsProcessed,
			RawPayload:  r.RawPayload,
			Metadata:    json.RawMessage(r.Metadata),
		}
	},
	RecordID:     func(r ledger.RawInboxItem) uuid.UUID { return r.ID },
	DefaultOrder: []sqlconfig.Order{{Column: "date", Desc: true}},
}

func NewTable(exec bob.Executor) Store {
	return sqlconfig.NewTable(exec, mapping)
}

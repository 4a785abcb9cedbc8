package member

import (
	"time"

	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
)

// Store reads and writes household members.
type Store = sqlconfig.Store[ledger.Member]

type row struct {
	ID      uuid.UUID `db:"id"`
	UserID  uuid.UUID `db:"user_id"`
	Name    string    `db:"name"`
	Icon    string    `db:"icon"`
	Created time.Time `db:"created"`
	Updated time.Time `db:"updated"`
}

var mapping = &sqlconfig.Mapping[ledger.Member, row]{
	Table:   "members",
	Columns: []string{"user_id", "name", "icon"},
	Values: func(m ledger.Member) []any {
		return []any{m.User, m.Name, m.Icon}
	},
	ToRecord: func(r row) ledger.Member {
		return ledger.Member{
			Meta: ledger.Meta{ID: r.ID, User: r.UserID, Created: r.Created, Updated: r.Updated},
			Name: r.Name,
			Icon: r.Icon,
		}
	},
	RecordID:     func(m ledger.Member) uuid.UUID { return m.ID },
	DefaultOrder: []sqlconfig.Order{{Column: "name"}},
}

func NewTable(exec bob.Executor) Store {
	return sqlconfig.NewTable(exec, mapping)
}

package category

import (
	"time"

	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
)

// Store reads and writes categories.
type Store = sqlconfig.Store[ledger.Category]

type row struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Name          string    `db:"name"`
	IconCodePoint int       `db:"icon_code_point"`
	ColorHex      string    `db:"color_hex"`
	IsSystem      bool      `db:"is_system"`
	Created       time.Time `db:"created"`
	Updated       time.Time `db:"updated"`
}

var mapping = &sqlconfig.Mapping[ledger.Category, row]{
	Table:   "categories",
	Columns: []string{"user_id", "name", "icon_code_point", "color_hex", "is_system"},
	Values: func(c ledger.Category) []any {
		return []any{c.User, c.Name, c.IconCodePoint, c.ColorHex, c.IsSystem}
	},
	ToRecord: func(r row) ledger.Category {
		return ledger.Category{
			Meta:          ledger.Meta{ID: r.ID, User: r.UserID, Created: r.Created, Updated: r.Updated},
			Name:          r.Name,
			IconCodePoint: r.IconCodePoint,
			ColorHex:      r.ColorHex,
			IsSystem:      r.IsSystem,
		}
	},
	RecordID:     func(c ledger.Category) uuid.UUID { return c.ID },
	DefaultOrder: []sqlconfig.Order{{Column: "name"}},
}

func NewTable(exec bob.Executor) Store {
	return sqlconfig.NewTable(exec, mapping)
}

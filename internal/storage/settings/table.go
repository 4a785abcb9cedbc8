package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
)

// Store reads and writes per-user settings.
type Store interface {
	sqlconfig.Store[ledger.Settings]
	// FindByUser returns the settings row of user, or sqlconfig.ErrNotFound.
	FindByUser(ctx context.Context, user uuid.UUID) (ledger.Settings, error)
}

type row struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	FiscalDayStart int       `db:"fiscal_day_start"`
	ActiveParsers  []byte    `db:"active_parsers"`
	Created        time.Time `db:"created"`
	Updated        time.Time `db:"updated"`
}

var mapping = &sqlconfig.Mapping[ledger.Settings, row]{
	Table:   "settings",
	Columns: []string{"user_id", "fiscal_day_start", "active_parsers"},
	Values: func(s ledger.Settings) []any {
		return []any{s.User, s.FiscalDayStart, sqlconfig.JSONArg(s.ActiveParsers)}
	},
	ToRecord: func(r row) ledger.Settings {
		return ledger.Settings{
			Meta:           ledger.Meta{ID: r.ID, User: r.UserID, Created: r.Created, Updated: r.Updated},
			FiscalDayStart: r.FiscalDayStart,
			ActiveParsers:  json.RawMessage(r.ActiveParsers),
		}
	},
	RecordID:     func(s ledger.Settings) uuid.UUID { return s.ID },
	DefaultOrder: []sqlconfig.Order{{Column: "created"}},
}

type Table struct {
	*sqlconfig.Table[ledger.Settings, row]
}

var _ Store = (*Table)(nil)

func NewTable(exec bob.Executor) *Table {
	return &Table{Table: sqlconfig.NewTable(exec, mapping)}
}

func (t *Table) FindByUser(ctx context.Context, user uuid.UUID) (ledger.Settings, error) {
	rows, err := t.List(ctx, &sqlconfig.Filter{UserID: user, Limit: 1})
	if err != nil {
		return ledger.Settings{}, err
	}
	if len(rows) == 0 {
		return ledger.Settings{}, fmt.Errorf("settings for %s: %w", user, sqlconfig.ErrNotFound)
	}
	return rows[0], nil
}

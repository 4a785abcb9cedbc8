package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("record not found")

// Range restricts a timestamp column to [From, To). Either bound may be nil.
type Range struct {
	Column string
	From   *time.Time
	To     *time.Time
}

// Order is one ORDER BY term.
type Order struct {
	Column string
	Desc   bool
}

// Filter specifies which rows List returns. A zero UserID lists every owner.
type Filter struct {
	UserID  uuid.UUID
	Equal   map[string]any
	Range   *Range
	OrderBy []Order
	Limit   int
	Offset  int
}

// Store is the storage contract shared by every owned collection.
//
//go:generate mockery --name Store --output mock_Store.go
type Store[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (T, error)
	List(ctx context.Context, filter *Filter) ([]T, error)
	Insert(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Mapping describes how a record type is laid out in its table. Columns are
// the writable columns; id, created and updated are assigned by the database.
type Mapping[T any, R any] struct {
	Table        string
	Columns      []string
	Values       func(T) []any
	ToRecord     func(R) T
	RecordID     func(T) uuid.UUID
	DefaultOrder []Order
}

func (m *Mapping[T, R]) selectColumns() []any {
	cols := make([]any, 0, len(m.Columns)+3)
	cols = append(cols, psql.Quote("id"))
	for _, col := range m.Columns {
		cols = append(cols, psql.Quote(col))
	}
	return append(cols, psql.Quote("created"), psql.Quote("updated"))
}

// Table implements Store for one mapping on top of bob.
type Table[T any, R any] struct {
	exec    bob.Executor
	mapping *Mapping[T, R]
}

func NewTable[T any, R any](exec bob.Executor, mapping *Mapping[T, R]) *Table[T, R] {
	return &Table[T, R]{exec: exec, mapping: mapping}
}

func (t *Table[T, R]) FindByID(ctx context.Context, id uuid.UUID) (T, error) {
	q := psql.Select(
		sm.Columns(t.mapping.selectColumns()...),
		sm.From(psql.Quote(t.mapping.Table)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return t.one(ctx, q)
}

func (t *Table[T, R]) List(ctx context.Context, filter *Filter) ([]T, error) {
	if filter == nil {
		filter = &Filter{}
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(t.mapping.selectColumns()...),
		sm.From(psql.Quote(t.mapping.Table)),
	}
	if filter.UserID != uuid.Nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))))
	}

	keys := make([]string, 0, len(filter.Equal))
	for key := range filter.Equal {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		queryMods = append(queryMods, sm.Where(psql.Quote(key).EQ(psql.Arg(filter.Equal[key]))))
	}

	if r := filter.Range; r != nil {
		if r.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote(r.Column).GTE(psql.Arg(*r.From))))
		}
		if r.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote(r.Column).LT(psql.Arg(*r.To))))
		}
	}

	order := filter.OrderBy
	if len(order) == 0 {
		order = t.mapping.DefaultOrder
	}
	for _, o := range order {
		if o.Desc {
			queryMods = append(queryMods, sm.OrderBy(psql.Quote(o.Column)).Desc())
		} else {
			queryMods = append(queryMods, sm.OrderBy(psql.Quote(o.Column)).Asc())
		}
	}
	// id breaks ties so pages are stable.
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("id")).Asc())

	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[R]())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.mapping.Table, err)
	}

	result := make([]T, len(rows))
	for i, row := range rows {
		result[i] = t.mapping.ToRecord(row)
	}
	return result, nil
}

func (t *Table[T, R]) Insert(ctx context.Context, record T) (T, error) {
	values := t.mapping.Values(record)
	q := psql.Insert(
		im.Into(psql.Quote(t.mapping.Table), t.mapping.Columns...),
		im.Values(psql.Arg(values...)),
		im.Returning(t.mapping.selectColumns()...),
	)
	return t.one(ctx, q)
}

func (t *Table[T, R]) Update(ctx context.Context, record T) (T, error) {
	values := t.mapping.Values(record)

	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote(t.mapping.Table)),
	}
	for i, col := range t.mapping.Columns {
		queryMods = append(queryMods, um.SetCol(col).ToArg(values[i]))
	}
	queryMods = append(queryMods,
		um.SetCol("updated").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(t.mapping.RecordID(record)))),
		um.Returning(t.mapping.selectColumns()...),
	)
	return t.one(ctx, psql.Update(queryMods...))
}

func (t *Table[T, R]) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(psql.Quote(t.mapping.Table)),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning(psql.Quote("id")),
	)
	if _, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID]); err != nil {
		return notFound(t.mapping.Table, err)
	}
	return nil
}

func (t *Table[T, R]) one(ctx context.Context, q bob.Query) (T, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[R]())
	if err != nil {
		var zero T
		return zero, notFound(t.mapping.Table, err)
	}
	return t.mapping.ToRecord(row), nil
}

func notFound(table string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", table, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", table, err)
}

// JSONArg converts raw JSON into a query argument. lib/pq sends []byte as
// bytea, which jsonb columns reject, so the bytes go over as text.
func JSONArg(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

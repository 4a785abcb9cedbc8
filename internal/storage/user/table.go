package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
)

// Store manages owner rows. Deleting a user cascades to every owned record.
//
//go:generate mockery --name Store --output mock_Store.go
type Store interface {
	Ensure(ctx context.Context, id uuid.UUID) error
	// Lock holds the user row until the transaction ends, serialising
	// writes that check per-user uniqueness.
	Lock(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Table struct {
	exec bob.Executor
}

var _ Store = (*Table)(nil)

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// Ensure inserts the user row if it is missing.
func (t *Table) Ensure(ctx context.Context, id uuid.UUID) error {
	q := psql.RawQuery(`INSERT INTO users (id) VALUES (?) ON CONFLICT (id) DO NOTHING`, id)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return fmt.Errorf("users: ensure %s: %w", id, err)
	}
	return nil
}

func (t *Table) Lock(ctx context.Context, id uuid.UUID) error {
	q := psql.RawQuery(`SELECT id FROM users WHERE id = ? FOR UPDATE`, id)
	_, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("users: %w", sqlconfig.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("users: lock %s: %w", id, err)
	}
	return nil
}

func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.RawQuery(`DELETE FROM users WHERE id = ? RETURNING id`, id)
	_, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("users: %w", sqlconfig.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("users: delete %s: %w", id, err)
	}
	return nil
}

package sqlconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/carson-networks/budgettime-server/internal/schema"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"
)

// CatalogTable keeps collection definitions as JSONB rows in _collections.
type CatalogTable struct {
	exec bob.Executor
}

var _ schema.Catalog = (*CatalogTable)(nil)

func NewCatalogTable(exec bob.Executor) *CatalogTable {
	return &CatalogTable{exec: exec}
}

func (c *CatalogTable) FindByName(ctx context.Context, name string) (*schema.Collection, error) {
	q := psql.RawQuery(`SELECT definition FROM _collections WHERE name = ?`, name)
	raw, err := bob.One(ctx, c.exec, q, scan.SingleColumnMapper[[]byte])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, schema.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find collection %q: %w", name, err)
	}

	var collection schema.Collection
	if err := json.Unmarshal(raw, &collection); err != nil {
		return nil, fmt.Errorf("decode collection %q: %w", name, err)
	}
	return &collection, nil
}

func (c *CatalogTable) Save(ctx context.Context, collection *schema.Collection) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", collection.Name, err)
	}

	q := psql.RawQuery(`INSERT INTO _collections (id, name, definition) VALUES (?, ?, ?)
ON CONFLICT (name) DO UPDATE SET id = EXCLUDED.id, definition = EXCLUDED.definition, updated = now()`,
		collection.ID, collection.Name, string(raw))
	if _, err := bob.Exec(ctx, c.exec, q); err != nil {
		return fmt.Errorf("save collection %q: %w", collection.Name, err)
	}
	return nil
}

func (c *CatalogTable) Delete(ctx context.Context, name string) error {
	q := psql.RawQuery(`DELETE FROM _collections WHERE name = ? RETURNING name`, name)
	_, err := bob.One(ctx, c.exec, q, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return schema.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete collection %q: %w", name, err)
	}
	return nil
}

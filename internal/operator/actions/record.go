package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
)

// Hook runs inside the write transaction once a record has passed
// validation. before is nil on create.
type Hook[T ledger.Record] func(ctx context.Context, w *storage.Writer, before *T, after T) error

// Collection binds a record type to its table and its name in the access policy.
type Collection[T ledger.Record] struct {
	Name  string
	Table func(r *storage.Reader) sqlconfig.Store[T]
	Hook  Hook[T]
}

func (c *Collection[T]) runHook(ctx context.Context, w *storage.Writer, before *T, after T) error {
	if c.Hook == nil {
		return nil
	}
	return c.Hook(ctx, w, before, after)
}

// CreateRecord stores Record on behalf of Actor. Created holds the stored row
// once Perform succeeds.
type CreateRecord[T ledger.Record] struct {
	Actor      access.Actor
	Collection *Collection[T]
	Record     T
	Created    T

	IAction
}

func (c *CreateRecord[T]) Perform(ctx context.Context, writer *storage.Writer) error {
	owner := c.Record.Owner()
	if err := access.Check(c.Actor, c.Collection.Name, owner, access.OpCreate); err != nil {
		return err
	}
	if err := c.Record.Validate(); err != nil {
		return err
	}
	if err := writer.Users.Ensure(ctx, owner); err != nil {
		return err
	}
	if err := c.Collection.runHook(ctx, writer, nil, c.Record); err != nil {
		return err
	}

	created, err := c.Collection.Table(&writer.Reader).Insert(ctx, c.Record)
	if err != nil {
		return err
	}
	c.Created = created
	return nil
}

// UpdateRecord applies Patch to the record with ID. The actor must own the
// record both before and after the patch.
type UpdateRecord[T ledger.Record] struct {
	Actor      access.Actor
	Collection *Collection[T]
	ID         uuid.UUID
	Patch      func(T) T
	Updated    T

	IAction
}

func (u *UpdateRecord[T]) Perform(ctx context.Context, writer *storage.Writer) error {
	table := u.Collection.Table(&writer.Reader)

	existing, err := table.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if err := access.Check(u.Actor, u.Collection.Name, existing.Owner(), access.OpUpdate); err != nil {
		return err
	}

	next := u.Patch(existing)
	if next.RecordID() != existing.RecordID() {
		return ledger.Immutable("id")
	}
	if err := access.Check(u.Actor, u.Collection.Name, next.Owner(), access.OpUpdate); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if err := u.Collection.runHook(ctx, writer, &existing, next); err != nil {
		return err
	}

	updated, err := table.Update(ctx, next)
	if err != nil {
		return err
	}
	u.Updated = updated
	return nil
}

// DeleteRecord removes the record with ID.
type DeleteRecord[T ledger.Record] struct {
	Actor      access.Actor
	Collection *Collection[T]
	ID         uuid.UUID

	IAction
}

func (d *DeleteRecord[T]) Perform(ctx context.Context, writer *storage.Writer) error {
	table := d.Collection.Table(&writer.Reader)

	existing, err := table.FindByID(ctx, d.ID)
	if err != nil {
		return err
	}
	if err := access.Check(d.Actor, d.Collection.Name, existing.Owner(), access.OpDelete); err != nil {
		return err
	}
	return table.Delete(ctx, d.ID)
}

package actions

import (
	"context"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/storage"
)

// DeleteUser removes the actor's user row. Every owned record goes with it.
type DeleteUser struct {
	Actor access.Actor

	IAction
}

func (d *DeleteUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := access.Check(d.Actor, access.Users, d.Actor.ID, access.OpDelete); err != nil {
		return err
	}
	return writer.Users.Delete(ctx, d.Actor.ID)
}

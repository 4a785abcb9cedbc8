package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Record is implemented by every owned ledger entity.
type Record interface {
	RecordID() uuid.UUID
	Owner() uuid.UUID
	Validate() error
}

// Meta holds the fields the server assigns to every record.
type Meta struct {
	ID      uuid.UUID
	User    uuid.UUID
	Created time.Time
	Updated time.Time
}

func (m Meta) RecordID() uuid.UUID { return m.ID }

func (m Meta) Owner() uuid.UUID { return m.User }

func (m Meta) validateOwner() error {
	if m.User == uuid.Nil {
		return required("user")
	}
	return nil
}

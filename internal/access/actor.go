package access

import "github.com/gofrs/uuid/v5"

// ActorKind distinguishes interactive users from the ingestion pipeline.
type ActorKind string

const (
	ActorUser      ActorKind = "user"
	ActorIngestion ActorKind = "ingestion"
)

// Actor is the authenticated identity behind a request.
type Actor struct {
	ID   uuid.UUID
	Kind ActorKind
}

// User returns an end-user actor.
func User(id uuid.UUID) Actor {
	return Actor{ID: id, Kind: ActorUser}
}

// Ingestion returns the trusted ingestion actor.
func Ingestion(id uuid.UUID) Actor {
	return Actor{ID: id, Kind: ActorIngestion}
}

// IsUser reports whether the actor is an end user with a non-nil id.
func (a Actor) IsUser() bool {
	return a.Kind == ActorUser && a.ID != uuid.Nil
}

// IsIngestion reports whether the actor is the bank import identity.
func (a Actor) IsIngestion() bool {
	return a.Kind == ActorIngestion
}

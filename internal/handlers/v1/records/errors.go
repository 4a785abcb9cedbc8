package records

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/auth"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/schema"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// Error maps a service error onto an HTTP error. msg is used for failures
// the caller cannot fix.
func Error(err error, msg string) error {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, access.ErrForbidden):
		return huma.NewError(http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrNotFound), errors.Is(err, schema.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrConflict):
		return huma.NewError(http.StatusConflict, err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}

// Actor returns the authenticated caller.
func Actor(ctx context.Context) (access.Actor, error) {
	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		return access.Actor{}, huma.NewError(http.StatusUnauthorized, "missing credentials")
	}
	return actor, nil
}

// ParseID parses a path or body UUID.
func ParseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// ParseOptionalID parses a UUID that may be empty.
func ParseOptionalID(field, value string) (uuid.NullUUID, error) {
	if value == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := ParseID(field, value)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// OptionalID formats a weak reference, empty when unset.
func OptionalID(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}

package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/budgettime-server/internal/storage"
)

// ErrConflict is returned when a write would break a uniqueness rule.
var ErrConflict = errors.New("conflict")

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

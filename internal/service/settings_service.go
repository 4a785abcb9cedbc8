package service

import (
	"context"
	"errors"
	"time"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/operator/actions"
)

// DefaultFiscalDayStart applies to users without a settings row.
const DefaultFiscalDayStart = 1

// FiscalPeriod is the budgeting month containing a point in time.
type FiscalPeriod struct {
	FiscalDayStart int
	Start          time.Time
	End            time.Time
}

// SettingsService handles per-user settings. Each user has at most one row.
type SettingsService struct {
	*RecordService[ledger.Settings]
}

func NewSettingsService(store ReadStorage, processor Processor) *SettingsService {
	return &SettingsService{
		RecordService: NewRecordService(store, processor, actions.Settings),
	}
}

// Mine returns the actor's settings row, or ErrNotFound.
func (s *SettingsService) Mine(ctx context.Context, actor access.Actor) (ledger.Settings, error) {
	if err := access.Check(actor, access.Settings, actor.ID, access.OpView); err != nil {
		return ledger.Settings{}, err
	}
	return s.storage.Read().Settings.FindByUser(ctx, actor.ID)
}

// FiscalPeriod returns the actor's fiscal period containing at.
func (s *SettingsService) FiscalPeriod(ctx context.Context, actor access.Actor, at time.Time) (FiscalPeriod, error) {
	day := DefaultFiscalDayStart
	settings, err := s.Mine(ctx, actor)
	switch {
	case err == nil:
		day = settings.FiscalDayStart
	case !errors.Is(err, ErrNotFound):
		return FiscalPeriod{}, err
	}

	start, end := ledger.FiscalPeriod(day, at)
	return FiscalPeriod{FiscalDayStart: day, Start: start, End: end}, nil
}

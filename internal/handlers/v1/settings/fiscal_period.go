package settings

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// settingsService is the settings surface the handlers need.
type settingsService interface {
	records.RecordService[ledger.Settings]
	FiscalPeriod(ctx context.Context, actor access.Actor, at time.Time) (service.FiscalPeriod, error)
}

type FiscalPeriodInput struct {
	At string `query:"at" doc:"Point in time, RFC 3339; defaults to now"`
}

// FiscalPeriod is the API response model for a fiscal period.
type FiscalPeriod struct {
	FiscalDayStart int    `json:"fiscalDayStart"`
	Start          string `json:"start" doc:"Inclusive start"`
	End            string `json:"end" doc:"Exclusive end"`
}

type FiscalPeriodOutput struct {
	Body FiscalPeriod
}

// FiscalPeriodHandler handles GET /v1/settings/fiscal-period.
type FiscalPeriodHandler struct {
	SettingsService settingsService
	now             func() time.Time
}

func NewFiscalPeriodHandler(svc settingsService) *FiscalPeriodHandler {
	return &FiscalPeriodHandler{SettingsService: svc, now: time.Now}
}

// Register registers the fiscal period endpoint with the Huma API.
func (h *FiscalPeriodHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-fiscal-period",
		Method:      http.MethodGet,
		Path:        "/v1/settings/fiscal-period",
		Summary:     "Get fiscal period",
		Description: "Returns the caller's fiscal month containing the given time.",
		Tags:        []string{"Settings"},
	}, h.handle)
}

func (h *FiscalPeriodHandler) handle(ctx context.Context, input *FiscalPeriodInput) (*FiscalPeriodOutput, error) {
	actor, err := records.Actor(ctx)
	if err != nil {
		return nil, err
	}

	at := h.now().UTC()
	if input.At != "" {
		at, err = records.ParseTime("at", input.At)
		if err != nil {
			return nil, err
		}
	}

	period, err := h.SettingsService.FiscalPeriod(ctx, actor, at)
	if err != nil {
		return nil, records.Error(err, "failed to compute fiscal period")
	}

	return &FiscalPeriodOutput{Body: FiscalPeriod{
		FiscalDayStart: period.FiscalDayStart,
		Start:          records.FormatTime(period.Start),
		End:            records.FormatTime(period.End),
	}}, nil
}

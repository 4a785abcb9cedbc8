package settings

import (
	"encoding/json"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// Settings is the API response model for per-user settings.
type Settings struct {
	ID             string          `json:"id" doc:"Settings UUID"`
	User           string          `json:"user" doc:"Owner UUID"`
	FiscalDayStart int             `json:"fiscalDayStart" doc:"Day of month the fiscal period starts on"`
	ActiveParsers  json.RawMessage `json:"activeParsers,omitempty" doc:"Enabled bank statement parsers"`
	Created        string          `json:"created"`
	Updated        string          `json:"updated"`
}

type CreateSettingsBody struct {
	FiscalDayStart int             `json:"fiscalDayStart" minimum:"1" maximum:"31"`
	ActiveParsers  json.RawMessage `json:"activeParsers,omitempty"`
}

type UpdateSettingsBody struct {
	FiscalDayStart *int            `json:"fiscalDayStart,omitempty" minimum:"1" maximum:"31"`
	ActiveParsers  json.RawMessage `json:"activeParsers,omitempty" doc:"Replacement parser list, null clears it"`
}

func toSettings(s ledger.Settings) Settings {
	return Settings{
		ID:             s.ID.String(),
		User:           s.User.String(),
		FiscalDayStart: s.FiscalDayStart,
		ActiveParsers:  s.ActiveParsers,
		Created:        records.FormatTime(s.Created),
		Updated:        records.FormatTime(s.Updated),
	}
}

func fromUpdateBody(body UpdateSettingsBody) (service.Patch[ledger.Settings], error) {
	return service.SettingsPatch{
		FiscalDayStart: omit.FromPtr(body.FiscalDayStart),
		ActiveParsers:  records.OmitJSON(body.ActiveParsers),
	}, nil
}

// Register registers the settings endpoints with the Huma API.
func Register(api huma.API, svc settingsService) {
	NewFiscalPeriodHandler(svc).Register(api)

	(&records.Resource[ledger.Settings, CreateSettingsBody, UpdateSettingsBody, Settings]{
		Singular: "settings",
		Plural:   "settings-list",
		Path:     "/v1/settings",
		Tag:      "Settings",
		Service:  svc,
		FromBody: func(actor access.Actor, body CreateSettingsBody) (ledger.Settings, error) {
			return ledger.Settings{
				Meta:           ledger.Meta{User: actor.ID},
				FiscalDayStart: body.FiscalDayStart,
				ActiveParsers:  records.RawJSON(body.ActiveParsers),
			}, nil
		},
		FromPatch: fromUpdateBody,
		ToOutput:  toSettings,
	}).Register(api)
}

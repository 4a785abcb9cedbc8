// Package rawinbox exposes imported bank movements awaiting processing.
// Only the ingestion identity may create them; owners read, update and
// delete their own.
package rawinbox

import (
	"encoding/json"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// Item is the API response model for a raw inbox item.
type Item struct {
	ID          string          `json:"id" doc:"Item UUID"`
	User        string          `json:"user" doc:"Owner UUID"`
	Date        string          `json:"date"`
	Label       string          `json:"label"`
	Amount      string          `json:"amount" doc:"Decimal amount as imported"`
	IsProcessed bool            `json:"isProcessed"`
	RawPayload  string          `json:"rawPayload,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Created     string          `json:"created"`
	Updated     string          `json:"updated"`
}

type CreateItemBody struct {
	User       string          `json:"user" format:"uuid" doc:"Owner of the imported movement"`
	Date       string          `json:"date" format:"date-time"`
	Label      string          `json:"label" minLength:"1"`
	Amount     string          `json:"amount"`
	RawPayload string          `json:"rawPayload,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty" doc:"Free-form JSON from the importer"`
}

type UpdateItemBody struct {
	Label       *string         `json:"label,omitempty" minLength:"1"`
	IsProcessed *bool           `json:"isProcessed,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty" doc:"Replacement metadata, null clears it"`
}

func toItem(r ledger.RawInboxItem) Item {
	return Item{
		ID:          r.ID.String(),
		User:        r.User.String(),
		Date:        records.FormatTime(r.Date),
		Label:       r.Label,
		Amount:      r.Amount.String(),
		IsProcessed: r.IsProcessed,
		RawPayload:  r.RawPayload,
		Metadata:    r.Metadata,
		Created:     records.FormatTime(r.Created),
		Updated:     records.FormatTime(r.Updated),
	}
}

// fromCreateBody takes the owner from the body since the caller is the
// ingestion identity, not the owner.
func fromCreateBody(_ access.Actor, body CreateItemBody) (ledger.RawInboxItem, error) {
	user, err := records.ParseID("user", body.User)
	if err != nil {
		return ledger.RawInboxItem{}, err
	}
	date, err := records.ParseTime("date", body.Date)
	if err != nil {
		return ledger.RawInboxItem{}, err
	}
	amount, err := records.ParseDecimal("amount", body.Amount)
	if err != nil {
		return ledger.RawInboxItem{}, err
	}

	return ledger.RawInboxItem{
		Meta:       ledger.Meta{User: user},
		Date:       date,
		Label:      body.Label,
		Amount:     amount,
		RawPayload: body.RawPayload,
		Metadata:   records.RawJSON(body.Metadata),
	}, nil
}

func fromUpdateBody(body UpdateItemBody) (service.Patch[ledger.RawInboxItem], error) {
	return service.RawInboxPatch{
		Label:       omit.FromPtr(body.Label),
		IsProcessed: omit.FromPtr(body.IsProcessed),
		Metadata:    records.OmitJSON(body.Metadata),
	}, nil
}

// Register registers the raw inbox endpoints with the Huma API.
func Register(api huma.API, svc records.RecordService[ledger.RawInboxItem]) {
	(&records.Resource[ledger.RawInboxItem, CreateItemBody, UpdateItemBody, Item]{
		Singular:  "raw-inbox-item",
		Plural:    "raw-inbox-items",
		Path:      "/v1/raw-inbox",
		Tag:       "RawInbox",
		Service:   svc,
		FromBody:  fromCreateBody,
		FromPatch: fromUpdateBody,
		ToOutput:  toItem,
	}).Register(api)
}

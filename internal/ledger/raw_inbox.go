package ledger

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawInboxItem is a line captured by the ingestion pipeline, waiting to be
// turned into a transaction.
type RawInboxItem struct {
	Meta
	Date        time.Time
	Label       string
	Amount      decimal.Decimal
	IsProcessed bool
	RawPayload  string
	Metadata    json.RawMessage
}

func (r RawInboxItem) Validate() error {
	if err := r.validateOwner(); err != nil {
		return err
	}
	if r.Date.IsZero() {
		return required("date")
	}
	if strings.TrimSpace(r.Label) == "" {
		return required("label")
	}
	if r.Amount.IsZero() {
		return required("amount")
	}
	return validateJSON("metadata", r.Metadata)
}

func validateJSON(field string, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	if len(raw) > MaxJSONSize {
		return invalid(field, "must be at most %d bytes", MaxJSONSize)
	}
	if !json.Valid(raw) {
		return invalid(field, "must be valid JSON")
	}
	return nil
}

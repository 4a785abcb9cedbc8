package records

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ParseDecimal parses an amount sent as a string.
func ParseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return d, nil
}

// ParseTime parses an RFC 3339 timestamp.
func ParseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return t, nil
}

// FormatTime formats t as RFC 3339, empty for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// OmitDecimal parses an optional patch amount.
func OmitDecimal(field string, value *string) (omit.Val[decimal.Decimal], error) {
	if value == nil {
		return omit.Val[decimal.Decimal]{}, nil
	}
	d, err := ParseDecimal(field, *value)
	if err != nil {
		return omit.Val[decimal.Decimal]{}, err
	}
	return omit.From(d), nil
}

// OmitTime parses an optional patch timestamp.
func OmitTime(field string, value *string) (omit.Val[time.Time], error) {
	if value == nil {
		return omit.Val[time.Time]{}, nil
	}
	t, err := ParseTime(field, *value)
	if err != nil {
		return omit.Val[time.Time]{}, err
	}
	return omit.From(t), nil
}

// OmitAs converts an optional patch value to a named type.
func OmitAs[T ~string](value *string) omit.Val[T] {
	if value == nil {
		return omit.Val[T]{}
	}
	return omit.From(T(*value))
}

// OmitID parses an optional patch reference. An empty string clears it.
func OmitID(field string, value *string) (omit.Val[uuid.UUID], error) {
	if value == nil {
		return omit.Val[uuid.UUID]{}, nil
	}
	if *value == "" {
		return omit.From(uuid.Nil), nil
	}
	id, err := ParseID(field, *value)
	if err != nil {
		return omit.Val[uuid.UUID]{}, err
	}
	return omit.From(id), nil
}

// RawJSON keeps a free-form JSON body field byte for byte, nil when it is
// absent or null.
func RawJSON(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

// OmitJSON converts an optional patch JSON field. Absent leaves the stored
// value alone and null clears it.
func OmitJSON(raw json.RawMessage) omit.Val[json.RawMessage] {
	if len(raw) == 0 {
		return omit.Val[json.RawMessage]{}
	}
	return omit.From(RawJSON(raw))
}

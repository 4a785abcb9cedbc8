package recurrence

import (
	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// Recurrence is the API response model for a recurring transaction template.
type Recurrence struct {
	ID            string `json:"id" doc:"Recurrence UUID"`
	User          string `json:"user" doc:"Owner UUID"`
	Amount        string `json:"amount" doc:"Decimal amount"`
	Label         string `json:"label"`
	Type          string `json:"type" doc:"income, expense or transfer"`
	Frequency     string `json:"frequency"`
	DayOfMonth    *int   `json:"dayOfMonth,omitempty" doc:"Day of month for month based frequencies"`
	NextDueDate   string `json:"nextDueDate"`
	Active        bool   `json:"active"`
	Account       string `json:"account" doc:"Account UUID"`
	TargetAccount string `json:"targetAccount,omitempty" doc:"Destination account UUID for transfers"`
	Created       string `json:"created"`
	Updated       string `json:"updated"`
}

type CreateRecurrenceBody struct {
	Amount        string `json:"amount" doc:"Decimal amount, e.g. '950.00'"`
	Label         string `json:"label" minLength:"1"`
	Type          string `json:"type" enum:"income,expense,transfer"`
	Frequency     string `json:"frequency" enum:"daily,weekly,biweekly,monthly,bimonthly,yearly"`
	DayOfMonth    *int   `json:"dayOfMonth,omitempty" minimum:"1" maximum:"31"`
	NextDueDate   string `json:"nextDueDate" format:"date-time"`
	Active        bool   `json:"active,omitempty"`
	Account       string `json:"account" format:"uuid"`
	TargetAccount string `json:"targetAccount,omitempty" doc:"Required for transfers"`
}

type UpdateRecurrenceBody struct {
	Amount        *string `json:"amount,omitempty"`
	Label         *string `json:"label,omitempty" minLength:"1"`
	Type          *string `json:"type,omitempty" enum:"income,expense,transfer"`
	Frequency     *string `json:"frequency,omitempty" enum:"daily,weekly,biweekly,monthly,bimonthly,yearly"`
	DayOfMonth    *int    `json:"dayOfMonth,omitempty" minimum:"1" maximum:"31"`
	NoDayOfMonth  bool    `json:"noDayOfMonth,omitempty" doc:"Clears dayOfMonth"`
	NextDueDate   *string `json:"nextDueDate,omitempty" format:"date-time"`
	Active        *bool   `json:"active,omitempty"`
	Account       *string `json:"account,omitempty" format:"uuid"`
	TargetAccount *string `json:"targetAccount,omitempty" doc:"Empty string clears it"`
}

func toRecurrence(r ledger.Recurrence) Recurrence {
	return Recurrence{
		ID:            r.ID.String(),
		User:          r.User.String(),
		Amount:        r.Amount.String(),
		Label:         r.Label,
		Type:          string(r.Type),
		Frequency:     string(r.Frequency),
		DayOfMonth:    r.DayOfMonth,
		NextDueDate:   records.FormatTime(r.NextDueDate),
		Active:        r.Active,
		Account:       r.Account.String(),
		TargetAccount: records.OptionalID(r.TargetAccount),
		Created:       records.FormatTime(r.Created),
		Updated:       records.FormatTime(r.Updated),
	}
}

func fromCreateBody(actor access.Actor, body CreateRecurrenceBody) (ledger.Recurrence, error) {
	amount, err := records.ParseDecimal("amount", body.Amount)
	if err != nil {
		return ledger.Recurrence{}, err
	}
	due, err := records.ParseTime("nextDueDate", body.NextDueDate)
	if err != nil {
		return ledger.Recurrence{}, err
	}
	account, err := records.ParseID("account", body.Account)
	if err != nil {
		return ledger.Recurrence{}, err
	}
	target, err := records.ParseOptionalID("targetAccount", body.TargetAccount)
	if err != nil {
		return ledger.Recurrence{}, err
	}

	return ledger.Recurrence{
		Meta:          ledger.Meta{User: actor.ID},
		Amount:        amount,
		Label:         body.Label,
		Type:          ledger.EntryType(body.Type),
		Frequency:     ledger.Frequency(body.Frequency),
		DayOfMonth:    body.DayOfMonth,
		NextDueDate:   due,
		Active:        body.Active,
		Account:       account,
		TargetAccount: target,
	}, nil
}

func fromUpdateBody(body UpdateRecurrenceBody) (service.Patch[ledger.Recurrence], error) {
	var day omitnull.Val[int]
	switch {
	case body.NoDayOfMonth && body.DayOfMonth != nil:
		return nil, huma.Error400BadRequest("dayOfMonth and noDayOfMonth are exclusive")
	case body.NoDayOfMonth:
		day.Null()
	case body.DayOfMonth != nil:
		day.Set(*body.DayOfMonth)
	}
	amount, err := records.OmitDecimal("amount", body.Amount)
	if err != nil {
		return nil, err
	}
	due, err := records.OmitTime("nextDueDate", body.NextDueDate)
	if err != nil {
		return nil, err
	}
	account, err := records.OmitID("account", body.Account)
	if err != nil {
		return nil, err
	}
	target, err := records.OmitID("targetAccount", body.TargetAccount)
	if err != nil {
		return nil, err
	}

	return service.RecurrencePatch{
		Amount:        amount,
		Label:         omit.FromPtr(body.Label),
		Type:          records.OmitAs[ledger.EntryType](body.Type),
		Frequency:     records.OmitAs[ledger.Frequency](body.Frequency),
		DayOfMonth:    day,
		NextDueDate:   due,
		Active:        omit.FromPtr(body.Active),
		Account:       account,
		TargetAccount: target,
	}, nil
}

// Register registers the recurrence endpoints with the Huma API.
func Register(api huma.API, svc records.RecordService[ledger.Recurrence]) {
	(&records.Resource[ledger.Recurrence, CreateRecurrenceBody, UpdateRecurrenceBody, Recurrence]{
		Singular:  "recurrence",
		Plural:    "recurrences",
		Path:      "/v1/recurrences",
		Tag:       "Recurrences",
		Service:   svc,
		FromBody:  fromCreateBody,
		FromPatch: fromUpdateBody,
		ToOutput:  toRecurrence,
	}).Register(api)
}

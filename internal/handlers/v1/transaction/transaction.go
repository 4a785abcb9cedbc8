package transaction

import (
	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID            string `json:"id" doc:"Transaction UUID"`
	User          string `json:"user" doc:"Owner UUID"`
	Amount        string `json:"amount" doc:"Decimal amount"`
	Label         string `json:"label"`
	Type          string `json:"type" doc:"income, expense or transfer"`
	Date          string `json:"date"`
	Status        string `json:"status" doc:"projected or effective"`
	IsAutomatic   bool   `json:"isAutomatic" doc:"Generated from a recurrence"`
	Account       string `json:"account" doc:"Account UUID"`
	Category      string `json:"category,omitempty" doc:"Free text category name"`
	Recurrence    string `json:"recurrence,omitempty" doc:"Recurrence UUID, may no longer exist"`
	Member        string `json:"member,omitempty" doc:"Member UUID, may no longer exist"`
	TargetAccount string `json:"targetAccount,omitempty" doc:"Destination account UUID for transfers"`
	Created       string `json:"created"`
	Updated       string `json:"updated"`
}

type CreateTransactionBody struct {
	Amount        string `json:"amount" doc:"Decimal amount, e.g. '12.50'"`
	Label         string `json:"label" minLength:"1"`
	Type          string `json:"type" enum:"income,expense,transfer"`
	Date          string `json:"date" format:"date-time"`
	Status        string `json:"status" enum:"projected,effective"`
	IsAutomatic   bool   `json:"isAutomatic,omitempty"`
	Account       string `json:"account" format:"uuid"`
	Category      string `json:"category,omitempty"`
	Recurrence    string `json:"recurrence,omitempty"`
	Member        string `json:"member,omitempty"`
	TargetAccount string `json:"targetAccount,omitempty" doc:"Required for transfers"`
}

type UpdateTransactionBody struct {
	Amount        *string `json:"amount,omitempty"`
	Label         *string `json:"label,omitempty" minLength:"1"`
	Type          *string `json:"type,omitempty" enum:"income,expense,transfer"`
	Date          *string `json:"date,omitempty" format:"date-time"`
	Status        *string `json:"status,omitempty" enum:"projected,effective"`
	IsAutomatic   *bool   `json:"isAutomatic,omitempty"`
	Account       *string `json:"account,omitempty" format:"uuid"`
	Category      *string `json:"category,omitempty"`
	Recurrence    *string `json:"recurrence,omitempty" doc:"Empty string clears it"`
	Member        *string `json:"member,omitempty" doc:"Empty string clears it"`
	TargetAccount *string `json:"targetAccount,omitempty" doc:"Empty string clears it"`
}

func toTransaction(t ledger.Transaction) Transaction {
	return Transaction{
		ID:            t.ID.String(),
		User:          t.User.String(),
		Amount:        t.Amount.String(),
		Label:         t.Label,
		Type:          string(t.Type),
		Date:          records.FormatTime(t.Date),
		Status:        string(t.Status),
		IsAutomatic:   t.IsAutomatic,
		Account:       t.Account.String(),
		Category:      t.Category,
		Recurrence:    records.OptionalID(t.Recurrence),
		Member:        records.OptionalID(t.Member),
		TargetAccount: records.OptionalID(t.TargetAccount),
		Created:       records.FormatTime(t.Created),
		Updated:       records.FormatTime(t.Updated),
	}
}

func fromCreateBody(actor access.Actor, body CreateTransactionBody) (ledger.Transaction, error) {
	amount, err := records.ParseDecimal("amount", body.Amount)
	if err != nil {
		return ledger.Transaction{}, err
	}
	date, err := records.ParseTime("date", body.Date)
	if err != nil {
		return ledger.Transaction{}, err
	}
	account, err := records.ParseID("account", body.Account)
	if err != nil {
		return ledger.Transaction{}, err
	}
	recurrence, err := records.ParseOptionalID("recurrence", body.Recurrence)
	if err != nil {
		return ledger.Transaction{}, err
	}
	member, err := records.ParseOptionalID("member", body.Member)
	if err != nil {
		return ledger.Transaction{}, err
	}
	target, err := records.ParseOptionalID("targetAccount", body.TargetAccount)
	if err != nil {
		return ledger.Transaction{}, err
	}

	return ledger.Transaction{
		Meta:          ledger.Meta{User: actor.ID},
		Amount:        amount,
		Label:         body.Label,
		Type:          ledger.EntryType(body.Type),
		Date:          date,
		Status:        ledger.Status(body.Status),
		IsAutomatic:   body.IsAutomatic,
		Account:       account,
		Category:      body.Category,
		Recurrence:    recurrence,
		Member:        member,
		TargetAccount: target,
	}, nil
}

func fromUpdateBody(body UpdateTransactionBody) (service.Patch[ledger.Transaction], error) {
	amount, err := records.OmitDecimal("amount", body.Amount)
	if err != nil {
		return nil, err
	}
	date, err := records.OmitTime("date", body.Date)
	if err != nil {
		return nil, err
	}
	account, err := records.OmitID("account", body.Account)
	if err != nil {
		return nil, err
	}
	recurrence, err := records.OmitID("recurrence", body.Recurrence)
	if err != nil {
		return nil, err
	}
	member, err := records.OmitID("member", body.Member)
	if err != nil {
		return nil, err
	}
	target, err := records.OmitID("targetAccount", body.TargetAccount)
	if err != nil {
		return nil, err
	}

	return service.TransactionPatch{
		Amount:        amount,
		Label:         omit.FromPtr(body.Label),
		Type:          records.OmitAs[ledger.EntryType](body.Type),
		Date:          date,
		Status:        records.OmitAs[ledger.Status](body.Status),
		IsAutomatic:   omit.FromPtr(body.IsAutomatic),
		Account:       account,
		Category:      omit.FromPtr(body.Category),
		Recurrence:    recurrence,
		Member:        member,
		TargetAccount: target,
	}, nil
}

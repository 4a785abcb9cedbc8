package service

import (
	"encoding/json"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budgettime-server/internal/ledger"
)

// Patches hold one omit.Val per editable field. Unset values leave the
// stored field untouched. Owner, id and timestamps are never patchable.

type AccountPatch struct {
	Name           omit.Val[string]
	Type           omit.Val[ledger.AccountType]
	InitialBalance omit.Val[decimal.Decimal]
}

func (p AccountPatch) Apply(a ledger.Account) ledger.Account {
	set(&a.Name, p.Name)
	set(&a.Type, p.Type)
	if v, ok := p.InitialBalance.Get(); ok {
		a.InitialBalance = decimal.NewNullDecimal(v)
	}
	return a
}

type MemberPatch struct {
	Name omit.Val[string]
	Icon omit.Val[string]
}

func (p MemberPatch) Apply(m ledger.Member) ledger.Member {
	set(&m.Name, p.Name)
	set(&m.Icon, p.Icon)
	return m
}

type CategoryPatch struct {
	Name          omit.Val[string]
	IconCodePoint omit.Val[int]
	ColorHex      omit.Val[string]
	IsSystem      omit.Val[bool]
}

func (p CategoryPatch) Apply(c ledger.Category) ledger.Category {
	set(&c.Name, p.Name)
	set(&c.IconCodePoint, p.IconCodePoint)
	set(&c.ColorHex, p.ColorHex)
	set(&c.IsSystem, p.IsSystem)
	return c
}

type RecurrencePatch struct {
	Amount        omit.Val[decimal.Decimal]
	Label         omit.Val[string]
	Type          omit.Val[ledger.EntryType]
	Frequency     omit.Val[ledger.Frequency]
	DayOfMonth    omitnull.Val[int]
	NextDueDate   omit.Val[time.Time]
	Active        omit.Val[bool]
	Account       omit.Val[uuid.UUID]
	TargetAccount omit.Val[uuid.UUID]
}

func (p RecurrencePatch) Apply(r ledger.Recurrence) ledger.Recurrence {
	set(&r.Amount, p.Amount)
	set(&r.Label, p.Label)
	set(&r.Type, p.Type)
	set(&r.Frequency, p.Frequency)
	if !p.DayOfMonth.IsUnset() {
		r.DayOfMonth = p.DayOfMonth.MustPtr()
	}
	set(&r.NextDueDate, p.NextDueDate)
	set(&r.Active, p.Active)
	set(&r.Account, p.Account)
	setRef(&r.TargetAccount, p.TargetAccount)
	return r
}

type TransactionPatch struct {
	Amount        omit.Val[decimal.Decimal]
	Label         omit.Val[string]
	Type          omit.Val[ledger.EntryType]
	Date          omit.Val[time.Time]
	Status        omit.Val[ledger.Status]
	IsAutomatic   omit.Val[bool]
	Account       omit.Val[uuid.UUID]
	Category      omit.Val[string]
	Recurrence    omit.Val[uuid.UUID]
	Member        omit.Val[uuid.UUID]
	TargetAccount omit.Val[uuid.UUID]
}

func (p TransactionPatch) Apply(t ledger.Transaction) ledger.Transaction {
	set(&t.Amount, p.Amount)
	set(&t.Label, p.Label)
	set(&t.Type, p.Type)
	set(&t.Date, p.Date)
	set(&t.Status, p.Status)
	set(&t.IsAutomatic, p.IsAutomatic)
	set(&t.Account, p.Account)
	set(&t.Category, p.Category)
	setRef(&t.Recurrence, p.Recurrence)
	setRef(&t.Member, p.Member)
	setRef(&t.TargetAccount, p.TargetAccount)
	return t
}

type RawInboxPatch struct {
	Label       omit.Val[string]
	IsProcessed omit.Val[bool]
	Metadata    omit.Val[json.RawMessage]
}

func (p RawInboxPatch) Apply(r ledger.RawInboxItem) ledger.RawInboxItem {
	set(&r.Label, p.Label)
	set(&r.IsProcessed, p.IsProcessed)
	set(&r.Metadata, p.Metadata)
	return r
}

type SettingsPatch struct {
	FiscalDayStart omit.Val[int]
	ActiveParsers  omit.Val[json.RawMessage]
}

func (p SettingsPatch) Apply(s ledger.Settings) ledger.Settings {
	set(&s.FiscalDayStart, p.FiscalDayStart)
	set(&s.ActiveParsers, p.ActiveParsers)
	return s
}

func set[T any](dst *T, v omit.Val[T]) {
	if x, ok := v.Get(); ok {
		*dst = x
	}
}

// setRef sets a weak reference. uuid.Nil clears it.
func setRef(dst *uuid.NullUUID, v omit.Val[uuid.UUID]) {
	id, ok := v.Get()
	if !ok {
		return
	}
	*dst = uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
)

func makeAccounts(n int, owner uuid.UUID) []ledger.Account {
	rows := make([]ledger.Account, n)
	for i := range rows {
		rows[i] = ledger.Account{
			Meta: ledger.Meta{ID: newID(), User: owner, Created: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			Name: "Checking",
			Type: ledger.AccountTypeChecking,
		}
	}
	return rows
}

// -- Create --

func TestCreateAccount_Success(t *testing.T) {
	svc, tables, processor := newTestService(t)
	user := newID()
	input := ledger.Account{Meta: ledger.Meta{User: user}, Name: "Checking", Type: ledger.AccountTypeChecking}
	stored := input
	stored.ID = newID()

	tables.Users.On("Ensure", mock.Anything, user).Return(nil)
	tables.Accounts.On("Insert", mock.Anything, input).Return(stored, nil)

	got, err := svc.Accounts.Create(context.Background(), access.User(user), input)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.True(t, processor.tx.Committed)
}

func TestCreateAccount_StorageErrorRollsBack(t *testing.T) {
	svc, tables, processor := newTestService(t)
	user := newID()
	input := ledger.Account{Meta: ledger.Meta{User: user}, Name: "Checking", Type: ledger.AccountTypeSavings}

	tables.Users.On("Ensure", mock.Anything, user).Return(nil)
	tables.Accounts.On("Insert", mock.Anything, input).Return(ledger.Account{}, errors.New("insert failed"))

	_, err := svc.Accounts.Create(context.Background(), access.User(user), input)

	assert.EqualError(t, err, "insert failed")
	assert.True(t, processor.tx.RolledBack)
	assert.False(t, processor.tx.Committed)
}

// -- Get --

func TestGetAccount_Owner(t *testing.T) {
	svc, tables, _ := newTestService(t)
	user := newID()
	acct := makeAccounts(1, user)[0]
	tables.Accounts.On("FindByID", mock.Anything, acct.ID).Return(acct, nil)

	got, err := svc.Accounts.Get(context.Background(), access.User(user), acct.ID)

	require.NoError(t, err)
	assert.Equal(t, acct, got)
}

func TestGetAccount_Stranger(t *testing.T) {
	svc, tables, _ := newTestService(t)
	acct := makeAccounts(1, newID())[0]
	tables.Accounts.On("FindByID", mock.Anything, acct.ID).Return(acct, nil)

	_, err := svc.Accounts.Get(context.Background(), access.User(newID()), acct.ID)

	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestGetAccount_NotFound(t *testing.T) {
	svc, tables, _ := newTestService(t)
	id := newID()
	tables.Accounts.On("FindByID", mock.Anything, id).Return(ledger.Account{}, ErrNotFound)

	_, err := svc.Accounts.Get(context.Background(), access.User(newID()), id)

	assert.ErrorIs(t, err, ErrNotFound)
}

// -- List --

func TestListAccounts_NoResults(t *testing.T) {
	svc, tables, _ := newTestService(t)
	tables.Accounts.On("List", mock.Anything, mock.Anything).Return([]ledger.Account{}, nil)

	rows, next, err := svc.Accounts.List(context.Background(), access.User(newID()), ListQuery{})

	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.Nil(t, next)
}

func TestListAccounts_ScopedToActor(t *testing.T) {
	svc, tables, _ := newTestService(t)
	user := newID()
	tables.Accounts.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.Filter) bool {
		return f.UserID == user && f.Limit == DefaultLimit+1 && f.Offset == 0
	})).Return(makeAccounts(3, user), nil)

	rows, next, err := svc.Accounts.List(context.Background(), access.User(user), ListQuery{})

	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Nil(t, next)
}

func TestListAccounts_HasNextPage(t *testing.T) {
	svc, tables, _ := newTestService(t)
	user := newID()
	tables.Accounts.On("List", mock.Anything, mock.Anything).Return(makeAccounts(3, user), nil)

	rows, next, err := svc.Accounts.List(context.Background(), access.User(user), ListQuery{Cursor: &Cursor{Position: 4, Limit: 2}})

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	require.NotNil(t, next)
	assert.Equal(t, 6, next.Position)
	assert.Equal(t, 2, next.Limit)
}

func TestListAccounts_LimitCapped(t *testing.T) {
	svc, tables, _ := newTestService(t)
	tables.Accounts.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.Filter) bool {
		return f.Limit == MaxLimit+1
	})).Return(nil, nil)

	_, _, err := svc.Accounts.List(context.Background(), access.User(newID()), ListQuery{Cursor: &Cursor{Limit: 5000}})

	assert.NoError(t, err)
}

func TestListAccounts_IngestionDenied(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Accounts.List(context.Background(), access.Ingestion(newID()), ListQuery{})

	assert.ErrorIs(t, err, access.ErrForbidden)
}

// -- Update --

func TestUpdateAccount_PatchOnlySetFields(t *testing.T) {
	svc, tables, _ := newTestService(t)
	user := newID()
	acct := makeAccounts(1, user)[0]
	want := acct
	want.InitialBalance = decimal.NewNullDecimal(decimal.RequireFromString("250"))

	tables.Accounts.On("FindByID", mock.Anything, acct.ID).Return(acct, nil)
	tables.Accounts.On("Update", mock.Anything, mock.MatchedBy(func(a ledger.Account) bool {
		return a.Name == "Checking" && a.InitialBalance.Valid && a.InitialBalance.Decimal.Equal(decimal.RequireFromString("250"))
	})).Return(want, nil)

	got, err := svc.Accounts.Update(context.Background(), access.User(user), acct.ID, AccountPatch{
		InitialBalance: omit.From(decimal.RequireFromString("250")),
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// -- Balance --

func TestAccountBalance(t *testing.T) {
	svc, tables, _ := newTestService(t)
	user := newID()
	acct := makeAccounts(1, user)[0]
	acct.InitialBalance = decimal.NewNullDecimal(decimal.RequireFromString("100"))

	tables.Accounts.On("FindByID", mock.Anything, acct.ID).Return(acct, nil)
	tables.Transactions.On("Legs", mock.Anything, user, acct.ID).Return([]ledger.Leg{
		{Status: ledger.StatusEffective, Type: ledger.EntryTypeIncome, Total: decimal.RequireFromString("50")},
		{Status: ledger.StatusEffective, Type: ledger.EntryTypeExpense, Total: decimal.RequireFromString("30")},
		{Status: ledger.StatusProjected, Type: ledger.EntryTypeExpense, Total: decimal.RequireFromString("20")},
	}, nil)

	balance, err := svc.Accounts.Balance(context.Background(), access.User(user), acct.ID)

	require.NoError(t, err)
	assert.True(t, balance.Effective.Equal(decimal.RequireFromString("120")), balance.Effective.String())
	assert.True(t, balance.Projected.Equal(decimal.RequireFromString("100")), balance.Projected.String())
}

func TestAccountBalance_Stranger(t *testing.T) {
	svc, tables, _ := newTestService(t)
	acct := makeAccounts(1, newID())[0]
	tables.Accounts.On("FindByID", mock.Anything, acct.ID).Return(acct, nil)

	_, err := svc.Accounts.Balance(context.Background(), access.User(newID()), acct.ID)

	assert.ErrorIs(t, err, access.ErrForbidden)
}

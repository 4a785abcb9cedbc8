package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
)

func makeTransactions(n int, owner, account uuid.UUID) []ledger.Transaction {
	rows := make([]ledger.Transaction, n)
	for i := range rows {
		rows[i] = ledger.Transaction{
			Meta:    ledger.Meta{ID: newID(), User: owner},
			Amount:  decimal.RequireFromString("42.50"),
			Label:   "Groceries",
			Type:    ledger.EntryTypeExpense,
			Date:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Status:  ledger.StatusEffective,
			Account: account,
		}
	}
	return rows
}

func TestListTransactions_Filters(t *testing.T) {
	svc, tables, _ := newTestService(t)
	user, account := newID(), newID()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	tables.Transactions.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.Filter) bool {
		return f.UserID == user &&
			f.Equal["account_id"] == account &&
			f.Equal["status"] == "projected" &&
			f.Range != nil && f.Range.Column == "date" &&
			f.Range.From.Equal(from) && f.Range.To.Equal(to)
	})).Return(makeTransactions(2, user, account), nil)

	rows, next, err := svc.Transactions.ListTransactions(context.Background(), access.User(user), TransactionFilter{
		Account: account,
		Status:  ledger.StatusProjected,
		From:    &from,
		To:      &to,
	}, nil)

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Nil(t, next)
}

func TestListTransactions_NoFilters(t *testing.T) {
	svc, tables, _ := newTestService(t)
	user := newID()

	tables.Transactions.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.Filter) bool {
		return f.Equal == nil && f.Range == nil
	})).Return(nil, nil)

	rows, next, err := svc.Transactions.ListTransactions(context.Background(), access.User(user), TransactionFilter{}, nil)

	assert.NoError(t, err)
	assert.Nil(t, rows)
	assert.Nil(t, next)
}

func TestListTransactions_BadStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Transactions.ListTransactions(context.Background(), access.User(newID()), TransactionFilter{Status: "pending"}, nil)

	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestCreateTransaction_TransferNeedsTarget(t *testing.T) {
	svc, _, processor := newTestService(t)
	user := newID()
	tx := makeTransactions(1, user, newID())[0]
	tx.ID = uuid.Nil
	tx.Type = ledger.EntryTypeTransfer

	_, err := svc.Transactions.Create(context.Background(), access.User(user), tx)

	assert.ErrorIs(t, err, ledger.ErrValidation)
	assert.True(t, processor.tx.RolledBack)
}

func TestDeleteTransaction(t *testing.T) {
	svc, tables, _ := newTestService(t)
	user := newID()
	tx := makeTransactions(1, user, newID())[0]

	tables.Transactions.On("FindByID", mock.Anything, tx.ID).Return(tx, nil)
	tables.Transactions.On("Delete", mock.Anything, tx.ID).Return(nil)

	assert.NoError(t, svc.Transactions.Delete(context.Background(), access.User(user), tx.ID))
}

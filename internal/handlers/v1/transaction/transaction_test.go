package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/auth"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records/recordstest"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

type mockTransactionService struct {
	recordstest.Service[ledger.Transaction]
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, actor access.Actor, filter service.TransactionFilter, cursor *service.Cursor) ([]ledger.Transaction, *service.Cursor, error) {
	args := m.Called(ctx, actor, filter, cursor)
	rows, _ := args.Get(0).([]ledger.Transaction)
	next, _ := args.Get(1).(*service.Cursor)
	return rows, next, args.Error(2)
}

func newTestAPI(t *testing.T) (humatest.TestAPI, *auth.Tokens, *mockTransactionService) {
	t.Helper()
	api, tokens := recordstest.NewAPI(t)
	svc := &mockTransactionService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })
	Register(api, svc)
	return api, tokens, svc
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func storedTransaction(owner, account uuid.UUID) ledger.Transaction {
	return ledger.Transaction{
		Meta: ledger.Meta{
			ID:      newID(),
			User:    owner,
			Created: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
			Updated: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		},
		Amount:  decimal.RequireFromString("42.10"),
		Label:   "Groceries",
		Type:    ledger.EntryTypeExpense,
		Date:    time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		Status:  ledger.StatusEffective,
		Account: account,
	}
}

func TestHTTP_CreateTransfer(t *testing.T) {
	api, tokens, svc := newTestAPI(t)
	user, account, target := newID(), newID(), newID()
	stored := storedTransaction(user, account)
	stored.Type = ledger.EntryTypeTransfer
	stored.TargetAccount = uuid.NullUUID{UUID: target, Valid: true}

	svc.On("Create", mock.Anything, access.User(user), mock.MatchedBy(func(tx ledger.Transaction) bool {
		return tx.User == user &&
			tx.Account == account &&
			tx.TargetAccount.Valid && tx.TargetAccount.UUID == target &&
			!tx.Member.Valid &&
			tx.Amount.Equal(decimal.RequireFromString("42.10"))
	})).Return(stored, nil)

	resp := api.Post("/v1/transactions", recordstest.Bearer(t, tokens, access.User(user)), CreateTransactionBody{
		Amount:        "42.10",
		Label:         "Groceries",
		Type:          "transfer",
		Date:          "2024-05-03T00:00:00Z",
		Status:        "effective",
		Account:       account.String(),
		TargetAccount: target.String(),
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, target.String(), body.TargetAccount)
	assert.Empty(t, body.Member)
}

func TestHTTP_CreateTransaction_BadReference(t *testing.T) {
	api, tokens, _ := newTestAPI(t)

	resp := api.Post("/v1/transactions", recordstest.Bearer(t, tokens, access.User(newID())), CreateTransactionBody{
		Amount:  "1",
		Label:   "Coffee",
		Type:    "expense",
		Date:    "2024-05-03T00:00:00Z",
		Status:  "effective",
		Account: newID().String(),
		Member:  "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListTransactions_Filters(t *testing.T) {
	api, tokens, svc := newTestAPI(t)
	user, account := newID(), newID()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	svc.On("ListTransactions", mock.Anything, access.User(user), mock.MatchedBy(func(f service.TransactionFilter) bool {
		return f.Account == account &&
			f.Status == ledger.StatusProjected &&
			f.From != nil && f.From.Equal(from) &&
			f.To != nil && f.To.Equal(to)
	}), (*service.Cursor)(nil)).Return([]ledger.Transaction{storedTransaction(user, account)}, (*service.Cursor)(nil), nil)

	resp := api.Get("/v1/transactions?account="+account.String()+
		"&status=projected&from=2024-05-01T00:00:00Z&to=2024-06-01T00:00:00Z",
		recordstest.Bearer(t, tokens, access.User(user)))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body struct {
		Items      []Transaction   `json:"items"`
		NextCursor json.RawMessage `json:"nextCursor"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Items, 1)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_ListTransactions_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "reversed range", query: "from=2024-06-01T00:00:00Z&to=2024-05-01T00:00:00Z"},
		{name: "empty range", query: "from=2024-06-01T00:00:00Z&to=2024-06-01T00:00:00Z"},
		{name: "bad from", query: "from=yesterday"},
		{name: "bad account", query: "account=checking"},
		{name: "bad status", query: "status=pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, tokens, _ := newTestAPI(t)

			resp := api.Get("/v1/transactions?"+tt.query, recordstest.Bearer(t, tokens, access.User(newID())))

			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestHTTP_UpdateTransaction_ClearMember(t *testing.T) {
	api, tokens, svc := newTestAPI(t)
	user := newID()
	stored := storedTransaction(user, newID())

	svc.On("Update", mock.Anything, access.User(user), stored.ID, mock.MatchedBy(func(p service.Patch[ledger.Transaction]) bool {
		patch, ok := p.(service.TransactionPatch)
		if !ok {
			return false
		}
		member, set := patch.Member.Get()
		return set && member == uuid.Nil && patch.Amount.IsUnset() && patch.Account.IsUnset()
	})).Return(stored, nil)

	resp := api.Patch("/v1/transactions/"+stored.ID.String(), recordstest.Bearer(t, tokens, access.User(user)), map[string]any{
		"member": "",
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

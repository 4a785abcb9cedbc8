package account

import (
	"context"
	"encoding/json"
	"fmt"
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

type mockAccountService struct {
	recordstest.Service[ledger.Account]
}

func (m *mockAccountService) Balance(ctx context.Context, actor access.Actor, id uuid.UUID) (ledger.AccountBalance, error) {
	args := m.Called(ctx, actor, id)
	balance, _ := args.Get(0).(ledger.AccountBalance)
	return balance, args.Error(1)
}

func newTestAPI(t *testing.T) (humatest.TestAPI, *auth.Tokens, *mockAccountService) {
	t.Helper()
	api, tokens := recordstest.NewAPI(t)
	svc := &mockAccountService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })
	Register(api, svc)
	return api, tokens, svc
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func storedAccount(owner uuid.UUID) ledger.Account {
	return ledger.Account{
		Meta: ledger.Meta{
			ID:      newID(),
			User:    owner,
			Created: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
			Updated: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		},
		Name:           "Checking",
		Type:           ledger.AccountTypeChecking,
		InitialBalance: decimal.NewNullDecimal(decimal.RequireFromString("100.25")),
	}
}

func TestHTTP_CreateAccount_Success(t *testing.T) {
	api, tokens, svc := newTestAPI(t)
	user := newID()
	stored := storedAccount(user)

	svc.On("Create", mock.Anything, access.User(user), mock.MatchedBy(func(a ledger.Account) bool {
		return a.User == user &&
			a.Name == "Checking" &&
			a.Type == ledger.AccountTypeChecking &&
			a.InitialBalance.Valid && a.InitialBalance.Decimal.Equal(decimal.RequireFromString("100.25"))
	})).Return(stored, nil)

	resp := api.Post("/v1/accounts", recordstest.Bearer(t, tokens, access.User(user)), CreateAccountBody{
		Name:           "Checking",
		Type:           "checking",
		InitialBalance: "100.25",
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, stored.ID.String(), body.ID)
	assert.Equal(t, "100.25", body.InitialBalance)
	assert.Equal(t, "2024-05-01T08:00:00Z", body.Created)
}

func TestHTTP_CreateAccount_InvalidBalance(t *testing.T) {
	api, tokens, _ := newTestAPI(t)

	resp := api.Post("/v1/accounts", recordstest.Bearer(t, tokens, access.User(newID())), CreateAccountBody{
		Name:           "Checking",
		Type:           "checking",
		InitialBalance: "lots",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateAccount_ValidationError(t *testing.T) {
	api, tokens, svc := newTestAPI(t)
	user := newID()
	svc.On("Create", mock.Anything, access.User(user), mock.Anything).
		Return(ledger.Account{}, ledger.Invalid("name", "cannot be blank"))

	resp := api.Post("/v1/accounts", recordstest.Bearer(t, tokens, access.User(user)), CreateAccountBody{
		Name: "  ",
		Type: "checking",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "name")
}

func TestHTTP_CreateAccount_Unauthenticated(t *testing.T) {
	api, _, _ := newTestAPI(t)

	resp := api.Post("/v1/accounts", CreateAccountBody{Name: "Checking", Type: "checking"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_GetAccount_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "forbidden", err: fmt.Errorf("%w: view accounts", access.ErrForbidden), want: http.StatusForbidden},
		{name: "not found", err: fmt.Errorf("accounts: %w", service.ErrNotFound), want: http.StatusNotFound},
		{name: "other", err: fmt.Errorf("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, tokens, svc := newTestAPI(t)
			user, id := newID(), newID()
			svc.On("Get", mock.Anything, access.User(user), id).Return(ledger.Account{}, tt.err)

			resp := api.Get("/v1/accounts/"+id.String(), recordstest.Bearer(t, tokens, access.User(user)))

			assert.Equal(t, tt.want, resp.Code)
		})
	}
}

func TestHTTP_ListAccounts_Paging(t *testing.T) {
	api, tokens, svc := newTestAPI(t)
	user := newID()
	rows := []ledger.Account{storedAccount(user), storedAccount(user)}

	svc.On("List", mock.Anything, access.User(user), service.ListQuery{Cursor: &service.Cursor{Position: 0, Limit: 2}}).
		Return(rows, &service.Cursor{Position: 2, Limit: 2}, nil)

	resp := api.Get("/v1/accounts?limit=2", recordstest.Bearer(t, tokens, access.User(user)))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body struct {
		Items      []Account `json:"items"`
		NextCursor *struct {
			Position int `json:"position"`
			Limit    int `json:"limit"`
		} `json:"nextCursor"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Items, 2)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 2, body.NextCursor.Position)
}

func TestHTTP_UpdateAccount_OnlyPresentFields(t *testing.T) {
	api, tokens, svc := newTestAPI(t)
	user := newID()
	stored := storedAccount(user)

	svc.On("Update", mock.Anything, access.User(user), stored.ID, mock.MatchedBy(func(p service.Patch[ledger.Account]) bool {
		patch, ok := p.(service.AccountPatch)
		return ok && patch.Name.IsSet() && patch.Type.IsUnset() && patch.InitialBalance.IsUnset()
	})).Return(stored, nil)

	resp := api.Patch("/v1/accounts/"+stored.ID.String(), recordstest.Bearer(t, tokens, access.User(user)), map[string]any{
		"name": "Checking",
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestHTTP_DeleteAccount(t *testing.T) {
	api, tokens, svc := newTestAPI(t)
	user, id := newID(), newID()
	svc.On("Delete", mock.Anything, access.User(user), id).Return(nil)

	resp := api.Delete("/v1/accounts/"+id.String(), recordstest.Bearer(t, tokens, access.User(user)))

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestHTTP_AccountBalance(t *testing.T) {
	api, tokens, svc := newTestAPI(t)
	user, id := newID(), newID()
	svc.On("Balance", mock.Anything, access.User(user), id).Return(ledger.AccountBalance{
		Account:   id,
		Effective: decimal.RequireFromString("120"),
		Projected: decimal.RequireFromString("100"),
	}, nil)

	resp := api.Get("/v1/accounts/"+id.String()+"/balance", recordstest.Bearer(t, tokens, access.User(user)))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body Balance
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "120", body.Effective)
	assert.Equal(t, "100", body.Projected)
}

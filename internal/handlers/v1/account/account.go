package account

import (
	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID             string `json:"id" doc:"Account UUID"`
	User           string `json:"user" doc:"Owner UUID"`
	Name           string `json:"name" doc:"Account name"`
	Type           string `json:"type" doc:"checking or savings"`
	InitialBalance string `json:"initialBalance,omitempty" doc:"Decimal opening balance"`
	Created        string `json:"created" doc:"Creation time"`
	Updated        string `json:"updated" doc:"Last update time"`
}

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name           string `json:"name" minLength:"1" doc:"Account name"`
	Type           string `json:"type" enum:"checking,savings" doc:"Account type"`
	InitialBalance string `json:"initialBalance,omitempty" doc:"Decimal opening balance, e.g. '1234.56'"`
}

// UpdateAccountBody is the request body for updating an account.
type UpdateAccountBody struct {
	Name           *string `json:"name,omitempty" minLength:"1" doc:"Account name"`
	Type           *string `json:"type,omitempty" enum:"checking,savings" doc:"Account type"`
	InitialBalance *string `json:"initialBalance,omitempty" doc:"Decimal opening balance"`
}

func toAccount(a ledger.Account) Account {
	out := Account{
		ID:      a.ID.String(),
		User:    a.User.String(),
		Name:    a.Name,
		Type:    string(a.Type),
		Created: records.FormatTime(a.Created),
		Updated: records.FormatTime(a.Updated),
	}
	if a.InitialBalance.Valid {
		out.InitialBalance = a.InitialBalance.Decimal.String()
	}
	return out
}

func fromCreateBody(actor access.Actor, body CreateAccountBody) (ledger.Account, error) {
	account := ledger.Account{
		Meta: ledger.Meta{User: actor.ID},
		Name: body.Name,
		Type: ledger.AccountType(body.Type),
	}
	if body.InitialBalance != "" {
		balance, err := records.ParseDecimal("initialBalance", body.InitialBalance)
		if err != nil {
			return ledger.Account{}, err
		}
		account.InitialBalance = decimal.NewNullDecimal(balance)
	}
	return account, nil
}

func fromUpdateBody(body UpdateAccountBody) (service.Patch[ledger.Account], error) {
	balance, err := records.OmitDecimal("initialBalance", body.InitialBalance)
	if err != nil {
		return nil, err
	}
	return service.AccountPatch{
		Name:           omit.FromPtr(body.Name),
		Type:           records.OmitAs[ledger.AccountType](body.Type),
		InitialBalance: balance,
	}, nil
}

func newResource(svc records.RecordService[ledger.Account]) *records.Resource[ledger.Account, CreateAccountBody, UpdateAccountBody, Account] {
	return &records.Resource[ledger.Account, CreateAccountBody, UpdateAccountBody, Account]{
		Singular:  "account",
		Plural:    "accounts",
		Path:      "/v1/accounts",
		Tag:       "Accounts",
		Service:   svc,
		FromBody:  fromCreateBody,
		FromPatch: fromUpdateBody,
		ToOutput:  toAccount,
	}
}

// Register registers every account endpoint with the Huma API.
func Register(api huma.API, svc accountService) {
	newResource(svc).Register(api)
	NewBalanceHandler(svc).Register(api)
}

package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/logging"
)

// accountService is the account surface the handlers need.
type accountService interface {
	records.RecordService[ledger.Account]
	Balance(ctx context.Context, actor access.Actor, id uuid.UUID) (ledger.AccountBalance, error)
}

// Balance is the API response model for an account balance.
type Balance struct {
	Account   string `json:"account" doc:"Account UUID"`
	Effective string `json:"effective" doc:"Decimal balance counting only effective transactions"`
	Projected string `json:"projected" doc:"Decimal balance counting projected transactions too"`
}

type BalanceOutput struct {
	Body Balance
}

// BalanceHandler handles GET /v1/accounts/{id}/balance.
type BalanceHandler struct {
	AccountService accountService
}

func NewBalanceHandler(svc accountService) *BalanceHandler {
	return &BalanceHandler{AccountService: svc}
}

// Register registers the balance endpoint with the Huma API.
func (h *BalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account-balance",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}/balance",
		Summary:     "Get account balance",
		Description: "Returns the initial balance plus income, minus expenses and outgoing transfers, plus incoming transfers.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *BalanceHandler) handle(ctx context.Context, input *records.IDInput) (*BalanceOutput, error) {
	actor, err := records.Actor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := records.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "accountBalanceMs")
	balance, err := h.AccountService.Balance(ctx, actor, id)
	stopTimer()
	if err != nil {
		return nil, records.Error(err, "failed to compute balance")
	}

	return &BalanceOutput{Body: Balance{
		Account:   balance.Account.String(),
		Effective: balance.Effective.String(),
		Projected: balance.Projected.String(),
	}}, nil
}

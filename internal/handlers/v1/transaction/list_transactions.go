package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/logging"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// transactionService is the transaction surface the handlers need.
type transactionService interface {
	records.RecordService[ledger.Transaction]
	ListTransactions(ctx context.Context, actor access.Actor, filter service.TransactionFilter, cursor *service.Cursor) ([]ledger.Transaction, *service.Cursor, error)
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Position int    `query:"position" minimum:"0" doc:"Offset of the page"`
	Limit    int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, defaults to 20"`
	Account  string `query:"account" doc:"Only transactions of this account UUID"`
	Status   string `query:"status" doc:"projected or effective"`
	From     string `query:"from" doc:"Inclusive lower bound on date, RFC 3339"`
	To       string `query:"to" doc:"Exclusive upper bound on date, RFC 3339"`
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionService
	resource           *records.Resource[ledger.Transaction, CreateTransactionBody, UpdateTransactionBody, Transaction]
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of the caller's transactions, newest first, optionally filtered by account, status and date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionFilter, error) {
	filter := service.TransactionFilter{Status: ledger.Status(input.Status)}
	if filter.Status != "" && !filter.Status.Valid() {
		return service.TransactionFilter{}, huma.NewError(http.StatusBadRequest, "invalid status")
	}

	if input.Account != "" {
		id, err := records.ParseID("account", input.Account)
		if err != nil {
			return service.TransactionFilter{}, err
		}
		filter.Account = id
	}
	if input.From != "" {
		from, err := records.ParseTime("from", input.From)
		if err != nil {
			return service.TransactionFilter{}, err
		}
		filter.From = &from
	}
	if input.To != "" {
		to, err := records.ParseTime("to", input.To)
		if err != nil {
			return service.TransactionFilter{}, err
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return service.TransactionFilter{}, huma.NewError(http.StatusBadRequest, "from must be before to")
	}
	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*records.ListOutput[Transaction], error) {
	actor, err := records.Actor(ctx)
	if err != nil {
		return nil, err
	}
	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Time(ctx, "listTransactionsMs")
	rows, next, err := h.TransactionService.ListTransactions(ctx, actor, filter, records.PageCursor(input.Position, input.Limit))
	stopTimer()
	if err != nil {
		return nil, records.Error(err, "failed to list transactions")
	}

	logging.Add(ctx, "transactionCount", len(rows))
	if filter.Account != uuid.Nil {
		logging.Add(ctx, "accountID", filter.Account.String())
	}
	return h.resource.Page(rows, next), nil
}

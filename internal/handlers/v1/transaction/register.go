package transaction

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budgettime-server/internal/handlers/v1/records"
	"github.com/carson-networks/budgettime-server/internal/ledger"
)

// Register registers every transaction endpoint with the Huma API.
func Register(api huma.API, svc transactionService) {
	resource := &records.Resource[ledger.Transaction, CreateTransactionBody, UpdateTransactionBody, Transaction]{
		Singular:  "transaction",
		Plural:    "transactions",
		Path:      "/v1/transactions",
		Tag:       "Transactions",
		Service:   svc,
		FromBody:  fromCreateBody,
		FromPatch: fromUpdateBody,
		ToOutput:  toTransaction,
		SkipList:  true,
	}
	(&ListTransactionsHandler{TransactionService: svc, resource: resource}).Register(api)
	resource.Register(api)
}

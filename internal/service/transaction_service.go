package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/operator/actions"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
)

// TransactionFilter narrows a transaction listing. Zero fields are ignored;
// the date range is [From, To).
type TransactionFilter struct {
	Account uuid.UUID
	Status  ledger.Status
	From    *time.Time
	To      *time.Time
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	*RecordService[ledger.Transaction]
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store ReadStorage, processor Processor) *TransactionService {
	return &TransactionService{
		RecordService: NewRecordService(store, processor, actions.Transactions),
	}
}

// ListTransactions returns a page of the actor's transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, actor access.Actor, filter TransactionFilter, cursor *Cursor) ([]ledger.Transaction, *Cursor, error) {
	query := ListQuery{Cursor: cursor}

	equal := map[string]any{}
	if filter.Account != uuid.Nil {
		equal["account_id"] = filter.Account
	}
	if filter.Status != "" {
		if !filter.Status.Valid() {
			return nil, nil, ledger.Invalid("status", "must be one of %v", ledger.Statuses)
		}
		equal["status"] = string(filter.Status)
	}
	if len(equal) > 0 {
		query.Equal = equal
	}
	if filter.From != nil || filter.To != nil {
		query.Range = &sqlconfig.Range{Column: "date", From: filter.From, To: filter.To}
	}

	return s.List(ctx, actor, query)
}

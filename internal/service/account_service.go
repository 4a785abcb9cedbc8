package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/operator/actions"
)

// AccountService handles account business logic.
type AccountService struct {
	*RecordService[ledger.Account]
}

// NewAccountService creates a new AccountService.
func NewAccountService(store ReadStorage, processor Processor) *AccountService {
	return &AccountService{
		RecordService: NewRecordService(store, processor, actions.Accounts),
	}
}

// Balance computes the effective and projected balance of an account from
// its initial balance and every transaction touching it.
func (s *AccountService) Balance(ctx context.Context, actor access.Actor, id uuid.UUID) (ledger.AccountBalance, error) {
	account, err := s.Get(ctx, actor, id)
	if err != nil {
		return ledger.AccountBalance{}, err
	}

	legs, err := s.storage.Read().Transactions.Legs(ctx, account.User, account.ID)
	if err != nil {
		return ledger.AccountBalance{}, err
	}
	return ledger.Balance(account, legs), nil
}

package service

import (
	"context"

	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/operator/actions"
	"github.com/carson-networks/budgettime-server/internal/storage"
)

// ReadStorage hands out tables that run outside a transaction.
type ReadStorage interface {
	Read() *storage.Reader
}

// Processor runs write actions. *operator.OperatorDelegator implements it.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Accounts     *AccountService
	Members      *RecordService[ledger.Member]
	Categories   *RecordService[ledger.Category]
	Recurrences  *RecordService[ledger.Recurrence]
	Transactions *TransactionService
	RawInbox     *RecordService[ledger.RawInboxItem]
	Settings     *SettingsService
	Users        *UserService
}

// NewService creates a new Service with the given storage and write path.
func NewService(store ReadStorage, processor Processor) *Service {
	return &Service{
		Accounts:     NewAccountService(store, processor),
		Members:      NewRecordService(store, processor, actions.Members),
		Categories:   NewRecordService(store, processor, actions.Categories),
		Recurrences:  NewRecordService(store, processor, actions.Recurrences),
		Transactions: NewTransactionService(store, processor),
		RawInbox:     NewRecordService(store, processor, actions.RawInbox),
		Settings:     NewSettingsService(store, processor),
		Users:        NewUserService(processor),
	}
}

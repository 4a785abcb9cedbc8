package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budgettime-server/internal/schema"
	"github.com/carson-networks/budgettime-server/internal/storage/account"
	"github.com/carson-networks/budgettime-server/internal/storage/category"
	"github.com/carson-networks/budgettime-server/internal/storage/member"
	"github.com/carson-networks/budgettime-server/internal/storage/rawinbox"
	"github.com/carson-networks/budgettime-server/internal/storage/recurrence"
	"github.com/carson-networks/budgettime-server/internal/storage/settings"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
	"github.com/carson-networks/budgettime-server/internal/storage/transaction"
	"github.com/carson-networks/budgettime-server/internal/storage/user"
)

// Reader exposes every table behind its interface so callers can be tested
// against mocks.
type Reader struct {
	Users        user.Store
	Accounts     account.Store
	Members      member.Store
	Categories   category.Store
	Recurrences  recurrence.Store
	Transactions transaction.Store
	RawInbox     rawinbox.Store
	Settings     settings.Store
	Catalog      schema.Catalog
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Users:        user.NewTable(exec),
		Accounts:     account.NewTable(exec),
		Members:      member.NewTable(exec),
		Categories:   category.NewTable(exec),
		Recurrences:  recurrence.NewTable(exec),
		Transactions: transaction.NewTable(exec),
		RawInbox:     rawinbox.NewTable(exec),
		Settings:     settings.NewTable(exec),
		Catalog:      sqlconfig.NewCatalogTable(exec),
	}
}

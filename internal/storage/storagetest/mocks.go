// Package storagetest provides testify mocks for the storage tables.
package storagetest

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/schema"
	"github.com/carson-networks/budgettime-server/internal/storage"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
)

type Store[T any] struct {
	mock.Mock
}

var _ sqlconfig.Store[ledger.Account] = (*Store[ledger.Account])(nil)

func (m *Store[T]) FindByID(ctx context.Context, id uuid.UUID) (T, error) {
	args := m.Called(ctx, id)
	return record[T](args.Get(0)), args.Error(1)
}

func (m *Store[T]) List(ctx context.Context, filter *sqlconfig.Filter) ([]T, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *Store[T]) Insert(ctx context.Context, r T) (T, error) {
	args := m.Called(ctx, r)
	return record[T](args.Get(0)), args.Error(1)
}

func (m *Store[T]) Update(ctx context.Context, r T) (T, error) {
	args := m.Called(ctx, r)
	return record[T](args.Get(0)), args.Error(1)
}

func (m *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func record[T any](v any) T {
	r, _ := v.(T)
	return r
}

type TransactionStore struct {
	Store[ledger.Transaction]
}

func (m *TransactionStore) Legs(ctx context.Context, user, account uuid.UUID) ([]ledger.Leg, error) {
	args := m.Called(ctx, user, account)
	legs, _ := args.Get(0).([]ledger.Leg)
	return legs, args.Error(1)
}

type SettingsStore struct {
	Store[ledger.Settings]
}

func (m *SettingsStore) FindByUser(ctx context.Context, user uuid.UUID) (ledger.Settings, error) {
	args := m.Called(ctx, user)
	return record[ledger.Settings](args.Get(0)), args.Error(1)
}

type UserStore struct {
	mock.Mock
}

func (m *UserStore) Ensure(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserStore) Lock(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Tables holds one mock per table.
type Tables struct {
	Users        *UserStore
	Accounts     *Store[ledger.Account]
	Members      *Store[ledger.Member]
	Categories   *Store[ledger.Category]
	Recurrences  *Store[ledger.Recurrence]
	Transactions *TransactionStore
	RawInbox     *Store[ledger.RawInboxItem]
	Settings     *SettingsStore
	Catalog      *schema.MemoryCatalog
}

func NewTables() *Tables {
	return &Tables{
		Users:        &UserStore{},
		Accounts:     &Store[ledger.Account]{},
		Members:      &Store[ledger.Member]{},
		Categories:   &Store[ledger.Category]{},
		Recurrences:  &Store[ledger.Recurrence]{},
		Transactions: &TransactionStore{},
		RawInbox:     &Store[ledger.RawInboxItem]{},
		Settings:     &SettingsStore{},
		Catalog:      schema.NewMemoryCatalog(),
	}
}

func (t *Tables) Reader() *storage.Reader {
	return &storage.Reader{
		Users:        t.Users,
		Accounts:     t.Accounts,
		Members:      t.Members,
		Categories:   t.Categories,
		Recurrences:  t.Recurrences,
		Transactions: t.Transactions,
		RawInbox:     t.RawInbox,
		Settings:     t.Settings,
		Catalog:      t.Catalog,
	}
}

// Writer binds the mocks to tx, which may be nil.
func (t *Tables) Writer(tx storage.Transactor) *storage.Writer {
	return storage.NewWriterWithTables(tx, *t.Reader())
}

// AssertExpectations asserts every mock's expectations.
func (t *Tables) AssertExpectations(tt mock.TestingT) {
	t.Users.AssertExpectations(tt)
	t.Accounts.AssertExpectations(tt)
	t.Members.AssertExpectations(tt)
	t.Categories.AssertExpectations(tt)
	t.Recurrences.AssertExpectations(tt)
	t.Transactions.AssertExpectations(tt)
	t.RawInbox.AssertExpectations(tt)
	t.Settings.AssertExpectations(tt)
}

// Tx records how a transaction ended.
type Tx struct {
	Committed  bool
	RolledBack bool
	CommitErr  error
}

func (t *Tx) Commit(context.Context) error {
	t.Committed = true
	return t.CommitErr
}

func (t *Tx) Rollback(context.Context) error {
	t.RolledBack = true
	return nil
}

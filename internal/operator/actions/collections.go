package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/storage"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
)

var Accounts = &Collection[ledger.Account]{
	Name:  access.Accounts,
	Table: func(r *storage.Reader) sqlconfig.Store[ledger.Account] { return r.Accounts },
}

var Members = &Collection[ledger.Member]{
	Name:  access.Members,
	Table: func(r *storage.Reader) sqlconfig.Store[ledger.Member] { return r.Members },
}

var Categories = &Collection[ledger.Category]{
	Name:  access.Categories,
	Table: func(r *storage.Reader) sqlconfig.Store[ledger.Category] { return r.Categories },
}

var Recurrences = &Collection[ledger.Recurrence]{
	Name:  access.Recurrences,
	Table: func(r *storage.Reader) sqlconfig.Store[ledger.Recurrence] { return r.Recurrences },
	Hook:  checkRecurrenceRefs,
}

var Transactions = &Collection[ledger.Transaction]{
	Name:  access.Transactions,
	Table: func(r *storage.Reader) sqlconfig.Store[ledger.Transaction] { return r.Transactions },
	Hook:  checkTransactionRefs,
}

var RawInbox = &Collection[ledger.RawInboxItem]{
	Name:  access.RawInbox,
	Table: func(r *storage.Reader) sqlconfig.Store[ledger.RawInboxItem] { return r.RawInbox },
}

var Settings = &Collection[ledger.Settings]{
	Name:  access.Settings,
	Table: func(r *storage.Reader) sqlconfig.Store[ledger.Settings] { return r.Settings },
	Hook:  checkSingleSettings,
}

func checkRecurrenceRefs(ctx context.Context, w *storage.Writer, before *ledger.Recurrence, after ledger.Recurrence) error {
	if before == nil || before.Account != after.Account {
		if err := ownedRef(ctx, w.Accounts, "account", after.User, after.Account); err != nil {
			return err
		}
	}
	if after.TargetAccount.Valid && (before == nil || before.TargetAccount != after.TargetAccount) {
		if err := ownedRef(ctx, w.Accounts, "target_account", after.User, after.TargetAccount.UUID); err != nil {
			return err
		}
	}
	return nil
}

// checkTransactionRefs verifies references that are new or changed. Existing
// references are left alone since weak references may dangle.
func checkTransactionRefs(ctx context.Context, w *storage.Writer, before *ledger.Transaction, after ledger.Transaction) error {
	if before == nil || before.Account != after.Account {
		if err := ownedRef(ctx, w.Accounts, "account", after.User, after.Account); err != nil {
			return err
		}
	}
	if after.TargetAccount.Valid && (before == nil || before.TargetAccount != after.TargetAccount) {
		if err := ownedRef(ctx, w.Accounts, "target_account", after.User, after.TargetAccount.UUID); err != nil {
			return err
		}
	}
	if after.Member.Valid && (before == nil || before.Member != after.Member) {
		if err := ownedRef(ctx, w.Members, "member", after.User, after.Member.UUID); err != nil {
			return err
		}
	}
	if after.Recurrence.Valid && (before == nil || before.Recurrence != after.Recurrence) {
		if err := ownedRef(ctx, w.Recurrences, "recurrence", after.User, after.Recurrence.UUID); err != nil {
			return err
		}
	}
	return nil
}

func checkSingleSettings(ctx context.Context, w *storage.Writer, before *ledger.Settings, after ledger.Settings) error {
	if before != nil && before.User == after.User {
		return nil
	}
	// Concurrent creates for the same user wait here, so the second one
	// sees the first one's row.
	if err := w.Users.Lock(ctx, after.User); err != nil {
		return err
	}
	_, err := w.Settings.FindByUser(ctx, after.User)
	if err == nil {
		return fmt.Errorf("%w: settings already exist for user", ErrConflict)
	}
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

// ownedRef reports a validation error when id does not name a record owned
// by user. Records of other users are indistinguishable from missing ones.
func ownedRef[T ledger.Record](ctx context.Context, table sqlconfig.Store[T], field string, user, id uuid.UUID) error {
	record, err := table.FindByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && record.Owner() != user) {
		return ledger.Invalid(field, "%s does not exist", id)
	}
	return err
}

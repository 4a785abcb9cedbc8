package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/operator/actions"
	"github.com/carson-networks/budgettime-server/internal/storage"
	"github.com/carson-networks/budgettime-server/internal/storage/storagetest"
)

type fakeStorage struct {
	tables *storagetest.Tables
}

func (f *fakeStorage) Read() *storage.Reader {
	return f.tables.Reader()
}

// inlineProcessor performs actions synchronously against the mocks.
type inlineProcessor struct {
	tables *storagetest.Tables
	tx     *storagetest.Tx
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.tx = &storagetest.Tx{}
	w := p.tables.Writer(p.tx)
	if err := action.Perform(ctx, w); err != nil {
		_ = w.Rollback(ctx)
		return err
	}
	return w.Commit(ctx)
}

func newTestService(t *testing.T) (*Service, *storagetest.Tables, *inlineProcessor) {
	t.Helper()
	tables := storagetest.NewTables()
	t.Cleanup(func() { tables.AssertExpectations(t) })
	processor := &inlineProcessor{tables: tables}
	return NewService(&fakeStorage{tables: tables}, processor), tables, processor
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

package storage

import (
	"context"

	"github.com/stephenafamo/bob"
)

// Transactor is the commit side of a database transaction.
type Transactor interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer is a Reader bound to an open transaction. A Writer without a
// transaction commits and rolls back as no-ops.
type Writer struct {
	tx Transactor
	Reader
}

// Executor is what a Writer needs from its transaction.
type Executor interface {
	Transactor
	bob.Executor
}

func NewWriter(tx Executor) *Writer {
	return NewWriterWithTables(tx, *NewReader(tx))
}

// NewWriterWithTables binds tables that already run inside tx.
func NewWriterWithTables(tx Transactor, tables Reader) *Writer {
	return &Writer{
		tx:     tx,
		Reader: tables,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Rollback(ctx)
}

package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/operator/actions"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
)

// Patch changes some fields of a record and leaves the rest alone.
type Patch[T any] interface {
	Apply(T) T
}

// ListQuery narrows a listing beyond the caller's own records.
type ListQuery struct {
	Cursor *Cursor
	Equal  map[string]any
	Range  *sqlconfig.Range
}

// RecordService is the read and write path for one owned collection. Reads
// go straight to storage; writes go through the operator.
type RecordService[T ledger.Record] struct {
	storage    ReadStorage
	processor  Processor
	collection *actions.Collection[T]
}

func NewRecordService[T ledger.Record](store ReadStorage, processor Processor, collection *actions.Collection[T]) *RecordService[T] {
	return &RecordService[T]{
		storage:    store,
		processor:  processor,
		collection: collection,
	}
}

// List returns a page of the actor's records.
func (s *RecordService[T]) List(ctx context.Context, actor access.Actor, query ListQuery) ([]T, *Cursor, error) {
	if err := access.Check(actor, s.collection.Name, actor.ID, access.OpList); err != nil {
		return nil, nil, err
	}

	offset, limit := query.Cursor.bounds()
	filter := &sqlconfig.Filter{
		UserID: actor.ID,
		Equal:  query.Equal,
		Range:  query.Range,
		Limit:  limit + 1,
		Offset: offset,
	}

	rows, err := s.collection.Table(s.storage.Read()).List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	rows, next := page(rows, offset, limit)
	return rows, next, nil
}

// Get returns one record if the actor may view it.
func (s *RecordService[T]) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (T, error) {
	record, err := s.collection.Table(s.storage.Read()).FindByID(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := access.Check(actor, s.collection.Name, record.Owner(), access.OpView); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Create stores record. The record's user must already be set.
func (s *RecordService[T]) Create(ctx context.Context, actor access.Actor, record T) (T, error) {
	action := &actions.CreateRecord[T]{
		Actor:      actor,
		Collection: s.collection,
		Record:     record,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		var zero T
		return zero, err
	}
	return action.Created, nil
}

func (s *RecordService[T]) Update(ctx context.Context, actor access.Actor, id uuid.UUID, patch Patch[T]) (T, error) {
	action := &actions.UpdateRecord[T]{
		Actor:      actor,
		Collection: s.collection,
		ID:         id,
		Patch:      patch.Apply,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		var zero T
		return zero, err
	}
	return action.Updated, nil
}

func (s *RecordService[T]) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteRecord[T]{
		Actor:      actor,
		Collection: s.collection,
		ID:         id,
	})
}

// Package recordstest provides a humatest API with bearer authentication and
// a testify mock of a record service.
package recordstest

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budgettime-server/internal/access"
	"github.com/carson-networks/budgettime-server/internal/auth"
	"github.com/carson-networks/budgettime-server/internal/ledger"
	"github.com/carson-networks/budgettime-server/internal/service"
)

// NewAPI returns a test API that authenticates requests with tokens.
func NewAPI(t *testing.T) (humatest.TestAPI, *auth.Tokens) {
	t.Helper()
	_, api := humatest.New(t)
	tokens := auth.NewTokens("test-secret", time.Hour)
	api.UseMiddleware(auth.Middleware(api, tokens))
	return api, tokens
}

// Bearer returns an Authorization header line for actor.
func Bearer(t *testing.T, tokens *auth.Tokens, actor access.Actor) string {
	t.Helper()
	token, err := tokens.Generate(actor)
	require.NoError(t, err)
	return "Authorization: Bearer " + token
}

// Service is a mock of records.RecordService.
type Service[T ledger.Record] struct {
	mock.Mock
}

func (m *Service[T]) List(ctx context.Context, actor access.Actor, query service.ListQuery) ([]T, *service.Cursor, error) {
	args := m.Called(ctx, actor, query)
	rows, _ := args.Get(0).([]T)
	next, _ := args.Get(1).(*service.Cursor)
	return rows, next, args.Error(2)
}

func (m *Service[T]) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (T, error) {
	args := m.Called(ctx, actor, id)
	record, _ := args.Get(0).(T)
	return record, args.Error(1)
}

func (m *Service[T]) Create(ctx context.Context, actor access.Actor, record T) (T, error) {
	args := m.Called(ctx, actor, record)
	created, _ := args.Get(0).(T)
	return created, args.Error(1)
}

func (m *Service[T]) Update(ctx context.Context, actor access.Actor, id uuid.UUID, patch service.Patch[T]) (T, error) {
	args := m.Called(ctx, actor, id, patch)
	updated, _ := args.Get(0).(T)
	return updated, args.Error(1)
}

func (m *Service[T]) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	return m.Called(ctx, actor, id).Error(0)
}

package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budgettime-server/internal/config"
	"github.com/carson-networks/budgettime-server/internal/storage/sqlconfig"
)

// ErrNotFound is returned by every table when an addressed row is missing.
var ErrNotFound = sqlconfig.ErrNotFound

type Storage struct {
	sqlDB *sql.DB
	DB    bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return FromDB(db), nil
}

// FromDB wraps an already opened lib/pq connection pool.
func FromDB(db *sql.DB) *Storage {
	return &Storage{
		sqlDB: db,
		DB:    bob.NewDB(db),
	}
}

// Read returns tables that run outside any transaction.
func (s *Storage) Read() *Reader {
	return NewReader(s.DB)
}

// Write begins a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(&tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.sqlDB.Close()
}

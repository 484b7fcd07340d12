package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/sid200307/product-transactions-server/internal/config"
	"github.com/sid200307/product-transactions-server/internal/storage/transaction"
)

type Storage struct {
	DB           *sql.DB
	Transactions transaction.ITransactionReader
}

// NewStorage opens the Postgres handle and verifies it is reachable. An
// unreachable store is a startup failure, the caller must not begin serving.
func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Storage{
		DB:           db,
		Transactions: transaction.NewReader(db),
	}, nil
}

// Write begins a database transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

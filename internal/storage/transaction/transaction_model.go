package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a product transaction record.
// DateOfSale is the zero time when the store holds no sale date.
type Transaction struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal
	DateOfSale  time.Time
	Category    string
	Image       string
	Sold        bool
	CreatedAt   time.Time
}

// TransactionCreate is the input for creating a new transaction.
// A zero DateOfSale is persisted as NULL.
type TransactionCreate struct {
	Title       string
	Description string
	Price       decimal.Decimal
	DateOfSale  time.Time
	Category    string
	Image       string
	Sold        bool
}

// TransactionFilter specifies the search predicate and paging for listing.
// Search matches title or description as a case-insensitive substring, or
// price exactly when it parses as a number. Count ignores Limit and Offset.
type TransactionFilter struct {
	Search string
	Limit  int
	Offset int
}

// ITransactionReader defines the interface for transaction read operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ITransactionReader --output mock_ITransactionReader.go
type ITransactionReader interface {
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context, filter *TransactionFilter) (int64, error)
	ListSoldBetween(ctx context.Context, start, end time.Time) ([]*Transaction, error)
	CountSoldBefore(ctx context.Context, before time.Time) (int64, error)
}

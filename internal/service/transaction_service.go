package service

import (
	"context"

	"github.com/sid200307/product-transactions-server/internal/storage"
	"github.com/sid200307/product-transactions-server/internal/storage/transaction"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// TransactionService handles transaction listing and search.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns one page of transactions matching the search,
// plus the total count of matches across all pages. Page is 1-based and
// defaults to 1, perPage defaults to 10 with no upper bound.
func (s *TransactionService) ListTransactions(ctx context.Context, page, perPage int, search string) ([]Transaction, int64, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	filter := &transaction.TransactionFilter{
		Search: search,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.storage.Transactions.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Price:       row.Price,
			DateOfSale:  row.DateOfSale,
			Category:    row.Category,
			Image:       row.Image,
			Sold:        row.Sold,
			CreatedAt:   row.CreatedAt,
		}
	}

	return convertedTransactions, total, nil
}

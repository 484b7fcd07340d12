package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sid200307/product-transactions-server/internal/storage"
	"github.com/sid200307/product-transactions-server/internal/storage/transaction"
)

type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionReader) Count(ctx context.Context, filter *transaction.TransactionFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionReader) ListSoldBetween(ctx context.Context, start, end time.Time) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, start, end)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionReader) CountSoldBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func newTestTransactionService(t *testing.T) (*TransactionService, *mockTransactionReader) {
	t.Helper()
	mockReader := new(mockTransactionReader)
	store := &storage.Storage{Transactions: mockReader}
	return NewTransactionService(store), mockReader
}

func makeStorageRows(n int, dateOfSale time.Time) []*transaction.Transaction {
	rows := make([]*transaction.Transaction, n)
	for i := range rows {
		rows[i] = &transaction.Transaction{
			ID:          uuid.Must(uuid.NewV4()),
			Title:       "Item",
			Description: "An item",
			Price:       decimal.RequireFromString("5.00"),
			DateOfSale:  dateOfSale,
			Category:    "misc",
			Sold:        true,
			CreatedAt:   dateOfSale,
		}
	}
	return rows
}

func TestListTransactions_Defaults(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Search == "" && f.Limit == 10 && f.Offset == 0
	})).Return([]*transaction.Transaction{}, nil)
	mockReader.On("Count", mock.Anything, mock.Anything).Return(int64(42), nil)

	txs, total, err := svc.ListTransactions(context.Background(), 0, 0, "")

	assert.NoError(t, err)
	assert.Empty(t, txs)
	assert.Equal(t, int64(42), total, "total is the full match count, not the page size")
	mockReader.AssertExpectations(t)
}

func TestListTransactions_PagingOffset(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Search == "150" && f.Limit == 5 && f.Offset == 10
	})).Return([]*transaction.Transaction{}, nil)
	mockReader.On("Count", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Search == "150"
	})).Return(int64(11), nil)

	_, total, err := svc.ListTransactions(context.Background(), 3, 5, "150")

	assert.NoError(t, err)
	assert.Equal(t, int64(11), total)
	mockReader.AssertExpectations(t)
}

func TestListTransactions_ConvertsRows(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	saleDate := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	rows := makeStorageRows(2, saleDate)

	mockReader.On("List", mock.Anything, mock.Anything).Return(rows, nil)
	mockReader.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)

	txs, total, err := svc.ListTransactions(context.Background(), 1, 10, "")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, txs, 2)

	tx := txs[0]
	assert.Equal(t, rows[0].ID, tx.ID)
	assert.Equal(t, rows[0].Title, tx.Title)
	assert.Equal(t, rows[0].Description, tx.Description)
	assert.True(t, rows[0].Price.Equal(tx.Price))
	assert.Equal(t, rows[0].DateOfSale, tx.DateOfSale)
	assert.Equal(t, rows[0].Category, tx.Category)
	assert.Equal(t, rows[0].Sold, tx.Sold)
}

func TestListTransactions_ListError(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	txs, total, err := svc.ListTransactions(context.Background(), 1, 10, "")

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, txs)
	assert.Equal(t, int64(0), total)
	mockReader.AssertNotCalled(t, "Count")
}

func TestListTransactions_CountError(t *testing.T) {
	svc, mockReader := newTestTransactionService(t)

	mockReader.On("List", mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{}, nil)
	mockReader.On("Count", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("database unavailable"))

	_, _, err := svc.ListTransactions(context.Background(), 1, 10, "")

	assert.Error(t, err)
}

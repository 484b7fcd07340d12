package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sid200307/product-transactions-server/internal/operator/actions"
)

type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

const seedFeedBody = `[
	{"id": 1, "title": "Laptop", "price": 329.85, "description": "A laptop", "category": "electronics", "image": "https://example.com/laptop.png", "sold": false, "dateOfSale": "2021-11-27T20:29:54+05:30"},
	{"id": 2, "title": "Shirt", "price": 44.6, "description": "A shirt", "category": "clothing", "image": "", "sold": true, "dateOfSale": "not-a-date"}
]`

func TestInitialize_MapsAndInserts(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(seedFeedBody))
	}))
	defer feed.Close()

	mockProcessor := new(mockActionProcessor)
	var captured *actions.SeedTransactions
	mockProcessor.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		captured, _ = action.(*actions.SeedTransactions)
		return captured != nil
	})).Return(nil)

	svc := NewSeedService(feed.URL, mockProcessor)
	count, err := svc.Initialize(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	mockProcessor.AssertNumberOfCalls(t, "Process", 1)

	assert.Len(t, captured.Transactions, 2)

	first := captured.Transactions[0]
	assert.Equal(t, "Laptop", first.Title)
	assert.Equal(t, "A laptop", first.Description)
	assert.True(t, first.Price.Equal(decimal.RequireFromString("329.85")))
	assert.Equal(t, "electronics", first.Category)
	assert.False(t, first.Sold)
	expectedDate, _ := time.Parse(time.RFC3339, "2021-11-27T20:29:54+05:30")
	assert.True(t, first.DateOfSale.Equal(expectedDate))

	second := captured.Transactions[1]
	assert.Equal(t, "Shirt", second.Title)
	assert.True(t, second.Sold)
	assert.True(t, second.DateOfSale.IsZero(), "unparseable sale date kept as zero, record not dropped")
}

func TestInitialize_FetchStatusError(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer feed.Close()

	mockProcessor := new(mockActionProcessor)

	svc := NewSeedService(feed.URL, mockProcessor)
	count, err := svc.Initialize(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 0, count)
	mockProcessor.AssertNotCalled(t, "Process")
}

func TestInitialize_DecodeError(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	}))
	defer feed.Close()

	mockProcessor := new(mockActionProcessor)

	svc := NewSeedService(feed.URL, mockProcessor)
	_, err := svc.Initialize(context.Background())

	assert.Error(t, err)
	mockProcessor.AssertNotCalled(t, "Process")
}

func TestInitialize_NetworkError(t *testing.T) {
	mockProcessor := new(mockActionProcessor)

	svc := NewSeedService("http://127.0.0.1:1/never", mockProcessor)
	_, err := svc.Initialize(context.Background())

	assert.Error(t, err)
	mockProcessor.AssertNotCalled(t, "Process")
}

func TestInitialize_InsertFailureAborts(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(seedFeedBody))
	}))
	defer feed.Close()

	mockProcessor := new(mockActionProcessor)
	mockProcessor.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	svc := NewSeedService(feed.URL, mockProcessor)
	count, err := svc.Initialize(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 0, count)
}

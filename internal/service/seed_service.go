package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sid200307/product-transactions-server/internal/operator/actions"
	"github.com/sid200307/product-transactions-server/internal/storage/transaction"
)

const seedBatchSize = 100

// sourceTransaction mirrors one element of the external seed feed.
type sourceTransaction struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Sold        bool    `json:"sold"`
	DateOfSale  string  `json:"dateOfSale"`
}

// actionProcessor enqueues write actions. Satisfied by operator.OperatorDelegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// SeedService imports the external transaction feed into the store.
type SeedService struct {
	client    *http.Client
	sourceURL string
	operator  actionProcessor
}

// NewSeedService creates a new SeedService reading from the given feed URL.
func NewSeedService(sourceURL string, op actionProcessor) *SeedService {
	return &SeedService{
		client:    &http.Client{Timeout: 30 * time.Second},
		sourceURL: sourceURL,
		operator:  op,
	}
}

// Initialize fetches the feed and appends every record to the store in
// batches, one database transaction per batch. It never clears existing
// data, so repeated calls duplicate records. A fetch or decode failure
// aborts before anything is written; a failing batch aborts the run and
// leaves earlier committed batches in place. Returns the number of records
// written.
func (s *SeedService) Initialize(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch seed feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch seed feed: unexpected status %d", resp.StatusCode)
	}

	var source []sourceTransaction
	if err := json.NewDecoder(resp.Body).Decode(&source); err != nil {
		return 0, fmt.Errorf("decode seed feed: %w", err)
	}

	creates := make([]*transaction.TransactionCreate, len(source))
	for i, raw := range source {
		creates[i] = mapSourceTransaction(raw)
	}

	for start := 0; start < len(creates); start += seedBatchSize {
		end := min(start+seedBatchSize, len(creates))
		action := &actions.SeedTransactions{Transactions: creates[start:end]}
		if err := s.operator.Process(ctx, action); err != nil {
			return start, err
		}
	}

	return len(creates), nil
}

// mapSourceTransaction converts a raw feed element to a create record.
// An unparseable sale date becomes the zero time (stored as NULL); the
// record itself is kept.
func mapSourceTransaction(raw sourceTransaction) *transaction.TransactionCreate {
	dateOfSale, err := time.Parse(time.RFC3339, raw.DateOfSale)
	if err != nil {
		dateOfSale = time.Time{}
	}

	return &transaction.TransactionCreate{
		Title:       raw.Title,
		Description: raw.Description,
		Price:       decimal.NewFromFloat(raw.Price),
		DateOfSale:  dateOfSale,
		Category:    raw.Category,
		Image:       raw.Image,
		Sold:        raw.Sold,
	}
}

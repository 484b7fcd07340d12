package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sid200307/product-transactions-server/internal/storage"
)

// bucketLabels are the histogram ranges in fixed output order.
var bucketLabels = []string{
	"0-100",
	"101-200",
	"201-300",
	"301-400",
	"401-500",
	"501-600",
	"601-700",
	"701-800",
	"801-900",
	"901-above",
}

// bucketUppers are the inclusive upper bounds of every bucket except the
// last, which is unbounded.
var bucketUppers = []decimal.Decimal{
	decimal.NewFromInt(100),
	decimal.NewFromInt(200),
	decimal.NewFromInt(300),
	decimal.NewFromInt(400),
	decimal.NewFromInt(500),
	decimal.NewFromInt(600),
	decimal.NewFromInt(700),
	decimal.NewFromInt(800),
	decimal.NewFromInt(900),
}

// ReportService computes the monthly aggregation reports. Month-scoped
// operations resolve the month name against the current calendar year at
// call time and fail with ErrInvalidMonth before touching the store.
type ReportService struct {
	storage *storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

// Statistics returns the sold count, price total, and count of records
// dated before the month's start.
func (s *ReportService) Statistics(ctx context.Context, month string) (*Statistics, error) {
	start, end, err := monthBounds(month, time.Now().Year())
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListSoldBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totalSales := decimal.Zero
	for _, row := range rows {
		totalSales = totalSales.Add(row.Price)
	}

	notSoldItems, err := s.storage.Transactions.CountSoldBefore(ctx, start)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		TotalSales:   totalSales,
		SoldItems:    int64(len(rows)),
		NotSoldItems: notSoldItems,
	}, nil
}

// BarChart returns the price histogram for the month: all ten buckets in
// fixed order, each record counted in the first bucket whose upper bound is
// at least its price.
func (s *ReportService) BarChart(ctx context.Context, month string) ([]PriceBucket, error) {
	start, end, err := monthBounds(month, time.Now().Year())
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListSoldBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	buckets := make([]PriceBucket, len(bucketLabels))
	for i, label := range bucketLabels {
		buckets[i].Range = label
	}
	for _, row := range rows {
		buckets[bucketIndex(row.Price)].Count++
	}

	return buckets, nil
}

func bucketIndex(price decimal.Decimal) int {
	for i, upper := range bucketUppers {
		if price.LessThanOrEqual(upper) {
			return i
		}
	}
	return len(bucketLabels) - 1
}

// PieChart groups the month's records by category. Categories appear in
// first-seen order over the scanned rows.
func (s *ReportService) PieChart(ctx context.Context, month string) ([]CategoryCount, error) {
	start, end, err := monthBounds(month, time.Now().Year())
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListSoldBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	var order []string
	for _, row := range rows {
		if _, seen := counts[row.Category]; !seen {
			order = append(order, row.Category)
		}
		counts[row.Category]++
	}

	result := make([]CategoryCount, len(order))
	for i, category := range order {
		result[i] = CategoryCount{Category: category, Count: counts[category]}
	}
	return result, nil
}

// Combined computes the three reports independently for the same month.
// The first failure aborts the whole result.
func (s *ReportService) Combined(ctx context.Context, month string) (*CombinedReport, error) {
	statistics, err := s.Statistics(ctx, month)
	if err != nil {
		return nil, err
	}

	barChart, err := s.BarChart(ctx, month)
	if err != nil {
		return nil, err
	}

	pieChart, err := s.PieChart(ctx, month)
	if err != nil {
		return nil, err
	}

	return &CombinedReport{
		Statistics: statistics,
		BarChart:   barChart,
		PieChart:   pieChart,
	}, nil
}

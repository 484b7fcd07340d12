package report

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sid200307/product-transactions-server/internal/service"
)

// MonthInput is the shared Huma input for month-scoped report endpoints.
type MonthInput struct {
	Month string `path:"month" doc:"Full English month name, case-insensitive"`
}

// Statistics is the API response model for monthly statistics.
type Statistics struct {
	TotalSales   string `json:"totalSales" doc:"Sum of prices sold in the month"`
	SoldItems    int64  `json:"soldItems" doc:"Records sold in the month"`
	NotSoldItems int64  `json:"notSoldItems" doc:"Records dated before the month's first day"`
}

// PriceBucket is the API response model for one histogram bucket.
type PriceBucket struct {
	Range string `json:"range" doc:"Price interval label"`
	Count int64  `json:"count" doc:"Records in the interval"`
}

// CategoryCount is the API response model for one pie-chart slice.
type CategoryCount struct {
	Category string `json:"category" doc:"Product category"`
	Count    int64  `json:"count" doc:"Records in the category"`
}

func fromServiceStatistics(stats *service.Statistics) Statistics {
	return Statistics{
		TotalSales:   stats.TotalSales.String(),
		SoldItems:    stats.SoldItems,
		NotSoldItems: stats.NotSoldItems,
	}
}

func fromServiceBarChart(buckets []service.PriceBucket) []PriceBucket {
	result := make([]PriceBucket, len(buckets))
	for i, bucket := range buckets {
		result[i] = PriceBucket{Range: bucket.Range, Count: bucket.Count}
	}
	return result
}

func fromServicePieChart(counts []service.CategoryCount) []CategoryCount {
	result := make([]CategoryCount, len(counts))
	for i, count := range counts {
		result[i] = CategoryCount{Category: count.Category, Count: count.Count}
	}
	return result
}

// reportError maps service failures to HTTP errors: an unrecognized month
// is the caller's fault, everything else is a server failure.
func reportError(operation string, err error) error {
	if errors.Is(err, service.ErrInvalidMonth) {
		return huma.NewError(http.StatusBadRequest, "invalid month name")
	}
	return huma.NewError(http.StatusInternalServerError, "failed to compute "+operation, err)
}

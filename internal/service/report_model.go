package service

import (
	"github.com/shopspring/decimal"
)

// Statistics summarizes one month of sales. NotSoldItems counts records
// dated strictly before the month's first day.
type Statistics struct {
	TotalSales   decimal.Decimal
	SoldItems    int64
	NotSoldItems int64
}

// PriceBucket is one fixed price interval of the histogram report.
type PriceBucket struct {
	Range string
	Count int64
}

// CategoryCount is one category's record count for the pie-chart report.
type CategoryCount struct {
	Category string
	Count    int64
}

// CombinedReport bundles the three monthly reports.
type CombinedReport struct {
	Statistics *Statistics
	BarChart   []PriceBucket
	PieChart   []CategoryCount
}

package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sid200307/product-transactions-server/internal/service"
)

// BarChartOutput is the Huma output for the price histogram.
type BarChartOutput struct {
	Body []PriceBucket
}

// barChartReporter is the interface for computing the price histogram.
type barChartReporter interface {
	BarChart(ctx context.Context, month string) ([]service.PriceBucket, error)
}

// BarChartHandler handles GET /bar-chart/{month}.
type BarChartHandler struct {
	ReportService barChartReporter
}

// NewBarChartHandler creates a new BarChartHandler.
func NewBarChartHandler(svc barChartReporter) *BarChartHandler {
	return &BarChartHandler{ReportService: svc}
}

// Register registers the bar chart endpoint with the Huma API.
func (h *BarChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-bar-chart",
		Method:      http.MethodGet,
		Path:        "/bar-chart/{month}",
		Summary:     "Monthly price histogram",
		Description: "Returns fixed price-range bucket counts for the named month of the current year.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *BarChartHandler) handle(ctx context.Context, input *MonthInput) (*BarChartOutput, error) {
	buckets, err := h.ReportService.BarChart(ctx, input.Month)
	if err != nil {
		return nil, reportError("bar chart", err)
	}

	return &BarChartOutput{Body: fromServiceBarChart(buckets)}, nil
}

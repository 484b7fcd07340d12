package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sid200307/product-transactions-server/internal/service"
)

// CombinedResponseBody bundles the three monthly reports.
type CombinedResponseBody struct {
	Statistics Statistics      `json:"statistics" doc:"Monthly statistics"`
	BarChart   []PriceBucket   `json:"barChart" doc:"Price histogram buckets"`
	PieChart   []CategoryCount `json:"pieChart" doc:"Category counts"`
}

// CombinedOutput is the Huma output for the combined report.
type CombinedOutput struct {
	Body CombinedResponseBody
}

// combinedReporter is the interface for computing the combined report.
type combinedReporter interface {
	Combined(ctx context.Context, month string) (*service.CombinedReport, error)
}

// CombinedHandler handles GET /combined/{month}.
type CombinedHandler struct {
	ReportService combinedReporter
}

// NewCombinedHandler creates a new CombinedHandler.
func NewCombinedHandler(svc combinedReporter) *CombinedHandler {
	return &CombinedHandler{ReportService: svc}
}

// Register registers the combined report endpoint with the Huma API.
func (h *CombinedHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-combined-report",
		Method:      http.MethodGet,
		Path:        "/combined/{month}",
		Summary:     "Combined monthly report",
		Description: "Returns statistics, price histogram, and category counts for the named month of the current year.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *CombinedHandler) handle(ctx context.Context, input *MonthInput) (*CombinedOutput, error) {
	combined, err := h.ReportService.Combined(ctx, input.Month)
	if err != nil {
		return nil, reportError("combined report", err)
	}

	return &CombinedOutput{Body: CombinedResponseBody{
		Statistics: fromServiceStatistics(combined.Statistics),
		BarChart:   fromServiceBarChart(combined.BarChart),
		PieChart:   fromServicePieChart(combined.PieChart),
	}}, nil
}

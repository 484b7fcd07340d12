package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sid200307/product-transactions-server/internal/service"
)

// PieChartOutput is the Huma output for the category breakdown.
type PieChartOutput struct {
	Body []CategoryCount
}

// pieChartReporter is the interface for computing the category breakdown.
type pieChartReporter interface {
	PieChart(ctx context.Context, month string) ([]service.CategoryCount, error)
}

// PieChartHandler handles GET /pie-chart/{month}.
type PieChartHandler struct {
	ReportService pieChartReporter
}

// NewPieChartHandler creates a new PieChartHandler.
func NewPieChartHandler(svc pieChartReporter) *PieChartHandler {
	return &PieChartHandler{ReportService: svc}
}

// Register registers the pie chart endpoint with the Huma API.
func (h *PieChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-pie-chart",
		Method:      http.MethodGet,
		Path:        "/pie-chart/{month}",
		Summary:     "Monthly category breakdown",
		Description: "Returns per-category record counts for the named month of the current year.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *PieChartHandler) handle(ctx context.Context, input *MonthInput) (*PieChartOutput, error) {
	counts, err := h.ReportService.PieChart(ctx, input.Month)
	if err != nil {
		return nil, reportError("pie chart", err)
	}

	return &PieChartOutput{Body: fromServicePieChart(counts)}, nil
}

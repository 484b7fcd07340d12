package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sid200307/product-transactions-server/internal/service"
)

// StatisticsOutput is the Huma output for monthly statistics.
type StatisticsOutput struct {
	Body Statistics
}

// statisticsReporter is the interface for computing monthly statistics.
type statisticsReporter interface {
	Statistics(ctx context.Context, month string) (*service.Statistics, error)
}

// StatisticsHandler handles GET /statistics/{month}.
type StatisticsHandler struct {
	ReportService statisticsReporter
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(svc statisticsReporter) *StatisticsHandler {
	return &StatisticsHandler{ReportService: svc}
}

// Register registers the statistics endpoint with the Huma API.
func (h *StatisticsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-statistics",
		Method:      http.MethodGet,
		Path:        "/statistics/{month}",
		Summary:     "Monthly statistics",
		Description: "Returns the sale total, sold count, and pre-month record count for the named month of the current year.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *StatisticsHandler) handle(ctx context.Context, input *MonthInput) (*StatisticsOutput, error) {
	stats, err := h.ReportService.Statistics(ctx, input.Month)
	if err != nil {
		return nil, reportError("statistics", err)
	}

	return &StatisticsOutput{Body: fromServiceStatistics(stats)}, nil
}

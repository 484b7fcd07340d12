package seed

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sid200307/product-transactions-server/internal/logging"
)

// InitializeResponseBody is the response body for seeding the store.
type InitializeResponseBody struct {
	Message string `json:"message" doc:"Seeding outcome"`
}

// InitializeOutput is the Huma output for seeding the store.
type InitializeOutput struct {
	Body InitializeResponseBody
}

// seeder is the interface for importing the external feed.
type seeder interface {
	Initialize(ctx context.Context) (int, error)
}

// InitializeHandler handles GET /initialize.
type InitializeHandler struct {
	SeedService seeder
}

// NewInitializeHandler creates a new InitializeHandler.
func NewInitializeHandler(svc seeder) *InitializeHandler {
	return &InitializeHandler{SeedService: svc}
}

// Register registers the initialize endpoint with the Huma API.
func (h *InitializeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "initialize-database",
		Method:      http.MethodGet,
		Path:        "/initialize",
		Summary:     "Seed the store",
		Description: "Fetches the external transaction feed and appends every record to the store. Repeated calls duplicate data.",
		Tags:        []string{"Seed"},
	}, h.handle)
}

func (h *InitializeHandler) handle(ctx context.Context, _ *struct{}) (*InitializeOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("initializeMs")
	}
	count, err := h.SeedService.Initialize(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to initialize database", err)
	}

	if logData != nil {
		logData.AddData("seededCount", count)
	}

	return &InitializeOutput{Body: InitializeResponseBody{
		Message: fmt.Sprintf("database initialized with %d transactions", count),
	}}, nil
}

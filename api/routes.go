package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/sid200307/product-transactions-server/internal/handlers/v1/report"
	"github.com/sid200307/product-transactions-server/internal/handlers/v1/seed"
	"github.com/sid200307/product-transactions-server/internal/handlers/v1/status"
	"github.com/sid200307/product-transactions-server/internal/handlers/v1/transaction"
	"github.com/sid200307/product-transactions-server/internal/logging"
	"github.com/sid200307/product-transactions-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// Routes builds the request mux: the liveness handler on the bare mux and
// every JSON endpoint on the Huma API mounted over it.
func (r *Rest) Routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("GET /{$}", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Product Transactions API", "1.0.0")
	// Plain response bodies, no $schema links.
	config.CreateHooks = nil
	humaAPI := humago.New(mux, config)
	humaAPI.UseMiddleware(r.logDataMiddleware)

	seed.NewInitializeHandler(r.Service.Seed).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	report.NewStatisticsHandler(r.Service.Report).Register(humaAPI)
	report.NewBarChartHandler(r.Service.Report).Register(humaAPI)
	report.NewPieChartHandler(r.Service.Report).Register(humaAPI)
	report.NewCombinedHandler(r.Service.Report).Register(humaAPI)

	return mux
}

// logDataMiddleware gives every Huma operation a request-scoped LogData and
// logs the collected fields once the operation finishes.
func (r *Rest) logDataMiddleware(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	endTimer := logData.AddTiming("duration")

	next(huma.WithValue(ctx, logging.LogDataContextKey, logData))

	endTimer()
	logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

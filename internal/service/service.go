package service

import (
	"github.com/sid200307/product-transactions-server/internal/config"
	"github.com/sid200307/product-transactions-server/internal/operator"
	"github.com/sid200307/product-transactions-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Report      *ReportService
	Seed        *SeedService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, op *operator.OperatorDelegator, env *config.Config) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Report:      NewReportService(store),
		Seed:        NewSeedService(env.SeedSourceURL, op),
	}
}

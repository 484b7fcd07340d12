package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sid200307/product-transactions-server/api"
	"github.com/sid200307/product-transactions-server/internal/config"
	"github.com/sid200307/product-transactions-server/internal/logging"
	"github.com/sid200307/product-transactions-server/internal/operator"
	"github.com/sid200307/product-transactions-server/internal/service"
	"github.com/sid200307/product-transactions-server/internal/storage"
)

func main() {
	// Absent .env files are fine, env vars and defaults still apply.
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("product-transactions-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, 1)
	delegator.Start()

	svc := service.NewService(dbStorage, delegator, envConfig)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}

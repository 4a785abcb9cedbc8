package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budgettime-server/api"
	"github.com/carson-networks/budgettime-server/internal/auth"
	"github.com/carson-networks/budgettime-server/internal/config"
	"github.com/carson-networks/budgettime-server/internal/logging"
	"github.com/carson-networks/budgettime-server/internal/operator"
	"github.com/carson-networks/budgettime-server/internal/service"
	"github.com/carson-networks/budgettime-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLoggingWithLevel(logging.ParseLevel(envConfig.LogLevel))
	logger.Info("budgettime-server starting")
	if envConfig.UsesDefaultSecret() {
		logger.Warn("jwt_secret is the development default, set JWT_SECRET before exposing the server")
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)
	tokens := auth.NewTokens(envConfig.JWTSecret, envConfig.TokenTTL)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Storage: dbStorage,
			Service: svc,
			Tokens:  tokens,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}

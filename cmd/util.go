package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"tradejournal/api"
	"tradejournal/internal/repository"
	"tradejournal/internal/service"
	"tradejournal/internal/util"
	"tradejournal/pkg/riskfree"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	userAccountRepository := repository.NewUserAccountRepository(dbConn)
	tradingAccountRepository := repository.NewTradingAccountRepository(dbConn)
	tradeRepository := repository.NewTradeRepository(dbConn)
	accountMetricsRepository := repository.NewAccountMetricsRepository(dbConn)
	priceRepository := repository.NewPriceRepository()
	alpacaRepository := repository.NewAlpacaRepository(secrets.AlpacaApiKey, secrets.AlpacaApiSecret, secrets.AlpacaEndpoint)

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	performanceService := service.NewPerformanceService(
		tradingAccountRepository,
		tradeRepository,
		priceRepository,
		gptRepository,
		riskfree.NewClient(),
		time.UTC,
	)
	metricsService := service.NewMetricsService(dbConn, tradeRepository, accountMetricsRepository)
	importService := service.NewImportService(tradeRepository)
	syncService := service.NewSyncService(dbConn, tradingAccountRepository, tradeRepository, alpacaRepository)
	tradeFilterService := service.NewTradeFilterService(tradeRepository)

	apiHandler := &api.ApiHandler{
		Db:                       dbConn,
		JwtDecodeToken:           secrets.JwtDecodeToken,
		UserAccountRepository:    userAccountRepository,
		TradingAccountRepository: tradingAccountRepository,
		TradeRepository:          tradeRepository,
		ApiRequestRepository:     repository.NewApiRequestRepository(),
		PerformanceService:       performanceService,
		MetricsService:           metricsService,
		ImportService:            importService,
		SyncService:              syncService,
		TradeFilterService:       tradeFilterService,
	}

	return apiHandler, nil
}

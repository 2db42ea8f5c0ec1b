package main

import (
	"github.com/amaumene/gostremioccc/internal/cache"
	"github.com/amaumene/gostremioccc/internal/catalog"
	"github.com/amaumene/gostremioccc/internal/ccc"
	"github.com/amaumene/gostremioccc/internal/config"
	"github.com/amaumene/gostremioccc/internal/database"
	"github.com/amaumene/gostremioccc/internal/handlers"
	"github.com/amaumene/gostremioccc/internal/services"
	"github.com/amaumene/gostremioccc/pkg/logger"
)

var (
	appLogger        logger.Logger
	appConfig        *config.Config
	db               database.Database
	summaryCache     *cache.LRUCache
	handler          *handlers.Handler
	serviceContainer *services.Container
)

func initializeLogger() {
	appLogger = logger.New()
}

func initializeConfig() {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		appLogger.Fatalf("failed to load configuration: %v", err)
	}

	appLogger.Infof("[App] using catalog %s, formats %v", appConfig.BaseURL(), appConfig.Formats)
}

func initializeDatabase() {
	var err error
	db, err = database.NewBolt(appConfig.DatabasePath)
	if err != nil {
		appLogger.Fatalf("failed to initialize database: %v", err)
	}

	appLogger.Infof("[App] summary database initialized at %s", appConfig.DatabasePath)
}

func initializeServices() {
	summaryCache = cache.New(appConfig.CacheSize, appConfig.CacheTTLDuration())

	client := ccc.NewHTTPClient(appConfig.BaseURL(), appConfig.HTTPTimeout())
	provider := catalog.NewProvider(client, appConfig)

	serviceContainer = &services.Container{
		Provider: provider,
		Cache:    summaryCache,
		DB:       db,
		Logger:   logger.New(),
	}

	handler = handlers.New(serviceContainer, appConfig)

	appLogger.Infof("[App] services initialized successfully")
}

// Package services provides the dependency injection container wired at startup.
package services

import (
	"github.com/amaumene/gostremioccc/internal/cache"
	"github.com/amaumene/gostremioccc/internal/catalog"
	"github.com/amaumene/gostremioccc/internal/database"
	"github.com/amaumene/gostremioccc/pkg/logger"
)

// Container holds all application services.
type Container struct {
	Provider *catalog.Provider
	Cache    *cache.LRUCache
	DB       database.Database
	Logger   logger.Logger
}

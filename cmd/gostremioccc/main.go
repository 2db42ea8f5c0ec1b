package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gostremioccc/internal/middleware"
)

const cacheCleanupInterval = 1 * time.Hour

func main() {
	initializeLogger()
	initializeConfig()
	initializeDatabase()
	defer db.Close()

	initializeServices()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	summaryCache.StartCleanup(ctx, cacheCleanupInterval)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.CORS())
	r.Use(middleware.Gzip())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	appLogger.Infof("[App] starting HTTP server on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		appLogger.Fatalf("[App] server stopped: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"myGreenReco/app/echo-server/router"
	"myGreenReco/business/interaction"
	"myGreenReco/business/recommendation"
	"myGreenReco/business/sentiment"
	"myGreenReco/internal/middleware"
	"myGreenReco/internal/repository"
	"myGreenReco/internal/rest"
	"myGreenReco/pkg/config"
	"myGreenReco/pkg/logger"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting MyGreenReco", "version", cfg.App.Version, "store", cfg.Store.Backend)

	store, closeStore, err := repository.NewRecordStore(cfg)
	if err != nil {
		logger.Fatal("Failed to open record store", "error", err)
	}

	// Init service
	sentimentAgg := sentiment.NewAggregator(store, sentiment.NewVaderScorer())
	interactionAgg := interaction.NewAggregator(store)
	recoService := recommendation.NewService(sentimentAgg, interactionAgg, recommendation.Options{
		MinScore: cfg.Recommendation.MinScore,
		Limit:    cfg.Recommendation.Limit,
	})

	// Init handler
	recoHandler := rest.NewRecommendationHandler(recoService, cfg.Server.RequestTimeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Setup routes
	router.SetupRootRoutes(e, recoHandler)
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recoHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := closeStore(); err != nil {
		logger.Error("Record store close error", "error", err)
	}

	logger.Info("Server stopped")
}

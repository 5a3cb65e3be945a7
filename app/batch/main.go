package main

import (
	"context"
	"fmt"
	"log"
	"myGreenReco/business/interaction"
	"myGreenReco/business/recommendation"
	"myGreenReco/business/sentiment"
	"myGreenReco/internal/batch"
	"myGreenReco/internal/repository"
	"myGreenReco/pkg/config"
	"myGreenReco/pkg/logger"
	"net/http"
	"os"

	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	store, closeStore, err := repository.NewRecordStore(cfg)
	if err != nil {
		logger.Error("Failed to open record store", "error", err)
		fmt.Println(batch.Error(err).Body)
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("Record store close error", "error", err)
		}
	}()

	svc := recommendation.NewService(
		sentiment.NewAggregator(store, sentiment.NewVaderScorer()),
		interaction.NewAggregator(store),
		recommendation.Options{
			MinScore: cfg.Recommendation.MinScore,
			Limit:    cfg.Recommendation.Limit,
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.RequestTimeout)
	ctx = recommendation.WithTraceID(ctx, uuid.NewString())

	resp := batch.Run(ctx, svc)
	cancel()

	fmt.Println(resp.Body)

	if resp.StatusCode == http.StatusInternalServerError {
		return 1
	}
	return 0
}

package repository

import (
	"context"
	"fmt"
	"myGreenReco/domain"
	"myGreenReco/internal/repository/fixture"
	psqlRepo "myGreenReco/internal/repository/postgres"
	redisRepo "myGreenReco/internal/repository/redis"
	"myGreenReco/pkg/config"
	"myGreenReco/pkg/database"
	redisDB "myGreenReco/pkg/database/redis"
	"myGreenReco/pkg/logger"
)

// RecordStore is the read side of the four storefront collections.
type RecordStore interface {
	ScanReviews(ctx context.Context) ([]domain.Review, error)
	ScanInteractions(ctx context.Context, source domain.InteractionSource) ([]domain.Interaction, error)
}

// NewRecordStore opens the backend named by cfg.Store.Backend. The returned
// close function releases its connections.
func NewRecordStore(cfg *config.Config) (RecordStore, func() error, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("init postgres: %w", err)
		}
		logger.Info("Record store connected", "backend", cfg.Store.Backend, "host", cfg.Database.Host)
		return psqlRepo.NewRecordRepository(db), func() error { return database.ClosePostgres(db) }, nil

	case config.StoreBackendRedis:
		client, err := redisDB.NewRedisClient(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("init redis: %w", err)
		}
		logger.Info("Record store connected", "backend", cfg.Store.Backend, "host", cfg.Redis.RedisHost)
		return redisRepo.NewRecordRepository(client, cfg.Redis.KeyPrefix), func() error { return redisDB.CloseRedisClient(client) }, nil

	case config.StoreBackendFixture:
		repo, err := fixture.NewRecordRepository(cfg.Store.FixturePath)
		if err != nil {
			return nil, nil, fmt.Errorf("init fixture: %w", err)
		}
		logger.Info("Record store ready", "backend", cfg.Store.Backend, "path", cfg.Store.FixturePath)
		return repo, func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

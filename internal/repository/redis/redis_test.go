package redis

import (
	"context"
	"errors"
	"myGreenReco/domain"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestKeyUsesPrefix(t *testing.T) {
	repo := NewRecordRepository(nil, "reco")

	if got := repo.key(string(domain.SourceCart)); got != "reco:cart" {
		t.Errorf("key = %q, want reco:cart", got)
	}
	if got := repo.key(reviewsCollection); got != "reco:reviews" {
		t.Errorf("key = %q, want reco:reviews", got)
	}
}

func TestScanSurfacesConnectionErrors(t *testing.T) {
	repo := NewRecordRepository(unreachableClient(t), "reco")

	if _, err := repo.ScanReviews(context.Background()); err == nil {
		t.Error("expected error scanning reviews from unreachable Redis")
	}
	if _, err := repo.ScanInteractions(context.Background(), domain.SourceOrders); err == nil {
		t.Error("expected error scanning orders from unreachable Redis")
	}
}

func TestScanCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewRecordRepository(unreachableClient(t), "reco")
	if _, err := repo.ScanReviews(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

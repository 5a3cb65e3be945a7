package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"myGreenReco/domain"

	"github.com/redis/go-redis/v9"
)

const reviewsCollection = "reviews"

// RecordRepository reads records stored as JSON documents in one Redis list
// per collection, keyed "{prefix}:{collection}".
type RecordRepository struct {
	client *redis.Client
	prefix string
}

func NewRecordRepository(client *redis.Client, prefix string) *RecordRepository {
	return &RecordRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *RecordRepository) key(collection string) string {
	return fmt.Sprintf("%s:%s", r.prefix, collection)
}

func (r *RecordRepository) ScanReviews(ctx context.Context) ([]domain.Review, error) {
	raw, err := r.scan(ctx, reviewsCollection)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(raw))
	for i, item := range raw {
		var review domain.Review
		if err := json.Unmarshal([]byte(item), &review); err != nil {
			return nil, fmt.Errorf("failed to unmarshal review %d: %w", i, err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *RecordRepository) ScanInteractions(ctx context.Context, source domain.InteractionSource) ([]domain.Interaction, error) {
	raw, err := r.scan(ctx, string(source))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Interaction, 0, len(raw))
	for i, item := range raw {
		var rec struct {
			ProductID string `json:"productId"`
		}
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s record %d: %w", source, i, err)
		}
		out = append(out, domain.Interaction{
			ProductID: rec.ProductID,
			Source:    source,
		})
	}

	return out, nil
}

// scan reads the whole list. A missing key is an empty collection.
func (r *RecordRepository) scan(ctx context.Context, collection string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	vals, err := r.client.LRange(ctx, r.key(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s from Redis: %w", collection, err)
	}

	return vals, nil
}

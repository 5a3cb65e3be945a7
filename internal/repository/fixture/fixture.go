// Package fixture serves records from a YAML file. It backs local runs and
// the batch entry point when no database is at hand.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"myGreenReco/domain"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrFixturePathRequired = errors.New("fixture path is required")

type record struct {
	ProductID string `yaml:"productId"`
	Review    string `yaml:"review"`
}

type document struct {
	Wishlist []record `yaml:"wishlist"`
	Cart     []record `yaml:"cart"`
	Orders   []record `yaml:"orders"`
	Reviews  []record `yaml:"reviews"`
}

type RecordRepository struct {
	path string
}

func NewRecordRepository(path string) (*RecordRepository, error) {
	if path == "" {
		return nil, ErrFixturePathRequired
	}

	return &RecordRepository{path: path}, nil
}

// load re-reads the file on every scan so edits show up on the next request.
func (r *RecordRepository) load(ctx context.Context) (*document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	return &doc, nil
}

func (r *RecordRepository) ScanReviews(ctx context.Context) ([]domain.Review, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(doc.Reviews))
	for _, rec := range doc.Reviews {
		reviews = append(reviews, domain.Review{
			ProductID: rec.ProductID,
			Review:    rec.Review,
		})
	}

	return reviews, nil
}

func (r *RecordRepository) ScanInteractions(ctx context.Context, source domain.InteractionSource) ([]domain.Interaction, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var recs []record
	switch source {
	case domain.SourceWishlist:
		recs = doc.Wishlist
	case domain.SourceCart:
		recs = doc.Cart
	case domain.SourceOrders:
		recs = doc.Orders
	default:
		return nil, fmt.Errorf("unknown interaction source %q", source)
	}

	out := make([]domain.Interaction, 0, len(recs))
	for _, rec := range recs {
		out = append(out, domain.Interaction{
			ProductID: rec.ProductID,
			Source:    source,
		})
	}

	return out, nil
}

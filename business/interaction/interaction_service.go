package interaction

import (
	"context"
	"fmt"
	"myGreenReco/domain"
	"myGreenReco/pkg/logger"
)

// Weights are the fixed per-source interaction weights.
var Weights = map[domain.InteractionSource]float64{
	domain.SourceWishlist: 1.0,
	domain.SourceCart:     1.5,
	domain.SourceOrders:   2.0,
}

// InteractionRepository contract interface
type InteractionRepository interface {
	ScanInteractions(ctx context.Context, source domain.InteractionSource) ([]domain.Interaction, error)
}

type Aggregator struct {
	interactionRepo InteractionRepository
}

func NewAggregator(interactionRepo InteractionRepository) *Aggregator {
	return &Aggregator{
		interactionRepo: interactionRepo,
	}
}

// Aggregate scans wishlist, cart and orders in that order and sums the
// source weight of every occurrence per product.
func (a *Aggregator) Aggregate(ctx context.Context) (domain.ProductScores, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	scores := make(domain.ProductScores)
	for _, source := range domain.InteractionSources {
		records, err := a.interactionRepo.ScanInteractions(ctx, source)
		if err != nil {
			logger.Error("failed to scan interactions", "source", source, "error", err)
			return nil, fmt.Errorf("scan %s: %w", source, err)
		}

		Accumulate(scores, records, Weights[source])

		logger.Debug("interaction_scan",
			"source", source,
			"records", len(records),
		)
	}

	return scores, nil
}

// Accumulate adds weight to scores for every record with a product id.
func Accumulate(scores domain.ProductScores, records []domain.Interaction, weight float64) {
	for _, r := range records {
		if r.ProductID == "" {
			continue
		}
		scores[r.ProductID] += weight
	}
}

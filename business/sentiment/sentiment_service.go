package sentiment

import (
	"context"
	"fmt"
	"myGreenReco/domain"
	"myGreenReco/pkg/logger"
)

// ReviewRepository contract interface
type ReviewRepository interface {
	ScanReviews(ctx context.Context) ([]domain.Review, error)
}

type Aggregator struct {
	reviewRepo ReviewRepository
	scorer     Scorer
}

func NewAggregator(reviewRepo ReviewRepository, scorer Scorer) *Aggregator {
	return &Aggregator{
		reviewRepo: reviewRepo,
		scorer:     scorer,
	}
}

// Aggregate scans every review and returns the mean compound score per
// product. Reviews without a product id or text are skipped, so products
// with no qualifying review are absent rather than zero.
func (a *Aggregator) Aggregate(ctx context.Context) (domain.ProductScores, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews, err := a.reviewRepo.ScanReviews(ctx)
	if err != nil {
		logger.Error("failed to scan reviews", err)
		return nil, fmt.Errorf("scan reviews: %w", err)
	}

	return a.fold(reviews), nil
}

func (a *Aggregator) fold(reviews []domain.Review) domain.ProductScores {
	type acc struct {
		sum   float64
		count int
	}

	perProduct := make(map[string]*acc)
	skipped := 0
	for _, r := range reviews {
		if r.ProductID == "" || r.Review == "" {
			skipped++
			continue
		}

		score := a.scorer.Score(Normalize(r.Review))

		p, ok := perProduct[r.ProductID]
		if !ok {
			p = &acc{}
			perProduct[r.ProductID] = p
		}
		p.sum += score
		p.count++
	}

	out := make(domain.ProductScores, len(perProduct))
	for pid, p := range perProduct {
		out[pid] = p.sum / float64(p.count)
	}

	logger.Debug("sentiment_aggregate",
		"reviews", len(reviews),
		"skipped", skipped,
		"products", len(out),
	)

	return out
}

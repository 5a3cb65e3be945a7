package recommendation

import (
	"context"
	"fmt"
	"myGreenReco/domain"
	"myGreenReco/pkg/logger"
	"time"
)

// NoDataMessage is the advisory returned when no product has any signal.
const NoDataMessage = "No sufficient data for recommendations."

type Outcome int

const (
	OutcomeRecommended Outcome = iota
	OutcomeEmpty
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRecommended:
		return "recommended"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is what one pipeline run produced. Entry points decide how each
// outcome is rendered.
type Result struct {
	Outcome  Outcome
	Products []domain.RecommendationEntry
	Message  string
	Err      error
}

// ---- Aggregator interfaces ----

type SentimentAggregator interface {
	Aggregate(ctx context.Context) (domain.ProductScores, error)
}

type InteractionAggregator interface {
	Aggregate(ctx context.Context) (domain.ProductScores, error)
}

type Options struct {
	MinScore float64
	Limit    int
}

func DefaultOptions() Options {
	return Options{
		MinScore: DefaultMinScore,
		Limit:    DefaultLimit,
	}
}

type Service struct {
	sentimentAgg   SentimentAggregator
	interactionAgg InteractionAggregator
	opts           Options
}

func NewService(sentimentAgg SentimentAggregator, interactionAgg InteractionAggregator, opts Options) *Service {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}

	return &Service{
		sentimentAgg:   sentimentAgg,
		interactionAgg: interactionAgg,
		opts:           opts,
	}
}

// Recommend runs the full pipeline with the configured limit.
func (s *Service) Recommend(ctx context.Context) Result {
	return s.run(ctx, s.opts.Limit)
}

// RecommendN runs the pipeline returning at most n products. n is capped by
// the configured limit.
func (s *Service) RecommendN(ctx context.Context, n int) Result {
	if n <= 0 || n > s.opts.Limit {
		n = s.opts.Limit
	}
	return s.run(ctx, n)
}

func (s *Service) run(ctx context.Context, limit int) (res Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = failed(fmt.Errorf("panic: %v", r))
			RecommendOutcomesTotal.WithLabelValues(res.Outcome.String()).Inc()
			logger.Error("recommendation pipeline panicked",
				"trace_id", TraceIDFromContext(ctx),
				"error", res.Err,
			)
		}
	}()

	res = s.compute(ctx, limit)

	RecommendOutcomesTotal.WithLabelValues(res.Outcome.String()).Inc()

	tid := TraceIDFromContext(ctx)
	if res.Outcome == OutcomeFailed {
		logger.Error("recommendation pipeline failed",
			"trace_id", tid,
			"error", res.Err,
		)
		return res
	}

	logger.Info("recommendation pipeline finished",
		"trace_id", tid,
		"outcome", res.Outcome.String(),
		"products", len(res.Products),
		"elapsed", time.Since(start).String(),
	)

	return res
}

func (s *Service) compute(ctx context.Context, limit int) Result {
	if err := ctx.Err(); err != nil {
		return failed(fmt.Errorf("context error: %w", err))
	}

	sentimentScores, err := s.sentimentAgg.Aggregate(ctx)
	if err != nil {
		return failed(fmt.Errorf("sentiment scores: %w", err))
	}

	interactionScores, err := s.interactionAgg.Aggregate(ctx)
	if err != nil {
		return failed(fmt.Errorf("interaction scores: %w", err))
	}

	combined := Combine(interactionScores, sentimentScores)
	RecommendCandidates.Observe(float64(len(combined)))

	if len(combined) == 0 {
		return Result{
			Outcome:  OutcomeEmpty,
			Products: []domain.RecommendationEntry{},
			Message:  NoDataMessage,
		}
	}

	return Result{
		Outcome:  OutcomeRecommended,
		Products: Rank(combined, s.opts.MinScore, limit),
	}
}

func failed(err error) Result {
	return Result{
		Outcome: OutcomeFailed,
		Message: err.Error(),
		Err:     err,
	}
}

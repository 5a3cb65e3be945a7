package rest

import (
	"context"
	"myGreenReco/business/recommendation"
	"myGreenReco/domain"
	"myGreenReco/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const HomeMessage = "✅ MyGreenReco API running. Visit /recommend for live product recommendations."

type (
	RecommendationHandler struct {
		validate              *validator.Validate
		recommendationService RecommendationService
		timeout               time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context) recommendation.Result
		RecommendN(ctx context.Context, n int) recommendation.Result
	}

	RecommendResponse struct {
		RecommendedProducts []domain.RecommendationEntry `json:"RecommendedProducts"`
		Message             string                       `json:"message,omitempty"`
	}

	RecommendErrorResponse struct {
		Error string `json:"error"`
	}

	RecommendQuery struct {
		Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
	}
)

func NewRecommendationHandler(svc RecommendationService, timeout time.Duration) *RecommendationHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RecommendationHandler{
		validate:              validator.New(),
		recommendationService: svc,
		timeout:               timeout,
	}
}

// GET /
func (h *RecommendationHandler) Home(c echo.Context) error {
	return c.String(http.StatusOK, HomeMessage)
}

// GET /recommend
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res := h.recommendationService.Recommend(ctx)

	code, body := http.StatusOK, any(nil)
	switch res.Outcome {
	case recommendation.OutcomeFailed:
		code = http.StatusInternalServerError
		body = RecommendErrorResponse{Error: res.Message}
	case recommendation.OutcomeEmpty:
		body = RecommendResponse{
			RecommendedProducts: []domain.RecommendationEntry{},
			Message:             res.Message,
		}
	default:
		body = RecommendResponse{RecommendedProducts: nonNil(res.Products)}
	}

	observe("/recommend", code, start)

	return c.JSON(code, body)
}

// GET /api/v1/recommendations?limit=10
func (h *RecommendationHandler) RecommendAPI(c echo.Context) error {
	start := time.Now()

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res := h.recommendationService.RecommendN(ctx, q.Limit)
	if res.Outcome == recommendation.OutcomeFailed {
		observe("/api/v1/recommendations", http.StatusInternalServerError, start)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: res.Message})
	}

	observe("/api/v1/recommendations", http.StatusOK, start)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(nonNil(res.Products)))
}

func observe(route string, code int, start time.Time) {
	metrics.RecommendLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func nonNil(entries []domain.RecommendationEntry) []domain.RecommendationEntry {
	if entries == nil {
		return []domain.RecommendationEntry{}
	}
	return entries
}

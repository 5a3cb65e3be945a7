// Package batch renders a single pipeline run as a status code and body,
// the shape offline callers and schedulers consume.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"myGreenReco/business/recommendation"
	"myGreenReco/domain"
	"net/http"
)

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type Recommender interface {
	Recommend(ctx context.Context) recommendation.Result
}

type payload struct {
	RecommendedProducts []domain.RecommendationEntry `json:"RecommendedProducts"`
}

// Run executes the pipeline once. Unlike the HTTP route, an empty score
// mapping is reported as 404.
func Run(ctx context.Context, svc Recommender) Response {
	res := svc.Recommend(ctx)

	switch res.Outcome {
	case recommendation.OutcomeFailed:
		return failure(res.Message)
	case recommendation.OutcomeEmpty:
		return render(http.StatusNotFound, res.Message)
	}

	products := res.Products
	if products == nil {
		products = []domain.RecommendationEntry{}
	}

	body, err := json.MarshalIndent(payload{RecommendedProducts: products}, "", "    ")
	if err != nil {
		return Error(err)
	}

	return Response{StatusCode: http.StatusOK, Body: string(body)}
}

// Error renders a failure that happened outside the pipeline, such as the
// record store being unreachable at startup.
func Error(err error) Response {
	return failure(err.Error())
}

func failure(msg string) Response {
	return render(http.StatusInternalServerError, fmt.Sprintf("Error: %s", msg))
}

// render encodes a message as a JSON string body.
func render(code int, msg string) Response {
	body, _ := json.Marshal(msg)
	return Response{StatusCode: code, Body: string(body)}
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"myGreenReco/business/recommendation"
	"myGreenReco/domain"
	"myGreenReco/internal/middleware"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

type fakeRecommendationService struct {
	result      recommendation.Result
	gotN        int
	hadDeadline bool
}

func (f *fakeRecommendationService) Recommend(ctx context.Context) recommendation.Result {
	_, f.hadDeadline = ctx.Deadline()
	return f.result
}

func (f *fakeRecommendationService) RecommendN(ctx context.Context, n int) recommendation.Result {
	f.gotN = n
	return f.result
}

func serve(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestHome(t *testing.T) {
	h := NewRecommendationHandler(&fakeRecommendationService{}, time.Second)

	rec := serve(t, h.Home, "/")

	if rec.Code != http.StatusOK {
		t.Errorf("code = %d, want 200", rec.Code)
	}
	if rec.Body.String() != HomeMessage {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRecommendSuccess(t *testing.T) {
	svc := &fakeRecommendationService{result: recommendation.Result{
		Outcome: recommendation.OutcomeRecommended,
		Products: []domain.RecommendationEntry{
			{ProductID: "P3", Score: 2.5},
			{ProductID: "P1", Score: 1.5},
		},
	}}
	h := NewRecommendationHandler(svc, time.Second)

	rec := serve(t, h.Recommend, "/recommend")

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	if !svc.hadDeadline {
		t.Error("expected the pipeline context to carry a deadline")
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if _, ok := body["message"]; ok {
		t.Error("success body must not carry a message")
	}

	var products []map[string]any
	if err := json.Unmarshal(body["RecommendedProducts"], &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 || products[0]["productId"] != "P3" || products[0]["score"] != 2.5 {
		t.Errorf("unexpected products %v", products)
	}
}

func TestRecommendEmpty(t *testing.T) {
	svc := &fakeRecommendationService{result: recommendation.Result{
		Outcome:  recommendation.OutcomeEmpty,
		Products: []domain.RecommendationEntry{},
		Message:  recommendation.NoDataMessage,
	}}
	h := NewRecommendationHandler(svc, time.Second)

	rec := serve(t, h.Recommend, "/recommend")

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	got := strings.TrimSpace(rec.Body.String())
	want := `{"RecommendedProducts":[],"message":"No sufficient data for recommendations."}`
	if got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestRecommendNothingAboveThresholdRendersEmptyList(t *testing.T) {
	svc := &fakeRecommendationService{result: recommendation.Result{Outcome: recommendation.OutcomeRecommended}}
	h := NewRecommendationHandler(svc, time.Second)

	rec := serve(t, h.Recommend, "/recommend")

	if got := strings.TrimSpace(rec.Body.String()); got != `{"RecommendedProducts":[]}` {
		t.Errorf("body = %s", got)
	}
}

func TestRecommendFailure(t *testing.T) {
	err := errors.New("interaction scores: scan cart: connection refused")
	svc := &fakeRecommendationService{result: recommendation.Result{
		Outcome: recommendation.OutcomeFailed,
		Message: err.Error(),
		Err:     err,
	}}
	h := NewRecommendationHandler(svc, time.Second)

	rec := serve(t, h.Recommend, "/recommend")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", rec.Code)
	}
	var body RecommendErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != err.Error() {
		t.Errorf("error = %q, want %q", body.Error, err.Error())
	}
}

func TestRecommendAPI(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		outcome  recommendation.Outcome
		wantCode int
		wantN    int
	}{
		{"default limit", "/api/v1/recommendations", recommendation.OutcomeRecommended, http.StatusOK, 0},
		{"explicit limit", "/api/v1/recommendations?limit=5", recommendation.OutcomeRecommended, http.StatusOK, 5},
		{"limit too large", "/api/v1/recommendations?limit=500", recommendation.OutcomeRecommended, http.StatusBadRequest, 0},
		{"limit not a number", "/api/v1/recommendations?limit=ten", recommendation.OutcomeRecommended, http.StatusBadRequest, 0},
		{"pipeline failure", "/api/v1/recommendations?limit=3", recommendation.OutcomeFailed, http.StatusInternalServerError, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRecommendationService{result: recommendation.Result{Outcome: tt.outcome, Message: "boom"}}
			h := NewRecommendationHandler(svc, time.Second)

			rec := serve(t, h.RecommendAPI, tt.target)

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if svc.gotN != tt.wantN {
				t.Errorf("RecommendN called with %d, want %d", svc.gotN, tt.wantN)
			}
		})
	}
}

type panickingAggregator struct{}

func (panickingAggregator) Aggregate(ctx context.Context) (domain.ProductScores, error) {
	var scores domain.ProductScores
	scores["P1"] = 1
	return scores, nil
}

func TestRecommendPipelinePanicRendersErrorBody(t *testing.T) {
	svc := recommendation.NewService(panickingAggregator{}, panickingAggregator{}, recommendation.DefaultOptions())
	h := NewRecommendationHandler(svc, time.Second)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echomiddleware.Recover())
	e.GET("/recommend", h.Recommend)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommend", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body["error"], "assignment to entry in nil map") {
		t.Errorf("body = %v, want an error key carrying the panic", body)
	}
	if _, ok := body["message"]; ok {
		t.Error("pipeline failure must not fall through to the generic error handler")
	}
}

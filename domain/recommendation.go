package domain

// ProductScores maps a product id to a score.
type ProductScores map[string]float64

type RecommendationEntry struct {
	ProductID string  `json:"productId"`
	Score     float64 `json:"score"`
}

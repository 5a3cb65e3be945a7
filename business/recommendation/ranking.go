package recommendation

import (
	"myGreenReco/domain"
	"sort"
	"strconv"
)

const (
	DefaultMinScore = 0.1
	DefaultLimit    = 20
)

// Rank sorts scores descending with ties broken by ascending product id,
// keeps entries with score >= minScore, truncates to limit and rounds each
// score to two decimals.
func Rank(scores domain.ProductScores, minScore float64, limit int) []domain.RecommendationEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	entries := make([]domain.RecommendationEntry, 0, len(scores))
	for pid, score := range scores {
		entries = append(entries, domain.RecommendationEntry{ProductID: pid, Score: score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].ProductID < entries[j].ProductID
	})

	out := make([]domain.RecommendationEntry, 0, limit)
	for _, e := range entries {
		if len(out) == limit {
			break
		}
		if e.Score < minScore {
			// sorted descending, nothing after this qualifies
			break
		}
		out = append(out, domain.RecommendationEntry{ProductID: e.ProductID, Score: Round2(e.Score)})
	}

	return out
}

// Round2 rounds to two decimal places from the exact binary value of v.
// Exact ties go to the even digit, so 2.675 gives 2.67 and 0.125 gives 0.12.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

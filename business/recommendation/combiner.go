package recommendation

import "myGreenReco/domain"

// SentimentWeight boosts the average review sentiment in the combined score.
const SentimentWeight = 2.0

// Combine merges interaction and sentiment scores. Every product from either
// mapping is present: interaction contributes its raw sum, sentiment
// contributes SentimentWeight times its mean.
func Combine(interactionScores, sentimentScores domain.ProductScores) domain.ProductScores {
	combined := make(domain.ProductScores, len(interactionScores)+len(sentimentScores))

	for pid, score := range interactionScores {
		combined[pid] = score
		if s, ok := sentimentScores[pid]; ok {
			combined[pid] += s * SentimentWeight
		}
	}

	for pid, s := range sentimentScores {
		if _, ok := combined[pid]; !ok {
			combined[pid] = s * SentimentWeight
		}
	}

	return combined
}

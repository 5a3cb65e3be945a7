package sentiment

import (
	"strconv"
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer maps review text to a compound polarity score in [-1, 1].
type Scorer interface {
	Score(text string) float64
}

type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Compound scores are reported to four decimals.
const compoundPrecision = 4

func (v *VaderScorer) Score(text string) float64 {
	return roundTo(v.analyzer.PolarityScores(text).Compound, compoundPrecision)
}

func roundTo(v float64, prec int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', prec, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Normalize trims and lowercases review text before scoring.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

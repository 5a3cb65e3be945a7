package sentiment

import (
	"math"
	"testing"
)

func TestVaderScorerPolarity(t *testing.T) {
	scorer := NewVaderScorer()

	tests := []struct {
		text     string
		positive bool
	}{
		{"great product", true},
		{"i love it", true},
		{"terrible, broke after one day", false},
		{"i hate this", false},
	}

	for _, tt := range tests {
		score := scorer.Score(tt.text)
		if score < -1 || score > 1 {
			t.Errorf("Score(%q) = %v, outside [-1, 1]", tt.text, score)
		}
		if tt.positive && score <= 0 {
			t.Errorf("Score(%q) = %v, want positive", tt.text, score)
		}
		if !tt.positive && score >= 0 {
			t.Errorf("Score(%q) = %v, want negative", tt.text, score)
		}
	}
}

func TestVaderScorerNeutralText(t *testing.T) {
	if got := NewVaderScorer().Score("the box"); got != 0 {
		t.Errorf("expected neutral text to score 0, got %v", got)
	}
}

func TestVaderScorerRoundsCompound(t *testing.T) {
	scorer := NewVaderScorer()

	for _, text := range []string{"great product", "i love it", "terrible, broke after one day"} {
		got := scorer.Score(text)
		if scaled := got * 1e4; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Errorf("Score(%q) = %v, want at most four decimals", text, got)
		}
	}

	if got := scorer.Score("great product"); got != 0.6249 {
		t.Errorf("Score(%q) = %v, want 0.6249", "great product", got)
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.62489337, 0.6249},
		{-0.54231, -0.5423},
		{0, 0},
		{1, 1},
	}

	for _, tt := range tests {
		if got := roundTo(tt.in, compoundPrecision); got != tt.want {
			t.Errorf("roundTo(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

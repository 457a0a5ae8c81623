package sentiment

import (
	"math"
	"strings"
)

// Analyze scores the title and text together.
func (a *analyzerImpl) Analyze(title, text string) Result {
	score := a.Score(title + " " + text)
	return Result{
		Label: Label(score),
		Score: score,
	}
}

// Score returns the VADER compound score of s in [-1, 1], rounded to four
// decimals. Runs of whitespace count as one separator.
func (a *analyzerImpl) Score(s string) float64 {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return 0
	}
	return round(a.vader.PolarityScores(s).Compound)
}

func round(f float64) float64 {
	p := math.Pow(10, scoreDecimals)
	return math.Round(f*p) / p
}

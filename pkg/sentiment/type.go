package sentiment

import "github.com/jonreiter/govader"

// Result is the derived sentiment of a review.
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type analyzerImpl struct {
	vader *govader.SentimentIntensityAnalyzer
}

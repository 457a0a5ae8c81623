package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"
)

// IAnalyzer scores review text.
// Implementations are pure and safe for concurrent use.
type IAnalyzer interface {
	Analyze(title, text string) Result
	Score(s string) float64
}

var (
	vaderOnce sync.Once
	vader     *govader.SentimentIntensityAnalyzer
)

// New returns the VADER backed analyzer. The lexicon is loaded once per
// process and shared.
func New() IAnalyzer {
	vaderOnce.Do(func() {
		vader = govader.NewSentimentIntensityAnalyzer()
	})
	return &analyzerImpl{vader: vader}
}

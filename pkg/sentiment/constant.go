package sentiment

const (
	// LabelPositive is assigned when the compound score is at or above PositiveThreshold.
	LabelPositive = "positive"
	// LabelNegative is assigned when the compound score is at or below NegativeThreshold.
	LabelNegative = "negative"
	// LabelNeutral is assigned to everything in between.
	LabelNeutral = "neutral"

	// PositiveThreshold is inclusive.
	PositiveThreshold = 0.05
	// NegativeThreshold is inclusive.
	NegativeThreshold = -0.05
)

const scoreDecimals = 4

// Labels lists every label in a stable order.
var Labels = []string{LabelPositive, LabelNegative, LabelNeutral}

// IsLabel reports whether s is one of the known labels.
func IsLabel(s string) bool {
	switch s {
	case LabelPositive, LabelNegative, LabelNeutral:
		return true
	}
	return false
}

// Label maps a compound score to its label.
func Label(score float64) string {
	switch {
	case score >= PositiveThreshold:
		return LabelPositive
	case score <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

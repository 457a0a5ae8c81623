package memory

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lowercases s and strips diacritics, like the index's folding analyzer.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// span is a word of the original text and its folded form.
type span struct {
	start, end int
	folded     string
}

// words splits s on anything that is not a letter or digit.
func words(s string) []span {
	var out []span
	start := -1
	for i, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r)
		switch {
		case isWord && start < 0:
			start = i
		case !isWord && start >= 0:
			out = append(out, span{start: start, end: i, folded: fold(s[start:i])})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, span{start: start, end: len(s), folded: fold(s[start:])})
	}
	return out
}

// maxEdits mirrors fuzziness AUTO: exact up to 2 runes, one edit up to 5,
// two beyond.
func maxEdits(term string) int {
	n := len([]rune(term))
	switch {
	case n <= 2:
		return 0
	case n <= 5:
		return 1
	default:
		return 2
	}
}

// editParams caps the distance computation at one and two edits.
var editParams = [...]*levenshtein.Params{
	1: levenshtein.NewParams().MaxCost(1),
	2: levenshtein.NewParams().MaxCost(2),
}

func fuzzyEqual(term, word string) bool {
	if term == word {
		return true
	}
	k := maxEdits(term)
	if k == 0 {
		return false
	}
	return levenshtein.Distance(term, word, editParams[k]) <= k
}

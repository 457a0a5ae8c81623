package memory

import (
	"strings"

	"review-srv/internal/model"
	"review-srv/internal/search"
)

const (
	textWeight  = 2.0
	titleWeight = 1.0

	textFragmentSize  = 160
	titleFragmentSize = 120
)

// matchFilters applies the exact filters. DateTo is exclusive.
func matchFilters(f search.Filters, r model.Review) bool {
	if f.ProductID != "" && r.ProductID != f.ProductID {
		return false
	}
	if f.Sentiment != "" && r.SentimentLabel != f.Sentiment {
		return false
	}
	if f.MinRating != nil && r.Rating < *f.MinRating {
		return false
	}
	if f.MaxRating != nil && r.Rating > *f.MaxRating {
		return false
	}
	if f.DateFrom != nil && r.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && !r.CreatedAt.Before(*f.DateTo) {
		return false
	}
	return true
}

type keywordMatch struct {
	score      float64
	full       bool
	highlights map[string][]string
}

// matchKeyword evaluates q against title and text. ok is false when no term
// matched.
func matchKeyword(q string, r model.Review) (keywordMatch, bool) {
	terms := uniqueTerms(q)
	if len(terms) == 0 {
		return keywordMatch{}, false
	}

	textWords := words(r.Text)
	titleWords := words(r.Title)

	var m keywordMatch
	matched := 0
	textHits := map[int]struct{}{}
	titleHits := map[int]struct{}{}
	for _, term := range terms {
		inText := markHits(term, textWords, textHits)
		inTitle := markHits(term, titleWords, titleHits)
		if inText {
			m.score += textWeight
		}
		if inTitle {
			m.score += titleWeight
		}
		if inText || inTitle {
			matched++
		}
	}
	if matched == 0 {
		return keywordMatch{}, false
	}

	m.full = matched == len(terms)
	if m.full {
		m.score *= 2
	}
	m.score /= float64(len(terms))

	m.highlights = map[string][]string{}
	if frag := highlight(r.Text, textWords, textHits, textFragmentSize); frag != "" {
		m.highlights["text"] = []string{frag}
	}
	if frag := highlight(r.Title, titleWords, titleHits, titleFragmentSize); frag != "" {
		m.highlights["title"] = []string{frag}
	}
	return m, true
}

func uniqueTerms(q string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, w := range words(q) {
		if _, ok := seen[w.folded]; ok {
			continue
		}
		seen[w.folded] = struct{}{}
		out = append(out, w.folded)
	}
	return out
}

func markHits(term string, ws []span, hits map[int]struct{}) bool {
	found := false
	for i, w := range ws {
		if fuzzyEqual(term, w.folded) {
			hits[i] = struct{}{}
			found = true
		}
	}
	return found
}

// highlight wraps hit words in <em> tags inside a window of about size
// bytes starting near the first hit.
func highlight(s string, ws []span, hits map[int]struct{}, size int) string {
	first := -1
	for i := range ws {
		if _, ok := hits[i]; ok {
			first = i
			break
		}
	}
	if first < 0 {
		return ""
	}

	// start always lands on a word so the snippet never splits a rune.
	start := 0
	if ws[first].start > size/2 {
		target := ws[first].start - size/4
		start = ws[0].start
		for i := first; i >= 0; i-- {
			if ws[i].start <= target {
				start = ws[i].start
				break
			}
		}
	}
	end := min(len(s), start+size)

	var b strings.Builder
	pos := start
	for i, w := range ws {
		if w.start < start || w.end > end {
			continue
		}
		if _, ok := hits[i]; !ok {
			continue
		}
		b.WriteString(s[pos:w.start])
		b.WriteString("<em>")
		b.WriteString(s[w.start:w.end])
		b.WriteString("</em>")
		pos = w.end
	}
	for end < len(s) && end > pos && !isBoundary(s, end) {
		end--
	}
	b.WriteString(s[pos:end])
	return strings.TrimSpace(b.String())
}

func isBoundary(s string, i int) bool {
	return i >= len(s) || s[i] == ' '
}

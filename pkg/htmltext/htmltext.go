// Package htmltext turns user supplied review text into plain text.
package htmltext

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func strictPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
		policy.AddSpaceWhenStrippingTag(true)
	})
	return policy
}

// Clean unescapes entities, drops every tag (a tag becomes a space) and
// collapses runs of whitespace.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	s = strictPolicy().Sanitize(s)
	// Sanitize escapes what it keeps.
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

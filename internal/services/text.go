package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// MaxSearchLength bounds the search text in runes.
const MaxSearchLength = 100

// searchText trims the query and caps its length. It is matched literally
// and never rendered, so markup is left alone.
func searchText(s string) string {
	s = strings.TrimSpace(s)

	if runes := []rune(s); len(runes) > MaxSearchLength {
		s = strings.TrimSpace(string(runes[:MaxSearchLength]))
	}

	return s
}

// plainText strips markup from user input and returns the visible text.
func plainText(policy *bluemonday.Policy, s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

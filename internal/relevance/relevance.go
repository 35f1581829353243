// Package relevance implements the binary include/exclude decision over raw
// article text. Matching is plain case-insensitive substring containment,
// not tokenization: that cheaply catches multi-word phrases and language
// variants, at the cost of occasional over/under-matching. That trade-off is
// part of the contract and must not be "improved".
package relevance

import "strings"

// Filter holds the two disjoint keyword vocabularies.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter lower-cases both vocabularies once up front.
func NewFilter(include, exclude []string) *Filter {
	return &Filter{
		include: lowerAll(include),
		exclude: lowerAll(exclude),
	}
}

// Relevant decides whether an article stays in the pipeline. Exclusion is
// checked first and is absolute: one exclusion hit rejects the article even
// when inclusion terms are present too. Otherwise at least one inclusion
// term must appear.
func (f *Filter) Relevant(text string) bool {
	text = strings.ToLower(text)
	if ContainsAny(text, f.exclude) {
		return false
	}
	return ContainsAny(text, f.include)
}

// ContainsAny reports whether any keyword is a substring of text. Both sides
// are expected to be lower-cased already.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// CountMatches returns how many of the keywords appear in text.
func CountMatches(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}

func lowerAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, strings.ToLower(strings.TrimSpace(kw)))
	}
	return out
}

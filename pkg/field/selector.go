package field

import (
	"fmt"
	"strings"

	"github.com/tidwall/match"
)

// Selector is a parsed field selector.
type Selector struct {
	raw   string
	terms []string
}

// ParseSelector splits a selector into its terms.
func ParseSelector(selector string) (Selector, error) {
	parts := strings.Split(selector, ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		term := strings.TrimPrefix(strings.TrimSpace(part), "#")
		if term == "" {
			return Selector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, selector)
		}
		terms = append(terms, term)
	}
	return Selector{raw: selector, terms: terms}, nil
}

// String returns the selector as written.
func (s Selector) String() string {
	return s.raw
}

// Matches reports whether any term matches id.
func (s Selector) Matches(id string) bool {
	for _, term := range s.terms {
		if matchTerm(term, id) {
			return true
		}
	}
	return false
}

// Filter returns the fields matched by the selector in term order, then
// source order. A field is returned at most once.
func (s Selector) Filter(fields []Field) []Field {
	var (
		out  []Field
		seen = make(map[int]struct{})
	)
	for _, term := range s.terms {
		for i, f := range fields {
			if _, ok := seen[i]; ok {
				continue
			}
			if matchTerm(term, f.ID) {
				seen[i] = struct{}{}
				out = append(out, f)
			}
		}
	}
	return out
}

func matchTerm(term, id string) bool {
	if !match.IsPattern(term) {
		return term == id
	}
	return match.Match(id, term)
}

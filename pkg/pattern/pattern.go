package pattern

import (
	"regexp"
	"strings"
)

const (
	letterExpr = `[A-Za-z]`
	digitExpr  = `[0-9]`
	anyExpr    = `(?s:.)`
)

// Matcher tests values against a compiled pattern.
type Matcher struct {
	source string
	exact  bool
	re     *regexp.Regexp
}

// Compile translates p into a matcher that succeeds when the pattern occurs
// anywhere in the value.
func Compile(p string) Matcher {
	return compile(p, false)
}

// CompileExact translates p into a matcher that succeeds only when the whole
// value matches the pattern.
func CompileExact(p string) Matcher {
	return compile(p, true)
}

func compile(p string, exact bool) Matcher {
	expr := Translate(p)
	if exact {
		expr = "^" + expr + "$"
	}
	// Every fragment is either a fixed class or a quoted literal, so the
	// expression is always valid.
	return Matcher{source: p, exact: exact, re: regexp.MustCompile(expr)}
}

// Translate returns the regular expression equivalent of p without anchors.
func Translate(p string) string {
	var b strings.Builder
	b.Grow(len(p) * 2)
	for _, r := range p {
		b.WriteString(fragment(r))
	}
	return b.String()
}

func fragment(r rune) string {
	switch r {
	case '@':
		return letterExpr
	case '#':
		return digitExpr
	case '?':
		return anyExpr
	default:
		return regexp.QuoteMeta(string(r))
	}
}

// Match reports whether value satisfies the pattern.
func (m Matcher) Match(value string) bool {
	if m.re == nil {
		// Zero Matcher behaves like the empty pattern.
		return true
	}
	return m.re.MatchString(value)
}

// String returns the source pattern.
func (m Matcher) String() string {
	return m.source
}

// Expr returns the generated regular expression.
func (m Matcher) Expr() string {
	if m.re == nil {
		return ""
	}
	return m.re.String()
}

// Exact reports whether the matcher is anchored to the whole value.
func (m Matcher) Exact() bool {
	return m.exact
}

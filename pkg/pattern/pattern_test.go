package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/pattern"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		value   string
		want    bool
	}{
		{"digits and letters", "##-@@", "12-ab", true},
		{"letter where digit expected", "##-@@", "1a-ab", false},
		{"digit where letter expected", "##-@@", "12-a1", false},
		{"substring search", "##-@@", "zip 12-ab here", true},
		{"wildcard any char", "a?c", "abc", true},
		{"wildcard matches newline", "a?c", "a\nc", true},
		{"wildcard needs a char", "a?c", "ac", false},
		{"dot is literal", "#.#", "1.5", true},
		{"dot does not match other chars", "#.#", "1x5", false},
		{"parentheses are literal", "(###)", "(555)", true},
		{"braces are literal", "{#}", "{1}", true},
		{"brackets are literal", "[@]", "[a]", true},
		{"caret and dollar are literal", "^$", "a^$b", true},
		{"pipe is literal", "a|b", "a", false},
		{"star is literal", "#*", "1*", true},
		{"star does not repeat", "#*", "11", false},
		{"plus is literal", "+#", "+1", true},
		{"backslash is literal", `a\d`, `a\d`, true},
		{"backslash does not escape", `a\d`, "a1", false},
		{"letters are ASCII only", "@", "é", false},
		{"plain text", "abc", "xxabcxx", true},
		{"empty pattern matches anything", "", "anything", true},
		{"empty pattern matches empty value", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pattern.Compile(tt.pattern).Match(tt.value))
		})
	}
}

func TestCompileExact(t *testing.T) {
	t.Parallel()

	m := pattern.CompileExact("##-@@")
	assert.True(t, m.Match("12-ab"))
	assert.False(t, m.Match("x12-ab"))
	assert.False(t, m.Match("12-abc"))
	assert.True(t, m.Exact())

	assert.True(t, pattern.CompileExact("").Match(""))
	assert.False(t, pattern.CompileExact("").Match("a"))
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `[0-9][0-9]-[A-Za-z]`, pattern.Translate("##-@"))
	assert.Equal(t, `\.\(\)\{\}\[\]\^\$\|\*\+`, pattern.Translate(".(){}[]^$|*+"))
	assert.Equal(t, `(?s:.)`, pattern.Translate("?"))
	assert.Equal(t, "", pattern.Translate(""))
}

func TestMatcher_Deterministic(t *testing.T) {
	t.Parallel()

	a := pattern.Compile("@#?")
	b := pattern.Compile("@#?")
	assert.Equal(t, a.Expr(), b.Expr())
	assert.Equal(t, "@#?", a.String())

	var zero pattern.Matcher
	assert.True(t, zero.Match("anything"))
	assert.Empty(t, zero.Expr())
}

func TestCache(t *testing.T) {
	t.Parallel()

	c := pattern.NewCache(2)

	first := c.Compile("##")
	second := c.Compile("##")
	assert.Equal(t, first.Expr(), second.Expr())
	assert.Equal(t, 1, c.Len())

	exact := c.CompileExact("##")
	assert.True(t, exact.Exact())
	assert.Equal(t, 2, c.Len())

	c.Compile("@@")
	assert.Equal(t, 2, c.Len(), "capacity bounds the cache")

	var nilCache *pattern.Cache
	assert.True(t, nilCache.Compile("#").Match("7"))
}

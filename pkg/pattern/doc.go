// Package pattern compiles the compact field pattern mini-language into
// matchers.
//
// A pattern is read rune by rune and every rune maps to one fragment of a
// regular expression:
//
//	@   one ASCII letter
//	#   one ASCII digit
//	?   any single character
//
// Every other rune, including regular expression metacharacters such as
// . ( ) { } [ ] ^ $ | * + and the backslash, matches itself. There is no
// repetition syntax.
//
// Compile produces a matcher that searches for the pattern anywhere in the
// value; CompileExact anchors it to the whole value. The empty pattern
// matches every value.
//
//	m := pattern.Compile("##-@@")
//	m.Match("12-ab")   // true
//	m.Match("1a-ab")   // false
//
// Cache memoizes compiled matchers for repeated use across validation runs.
package pattern

// Package signature parses compact validator signatures of the form
// "name(arg1,arg2,...)".
//
// Parsing is deliberately permissive: a string without a well-ordered pair of
// parentheses is treated as a bare name. Arguments are split on commas and
// returned as raw strings; nested parentheses and escaped commas are not
// supported.
package signature

import "strings"

// Signature is a parsed validator reference.
type Signature struct {
	Name string
	Args []string
}

// Parse splits s into a validator name and its literal arguments.
//
//	Parse("lengthRange(2,10)") // {Name: "lengthRange", Args: ["2", "10"]}
//	Parse("required")          // {Name: "required"}
//	Parse("pattern()")         // {Name: "pattern", Args: [""]}
//	Parse("odd)(")             // {Name: "odd)("}
func Parse(s string) Signature {
	open := strings.IndexByte(s, '(')
	closing := strings.IndexByte(s, ')')
	if open < 0 || closing < 0 || closing < open {
		return Signature{Name: strings.TrimSpace(s)}
	}

	return Signature{
		Name: strings.TrimSpace(s[:open]),
		Args: strings.Split(s[open+1:closing], ","),
	}
}

// String formats the signature back into its compact form.
func (s Signature) String() string {
	if s.Args == nil {
		return s.Name
	}
	return s.Name + "(" + strings.Join(s.Args, ",") + ")"
}

// HasArgs reports whether the signature carried a parenthesised argument
// list, even an empty one.
func (s Signature) HasArgs() bool {
	return s.Args != nil
}

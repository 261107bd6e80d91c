// Package field defines the addressable inputs that validators run against
// and the Accessor capability used to select them.
//
// A Field has an identity, a display label and a current value. Accessors
// resolve selectors into ordered field lists and never mutate fields.
//
// # Selectors
//
// A selector is a comma separated list of terms. Each term is matched against
// field IDs and may carry a leading '#':
//
//	#email              exact id
//	#phone_*            glob, '*' matches any run of characters
//	#code?              glob, '?' matches one character
//	#email, #password   several terms, results follow term order
//	*                   every field
//
// Fields selected by more than one term are returned once. A selector that
// matches nothing yields an empty list, not an error.
//
// # Sources
//
// Set is the in-memory accessor. FromForm builds a Set from submitted form
// values and FromJSON flattens a JSON document into one field per leaf
// value, using dotted paths as IDs:
//
//	src, err := field.FromJSON(body, field.Labels{"user.email": "Email"})
//	fields, err := src.Select("#user.email")
package field

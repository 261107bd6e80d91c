package field

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field is a read-only view of one addressable input.
type Field struct {
	ID    string
	Label string
	Value string
}

// DisplayName returns the label, or a label derived from the ID when none is set.
func (f Field) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return DeriveLabel(f.ID)
}

// Accessor resolves a selector into an ordered list of fields.
type Accessor interface {
	Select(selector string) ([]Field, error)
}

// Labels maps field IDs to their display captions.
type Labels map[string]string

// For returns the caption for id, deriving one when it is missing.
func (l Labels) For(id string) string {
	if label, ok := l[id]; ok && label != "" {
		return label
	}
	return DeriveLabel(id)
}

// DeriveLabel turns the last segment of an ID path into a caption:
// "user.first_name" becomes "First Name".
func DeriveLabel(id string) string {
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		id = id[i+1:]
	}
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	if len(words) == 0 {
		return id
	}
	// cases.Caser is stateful and cannot be shared between goroutines.
	return cases.Title(language.English).String(strings.Join(words, " "))
}

package validator

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

// UUID passes for the canonical 36 character hyphenated form.
func UUID(_ Results, f field.Field, _ Args) (bool, error) {
	value := f.Value
	if strings.TrimSpace(value) == "" {
		return false, nil
	}

	// uuid.Parse also accepts braces, urn prefixes and the unhyphenated form.
	if len(value) != 36 {
		return false, nil
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false, nil
	}

	_, err := uuid.Parse(value)
	return err == nil, nil
}

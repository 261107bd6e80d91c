package validator

import (
	"strings"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

type fieldRefParams struct {
	ID string
}

func decodeFieldRef(args Args) (fieldRefParams, error) {
	id, err := args.Text(0)
	if err != nil {
		return fieldRefParams{}, err
	}
	return fieldRefParams{ID: strings.TrimPrefix(strings.TrimSpace(id), "#")}, nil
}

func (p fieldRefParams) check(prior Results, f field.Field) bool {
	other, ok := prior.Last(p.ID)
	return ok && other.Value == f.Value
}

// EqualsField passes when the value equals the value of the field args[0]
// as recorded by an earlier result in the same run. Without an earlier
// result for that field the check fails.
func EqualsField(prior Results, f field.Field, args Args) (bool, error) {
	p, err := decodeFieldRef(args)
	if err != nil {
		return false, err
	}
	return p.check(prior, f), nil
}

func bindEqualsField(args Args) (Check, error) {
	p, err := decodeFieldRef(args)
	if err != nil {
		return nil, err
	}
	return func(prior Results, f field.Field) (bool, error) {
		return p.check(prior, f), nil
	}, nil
}

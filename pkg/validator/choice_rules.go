package validator

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

type choiceParams struct {
	Allowed []string
}

func decodeChoice(args Args) (choiceParams, error) {
	if args.Len() == 0 {
		return choiceParams{}, fmt.Errorf("%w: oneOf needs at least one allowed value", ErrMissingArgument)
	}
	return choiceParams{Allowed: args.Strings()}, nil
}

// OneOf passes when the value equals one of the arguments exactly.
func OneOf(_ Results, f field.Field, args Args) (bool, error) {
	p, err := decodeChoice(args)
	if err != nil {
		return false, err
	}
	return slices.Contains(p.Allowed, f.Value), nil
}

func bindOneOf(args Args) (Check, error) {
	p, err := decodeChoice(args)
	if err != nil {
		return nil, err
	}
	return func(_ Results, f field.Field) (bool, error) {
		return slices.Contains(p.Allowed, f.Value), nil
	}, nil
}

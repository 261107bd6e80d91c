package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

// Lengths are counted in runes.

type minParams struct{ Min int }

type maxParams struct{ Max int }

type rangeParams struct{ Min, Max int }

func (p minParams) check(value string) bool {
	return utf8.RuneCountInString(value) >= p.Min
}

func (p maxParams) check(value string) bool {
	return utf8.RuneCountInString(value) <= p.Max
}

func decodeMin(args Args) (minParams, error) {
	n, err := args.Int(0)
	return minParams{Min: n}, err
}

func decodeMax(args Args) (maxParams, error) {
	n, err := args.Int(0)
	return maxParams{Max: n}, err
}

// decodeRange accepts any pair of integers; an inverted range simply matches
// no value.
func decodeRange(args Args) (rangeParams, error) {
	lo, err := args.Int(0)
	if err != nil {
		return rangeParams{}, err
	}
	hi, err := args.Int(1)
	if err != nil {
		return rangeParams{}, err
	}
	return rangeParams{Min: lo, Max: hi}, nil
}

// Required passes when the value is not empty after trimming whitespace.
func Required(_ Results, f field.Field, _ Args) (bool, error) {
	return strings.TrimSpace(f.Value) != "", nil
}

// LengthMin passes when the value has at least args[0] characters.
func LengthMin(_ Results, f field.Field, args Args) (bool, error) {
	p, err := decodeMin(args)
	if err != nil {
		return false, err
	}
	return p.check(f.Value), nil
}

// LengthMax passes when the value has at most args[0] characters.
func LengthMax(_ Results, f field.Field, args Args) (bool, error) {
	p, err := decodeMax(args)
	if err != nil {
		return false, err
	}
	return p.check(f.Value), nil
}

// LengthRange passes when args[0] <= length <= args[1], both bounds inclusive.
func LengthRange(prior Results, f field.Field, args Args) (bool, error) {
	p, err := decodeRange(args)
	if err != nil {
		return false, err
	}
	okMin, err := LengthMin(prior, f, Args{p.Min})
	if err != nil {
		return false, err
	}
	okMax, err := LengthMax(prior, f, Args{p.Max})
	if err != nil {
		return false, err
	}
	return okMin && okMax, nil
}

func bindRequired(Args) (Check, error) {
	return func(prior Results, f field.Field) (bool, error) {
		return Required(prior, f, nil)
	}, nil
}

func bindLengthMin(args Args) (Check, error) {
	p, err := decodeMin(args)
	if err != nil {
		return nil, err
	}
	return func(_ Results, f field.Field) (bool, error) {
		return p.check(f.Value), nil
	}, nil
}

func bindLengthMax(args Args) (Check, error) {
	p, err := decodeMax(args)
	if err != nil {
		return nil, err
	}
	return func(_ Results, f field.Field) (bool, error) {
		return p.check(f.Value), nil
	}, nil
}

func bindLengthRange(args Args) (Check, error) {
	p, err := decodeRange(args)
	if err != nil {
		return nil, err
	}
	lo, hi := minParams{Min: p.Min}, maxParams{Max: p.Max}
	return func(_ Results, f field.Field) (bool, error) {
		return lo.check(f.Value) && hi.check(f.Value), nil
	}, nil
}

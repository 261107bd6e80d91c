package validator

import (
	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/pattern"
)

type patternParams struct {
	Matcher pattern.Matcher
}

func decodePattern(args Args, compile func(string) pattern.Matcher) (patternParams, error) {
	p, err := args.Text(0)
	if err != nil {
		return patternParams{}, err
	}
	return patternParams{Matcher: compile(p)}, nil
}

// Pattern passes when the value contains a match for the pattern in args[0].
// Compiles the pattern on each call; bound specs use the registry cache.
func Pattern(_ Results, f field.Field, args Args) (bool, error) {
	p, err := decodePattern(args, pattern.Compile)
	if err != nil {
		return false, err
	}
	return p.Matcher.Match(f.Value), nil
}

// PatternExact passes when the whole value matches the pattern in args[0].
func PatternExact(_ Results, f field.Field, args Args) (bool, error) {
	p, err := decodePattern(args, pattern.CompileExact)
	if err != nil {
		return false, err
	}
	return p.Matcher.Match(f.Value), nil
}

func patternBinder(cache *pattern.Cache, exact bool) Binder {
	compile := cache.Compile
	if exact {
		compile = cache.CompileExact
	}
	return func(args Args) (Check, error) {
		p, err := decodePattern(args, compile)
		if err != nil {
			return nil, err
		}
		return func(_ Results, f field.Field) (bool, error) {
			return p.Matcher.Match(f.Value), nil
		}, nil
	}
}

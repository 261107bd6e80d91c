package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Args are the positional arguments passed to a validator. Values keep the
// type they were supplied with; messages render them with fmt.Sprint.
type Args []any

// StringArgs converts raw signature arguments into Args.
func StringArgs(raw []string) Args {
	if len(raw) == 0 {
		return nil
	}
	args := make(Args, len(raw))
	for i, s := range raw {
		args[i] = s
	}
	return args
}

// Len returns the number of arguments.
func (a Args) Len() int {
	return len(a)
}

// Text returns argument i in its string form.
func (a Args) Text(i int) (string, error) {
	if i < 0 || i >= len(a) {
		return "", fmt.Errorf("%w: want argument %d, got %d", ErrMissingArgument, i+1, len(a))
	}
	return fmt.Sprint(a[i]), nil
}

// Int decodes argument i as an integer. Strings are trimmed before parsing
// and floats must be whole numbers.
func (a Args) Int(i int) (int, error) {
	if i < 0 || i >= len(a) {
		return 0, fmt.Errorf("%w: want argument %d, got %d", ErrMissingArgument, i+1, len(a))
	}

	switch v := a[i].(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case float32:
		return wholeNumber(i, float64(v))
	case float64:
		return wholeNumber(i, v)
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("%w: argument %d %q is not an integer", ErrInvalidArgument, i+1, v)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: argument %d %q is not an integer", ErrInvalidArgument, i+1, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: argument %d has unsupported type %T", ErrInvalidArgument, i+1, v)
	}
}

// Strings returns every argument in its string form.
func (a Args) Strings() []string {
	out := make([]string, len(a))
	for i, v := range a {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func wholeNumber(i int, f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: argument %d %v is not an integer", ErrInvalidArgument, i+1, f)
	}
	return int(f), nil
}

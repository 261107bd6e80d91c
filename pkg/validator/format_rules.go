package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

// Format validators reject blank values.

var (
	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Email passes for a single RFC 5322 address whose domain has at least one dot.
func Email(_ Results, f field.Field, _ Args) (bool, error) {
	return isEmail(f.Value), nil
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL passes for absolute URLs with a scheme and host.
func URL(_ Results, f field.Field, _ Args) (bool, error) {
	if strings.TrimSpace(f.Value) == "" {
		return false, nil
	}
	u, err := url.ParseRequestURI(f.Value)
	if err != nil {
		return false, nil
	}
	return u.Scheme != "" && u.Host != "", nil
}

// Alpha passes when the value contains only ASCII letters.
func Alpha(_ Results, f field.Field, _ Args) (bool, error) {
	return alphaRegex.MatchString(f.Value), nil
}

// Alphanumeric passes when the value contains only ASCII letters and digits.
func Alphanumeric(_ Results, f field.Field, _ Args) (bool, error) {
	return alphanumericRegex.MatchString(f.Value), nil
}

// Numeric passes when the value contains only digits.
func Numeric(_ Results, f field.Field, _ Args) (bool, error) {
	return numericStringRegex.MatchString(f.Value), nil
}

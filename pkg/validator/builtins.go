package validator

import "github.com/dmitrymomot/fieldcheck/pkg/pattern"

// Built-in validator names.
const (
	NameRequired    = "required"
	NameLengthMin   = "lengthMin"
	NameLengthMax   = "lengthMax"
	NameLengthRange = "lengthRange"
	NamePattern     = "pattern"
)

// Extended validator names, registered with WithExtended.
const (
	NamePatternExact = "patternExact"
	NameEmail        = "email"
	NameURL          = "url"
	NameUUID         = "uuid"
	NameAlpha        = "alpha"
	NameAlphanumeric = "alphanumeric"
	NameNumeric      = "numeric"
	NameOneOf        = "oneOf"
	NameEqualsField  = "equalsField"
)

func builtinEntries(patterns *pattern.Cache) []Entry {
	return []Entry{
		{
			Name:           NameRequired,
			Func:           Required,
			Bind:           bindRequired,
			ValidMessage:   "{0} is present.",
			InvalidMessage: "{0} is required!",
		},
		{
			Name:           NameLengthMin,
			Func:           LengthMin,
			Bind:           bindLengthMin,
			ValidMessage:   "{0} has at least {1} characters.",
			InvalidMessage: "{0} must have at least {1} characters!",
		},
		{
			Name:           NameLengthMax,
			Func:           LengthMax,
			Bind:           bindLengthMax,
			ValidMessage:   "{0} has at most {1} characters.",
			InvalidMessage: "{0} must have at most {1} characters!",
		},
		{
			Name:           NameLengthRange,
			Func:           LengthRange,
			Bind:           bindLengthRange,
			ValidMessage:   "{0} has between {1} and {2} characters.",
			InvalidMessage: "{0} must have between {1} and {2} characters!",
		},
		{
			Name:           NamePattern,
			Func:           Pattern,
			Bind:           patternBinder(patterns, false),
			ValidMessage:   "{0} matches the format {1}.",
			InvalidMessage: "{0} must match the format {1}!",
		},
	}
}

func extendedEntries(patterns *pattern.Cache) []Entry {
	return []Entry{
		{
			Name:           NamePatternExact,
			Func:           PatternExact,
			Bind:           patternBinder(patterns, true),
			ValidMessage:   "{0} matches the format {1}.",
			InvalidMessage: "{0} must be exactly in the format {1}!",
		},
		{
			Name:           NameEmail,
			Func:           Email,
			ValidMessage:   "{0} is a valid email address.",
			InvalidMessage: "{0} must be a valid email address!",
		},
		{
			Name:           NameURL,
			Func:           URL,
			ValidMessage:   "{0} is a valid URL.",
			InvalidMessage: "{0} must be a valid URL!",
		},
		{
			Name:           NameUUID,
			Func:           UUID,
			ValidMessage:   "{0} is a valid UUID.",
			InvalidMessage: "{0} must be a valid UUID!",
		},
		{
			Name:           NameAlpha,
			Func:           Alpha,
			ValidMessage:   "{0} contains only letters.",
			InvalidMessage: "{0} must contain only letters!",
		},
		{
			Name:           NameAlphanumeric,
			Func:           Alphanumeric,
			ValidMessage:   "{0} contains only letters and digits.",
			InvalidMessage: "{0} must contain only letters and digits!",
		},
		{
			Name:           NameNumeric,
			Func:           Numeric,
			ValidMessage:   "{0} contains only digits.",
			InvalidMessage: "{0} must contain only digits!",
		},
		{
			Name:           NameOneOf,
			Func:           OneOf,
			Bind:           bindOneOf,
			ValidMessage:   "{0} is an allowed value.",
			InvalidMessage: "{0} must be one of the allowed values!",
		},
		{
			Name:           NameEqualsField,
			Func:           EqualsField,
			Bind:           bindEqualsField,
			ValidMessage:   "{0} matches {1}.",
			InvalidMessage: "{0} must match {1}!",
		},
	}
}

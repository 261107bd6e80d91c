package specfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Format identifies a spec file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForFile picks the format from the file extension.
func FormatForFile(filename string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Entry is one spec as written in a file.
type Entry struct {
	Select         string `json:"select" yaml:"select"`
	Validate       string `json:"validate" yaml:"validate"`
	Args           []any  `json:"args,omitempty" yaml:"args,omitempty"`
	Signature      string `json:"signature,omitempty" yaml:"signature,omitempty"`
	ValidMessage   string `json:"validMessage,omitempty" yaml:"validMessage,omitempty"`
	InvalidMessage string `json:"invalidMessage,omitempty" yaml:"invalidMessage,omitempty"`
}

// Spec converts the entry into an engine spec.
func (e Entry) Spec() validator.Spec {
	var args validator.Args
	if len(e.Args) > 0 {
		args = validator.Args(e.Args)
	}
	return validator.Spec{
		Select:         e.Select,
		Validate:       validator.Sig(e.Validate),
		Args:           args,
		Signature:      e.Signature,
		ValidMessage:   e.ValidMessage,
		InvalidMessage: e.InvalidMessage,
	}
}

// Form is a named list of specs with optional field labels.
type Form struct {
	Name   string       `json:"name" yaml:"name"`
	Labels field.Labels `json:"labels,omitempty" yaml:"labels,omitempty"`
	Specs  []Entry      `json:"specs" yaml:"specs"`
}

// ValidatorSpecs returns the form's entries as engine specs, in file order.
func (f *Form) ValidatorSpecs() []validator.Spec {
	specs := make([]validator.Spec, len(f.Specs))
	for i, e := range f.Specs {
		specs[i] = e.Spec()
	}
	return specs
}

// Parse decodes form content in the given format.
func Parse(ctx context.Context, format Format, content []byte) (*Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var form Form
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &form); err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		if err := dec.Decode(&form); err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	form.Name = strings.TrimSpace(form.Name)
	for i, e := range form.Specs {
		if strings.TrimSpace(e.Select) == "" {
			return nil, fmt.Errorf("%w: spec %d has no select", ErrInvalidEntry, i)
		}
		if strings.TrimSpace(e.Validate) == "" {
			return nil, fmt.Errorf("%w: spec %d has no validate", ErrInvalidEntry, i)
		}
	}
	return &form, nil
}

// Load reads a form file. The form is named after the file when the
// content carries no name.
func Load(ctx context.Context, path string) (*Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	format, ok := FormatForFile(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	form, err := Parse(ctx, format, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if form.Name == "" {
		base := filepath.Base(path)
		form.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return form, nil
}

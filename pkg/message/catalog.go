package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Templates holds the message templates reported for each outcome.
type Templates struct {
	Valid   string `json:"valid,omitempty" yaml:"valid,omitempty"`
	Invalid string `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

// Catalog maps validator names to message templates.
type Catalog map[string]Templates

// Lookup returns the templates for name.
func (c Catalog) Lookup(name string) (Templates, bool) {
	t, ok := c[name]
	return t, ok
}

// Format identifies a catalog encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForFile picks the catalog format from the file extension.
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

// LoadCatalog reads a catalog from a YAML or JSON file.
func LoadCatalog(ctx context.Context, path string) (Catalog, error) {
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

	return ParseCatalog(ctx, format, content)
}

// ParseCatalog decodes catalog content in the given format.
func ParseCatalog(ctx context.Context, format Format, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var catalog Catalog
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &catalog); err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(content, &catalog); err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	for name, t := range catalog {
		if name == "" {
			return nil, fmt.Errorf("%w: empty validator name", ErrInvalidCatalogEntry)
		}
		if t.Valid == "" && t.Invalid == "" {
			return nil, fmt.Errorf("%w: %q has no templates", ErrInvalidCatalogEntry, name)
		}
	}

	if catalog == nil {
		catalog = Catalog{}
	}
	return catalog, nil
}

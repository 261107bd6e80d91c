package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputText, outputJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: use %q or %q", s, outputText, outputJSON)
	}
}

type palette struct {
	pass   *color.Color
	fail   *color.Color
	dim    *color.Color
	header *color.Color
}

func newPalette() palette {
	return palette{
		pass:   color.New(color.FgHiGreen),
		fail:   color.New(color.FgHiRed, color.Bold),
		dim:    color.New(color.FgHiBlack),
		header: color.New(color.FgHiMagenta, color.Bold),
	}
}

type jsonReport struct {
	Form    string            `json:"form,omitempty"`
	Valid   bool              `json:"valid"`
	Total   int               `json:"total"`
	Invalid int               `json:"invalid"`
	Results validator.Results `json:"results"`
}

func writeReport(w io.Writer, format outputFormat, form string, results validator.Results) error {
	invalid := len(results.Invalid())
	if format == outputJSON {
		if results == nil {
			results = validator.Results{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonReport{
			Form:    form,
			Valid:   invalid == 0,
			Total:   len(results),
			Invalid: invalid,
			Results: results,
		})
	}

	p := newPalette()
	if form != "" {
		p.header.Fprintf(w, "%s\n", form)
	}
	for _, r := range results {
		mark, c := "✓", p.pass
		if !r.Valid {
			mark, c = "✗", p.fail
		}
		c.Fprintf(w, "%s ", mark)
		fmt.Fprintf(w, "%-20s ", r.FieldID)
		p.dim.Fprintf(w, "%-16s ", r.Signature)
		fmt.Fprintln(w, r.Message)
	}

	summary := fmt.Sprintf("%d results, %d invalid", len(results), invalid)
	if invalid == 0 {
		p.pass.Fprintln(w, summary)
	} else {
		p.fail.Fprintln(w, summary)
	}
	return nil
}

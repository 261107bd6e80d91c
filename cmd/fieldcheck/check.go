package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/specfile"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		specsPath string
		inputPath string
		formData  string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate one input against a spec file",
		Example: `  fieldcheck check --specs signup.yaml --input payload.json
  fieldcheck check --specs signup.yaml --form 'email=a@b.co&username=bob' --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			form, err := specfile.Load(ctx, specsPath)
			if err != nil {
				return err
			}

			var src field.Accessor
			if formData != "" || inputPath == "" {
				values, err := url.ParseQuery(formData)
				if err != nil {
					return fmt.Errorf("parse --form: %w", err)
				}
				src = field.FromForm(values, form.Labels)
			} else {
				data, err := readInput(cmd.InOrStdin(), inputPath)
				if err != nil {
					return err
				}
				if src, err = field.FromJSON(data, form.Labels); err != nil {
					return fmt.Errorf("%s: %w", inputPath, err)
				}
			}

			results, err := a.engine().ValidateAll(ctx, src, form.ValidatorSpecs())
			if err != nil {
				return err
			}
			a.log.DebugContext(ctx, "check finished", logger.Form(form.Name), logger.Count("results", len(results)))

			if err := writeReport(a.stdout, format, form.Name, results); err != nil {
				return err
			}
			if !results.AllValid() {
				return errInvalid
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&specsPath, "specs", "s", "", "spec file (YAML or JSON)")
	flags.StringVarP(&inputPath, "input", "i", "", "JSON document to validate, - for stdin")
	flags.StringVarP(&formData, "form", "f", "", "URL-encoded form values to validate")
	flags.StringVarP(&output, "output", "o", string(outputText), "output format: text or json")
	_ = cmd.MarkFlagRequired("specs")
	cmd.MarkFlagsMutuallyExclusive("input", "form")
	cmd.MarkFlagsOneRequired("input", "form")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("read %s", path), err)
	}
	return data, nil
}

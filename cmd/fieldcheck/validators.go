package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidatorsCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "validators",
		Short: "List the registered validators and their message templates",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			entries := a.registry.Entries()

			if format == outputJSON {
				type item struct {
					Name           string `json:"name"`
					ValidMessage   string `json:"validMessage,omitempty"`
					InvalidMessage string `json:"invalidMessage,omitempty"`
				}
				items := make([]item, len(entries))
				for i, e := range entries {
					items[i] = item{Name: e.Name, ValidMessage: e.ValidMessage, InvalidMessage: e.InvalidMessage}
				}
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			p := newPalette()
			for _, e := range entries {
				p.header.Fprintln(a.stdout, e.Name)
				p.pass.Fprint(a.stdout, "  valid   ")
				fmt.Fprintln(a.stdout, e.ValidMessage)
				p.fail.Fprint(a.stdout, "  invalid ")
				fmt.Fprintln(a.stdout, e.InvalidMessage)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(outputText), "output format: text or json")
	return cmd
}

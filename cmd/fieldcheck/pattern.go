package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPatternCmd(a *app) *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "pattern <pattern> <value>...",
		Short: "Show the expression for a pattern and test values against it",
		Long: `Patterns use @ for one ASCII letter, # for one digit and ? for any
character. Every other character matches itself. Matching looks for the
pattern anywhere in the value unless --exact is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cache := a.registry.Patterns()
			m := cache.Compile(args[0])
			if exact {
				m = cache.CompileExact(args[0])
			}

			p := newPalette()
			p.dim.Fprintf(a.stdout, "%s => %s\n", m.String(), m.Expr())

			failed := false
			for _, v := range args[1:] {
				if m.Match(v) {
					p.pass.Fprint(a.stdout, "✓ ")
				} else {
					failed = true
					p.fail.Fprint(a.stdout, "✗ ")
				}
				fmt.Fprintln(a.stdout, v)
			}
			if failed {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&exact, "exact", "e", false, "match the whole value")
	return cmd
}

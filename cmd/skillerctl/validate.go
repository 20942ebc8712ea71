package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate all content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			c, err := loadCatalog(cmd)
			if err != nil {
				errs := multierr.Errors(err)
				red := color.New(color.FgRed)
				for _, e := range errs {
					red.Fprintf(out, "✗ %v\n", e)
				}
				return fmt.Errorf("%d content error(s)", len(errs))
			}

			yellow := color.New(color.FgYellow)
			for _, w := range c.stats.Warnings {
				yellow.Fprintf(out, "! %s\n", w)
			}
			color.New(color.FgGreen).Fprintf(out, "✓ %d files, %d tutorials, %d practice problems, %d warning(s)\n",
				c.stats.Files, c.stats.Tutorials, c.stats.Problems, len(c.stats.Warnings))
			return nil
		},
	}
}

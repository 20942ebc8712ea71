package main

import (
	"fmt"
	"skillerset/internal/service"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List tutorials or practice problems",
	}

	tutorials := &cobra.Command{
		Use:   "tutorials",
		Short: "List registered tutorials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			category, _ := cmd.Flags().GetString("category")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			bold := color.New(color.Bold)
			bold.Fprintln(w, "ID\tCATEGORY\tDIFFICULTY\tTITLE")
			for _, t := range c.tutorials.ListSummaries(category) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Category, t.Difficulty, t.Title)
			}
			return w.Flush()
		},
	}
	tutorials.Flags().String("category", "", "Only tutorials in this category")

	problems := &cobra.Command{
		Use:   "problems",
		Short: "List practice problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			var filter service.ProblemFilter
			filter.Category, _ = cmd.Flags().GetString("category")
			filter.Difficulty, _ = cmd.Flags().GetString("difficulty")

			summaries, err := c.practice.ListSummaries(filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			color.New(color.Bold).Fprintln(w, "ID\tDIFFICULTY\tCATEGORY\tTITLE")
			for _, p := range summaries {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", p.ProblemID, p.Difficulty, strings.Repeat("★", p.DifficultyStars), p.Category, p.Title)
			}
			return w.Flush()
		},
	}
	problems.Flags().String("category", "", "Only problems in this category")
	problems.Flags().String("difficulty", "", "Easy, Medium or Hard")

	list.AddCommand(tutorials, problems)
	return list
}

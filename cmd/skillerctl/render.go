package main

import (
	"skillerset/internal/model"
	"skillerset/internal/render"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Print a tutorial's rendered content as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			t, err := c.tutorials.Get(args[0])
			if err != nil {
				return err
			}

			showOutput, _ := cmd.Flags().GetBool("show-output")
			return render.WriteText(cmd.OutOrStdout(), render.Render(t.Content, outputsFor(t.Content, showOutput)))
		},
	}
	cmd.Flags().Bool("show-output", false, "Expand the output of every code section")
	return cmd
}

func outputsFor(content model.Content, all bool) render.OutputToggles {
	outputs := render.OutputToggles{}
	if !all {
		return outputs
	}
	for i, s := range content {
		if c, ok := s.(model.CodeSection); ok && c.Code.HasOutput() {
			outputs[i] = true
		}
	}
	return outputs
}

package main

import (
	"skillerset/internal/content"
	"skillerset/internal/repository"
	"skillerset/internal/service"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "skillerctl",
		Short:         "SkillerSET content tooling",
		Long:          "Validate, list, render and score SkillerSET tutorials and practice problems.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("dir", "", "Content directory with tutorials/ and practice/ (defaults to the embedded content)")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newScoreCmd())
	return root
}

type catalog struct {
	stats     *content.Stats
	tutorials *service.TutorialService
	practice  *service.PracticeService
}

// loadCatalog 读取 --dir 指定的内容，未指定时使用内置内容
func loadCatalog(cmd *cobra.Command) (*catalog, error) {
	dir, _ := cmd.Flags().GetString("dir")
	tutorials := repository.NewTutorialRepository()
	problems := repository.NewPracticeProblemRepository()

	stats, err := content.Load(content.Source(dir), tutorials, problems)
	if err != nil {
		return nil, err
	}
	return &catalog{
		stats:     stats,
		tutorials: service.NewTutorialService(tutorials),
		practice:  service.NewPracticeService(problems),
	}, nil
}

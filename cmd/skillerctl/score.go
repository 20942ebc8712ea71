package main

import (
	"fmt"
	"skillerset/internal/quiz"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <id> <answers>",
		Short: "Score comma separated answers (letters or indices) against a tutorial quiz",
		Example: "  skillerctl score python-basics b,c,b,d,b\n" +
			"  skillerctl score python-basics 1,2,,3",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			t, err := c.tutorials.Get(args[0])
			if err != nil {
				return err
			}
			selections, err := parseAnswers(args[1])
			if err != nil {
				return err
			}

			w := quiz.New(t.Quiz)
			for q, o := range selections {
				if _, err := w.SelectOption(q, o); err != nil {
					return fmt.Errorf("answer %d: %w", q+1, err)
				}
			}
			w.ToggleGrading()

			out := cmd.OutOrStdout()
			green, red := color.New(color.FgGreen), color.New(color.FgRed)
			for q := range t.Quiz {
				switch o, ok := w.Selection(q); {
				case !ok:
					fmt.Fprintf(out, "%d. - unanswered\n", q+1)
				case w.OptionState(q, o) == quiz.OptionCorrect:
					green.Fprintf(out, "%d. ✓ %s\n", q+1, t.Quiz[q].Options[o])
				default:
					red.Fprintf(out, "%d. ✗ %s\n", q+1, t.Quiz[q].Options[o])
				}
			}

			score := w.Score()
			fmt.Fprintf(out, "Score: %d / %d\n", score.Correct, score.Total)
			return nil
		},
	}
}

// parseAnswers 接受 "b,c,a" 或 "1,2,0"，空项表示未作答
func parseAnswers(s string) (map[int]int, error) {
	selections := make(map[int]int)
	for q, raw := range strings.Split(s, ",") {
		raw = strings.ToLower(strings.TrimSpace(raw))
		if raw == "" {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil {
			selections[q] = n
			continue
		}
		if len(raw) == 1 && raw[0] >= 'a' && raw[0] <= 'z' {
			selections[q] = int(raw[0] - 'a')
			continue
		}
		return nil, fmt.Errorf("answer %d: %q is neither a letter nor an index", q+1, raw)
	}
	return selections, nil
}

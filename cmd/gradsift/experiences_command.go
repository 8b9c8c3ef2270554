package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gradsift/internal/export"
)

func newExperiencesCommand(ctx *commandContext) *cobra.Command {
	var inPath string
	var outPath string
	var firm string
	var minScore float64
	var excludeQuestions bool
	var limit int

	cmd := &cobra.Command{
		Use:   "experiences",
		Short: "List quality-filtered experience posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := strings.TrimSpace(inPath)
			if path == "" {
				path = export.New(cfg, nil).ExperiencesPath()
			}
			minimum := cfg.Quality.MinScore
			if cmd.Flags().Changed("min-score") {
				minimum = minScore
			}
			noQuestions := cfg.Quality.ExcludeQuestions
			if cmd.Flags().Changed("exclude-questions") {
				noQuestions = excludeQuestions
			}

			posts, err := export.ReadFilteredPosts(path, firm, minimum, noQuestions)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if target := strings.TrimSpace(outPath); target != "" {
				if err := export.WriteFilteredCSV(target, posts); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %d experiences to %s\n", len(posts), target)
				return nil
			}

			if len(posts) == 0 {
				fmt.Fprintln(out, "No experiences matched the filters.")
				return nil
			}
			if limit > 0 && len(posts) > limit {
				posts = posts[:limit]
			}

			rows := make([][]string, 0, len(posts))
			for _, post := range posts {
				rows = append(rows, []string{
					post.FirmName,
					strconv.FormatFloat(post.Quality.Score, 'f', 2, 64),
					strings.Join(strings.Fields(post.Content), " "),
				})
			}
			fmt.Fprintln(out, renderTable([]column{
				{name: "Firm"},
				{name: "Score", right: true},
				{name: "Experience", widthMax: 80},
			}, rows))
			fmt.Fprintf(out, "%d experiences\n", len(posts))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "Experiences CSV (defaults to <output_dir>/experiences.csv)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the filtered set to this CSV instead of rendering a table")
	cmd.Flags().StringVar(&firm, "firm", "", "Keep only one canonical firm")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Minimum quality score")
	cmd.Flags().BoolVar(&excludeQuestions, "exclude-questions", true, "Drop question posts")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many rows")
	return cmd
}

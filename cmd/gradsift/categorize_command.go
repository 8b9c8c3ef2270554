package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gradsift/internal/export"
	"gradsift/internal/insights"
)

func newCategorizeCommand(ctx *commandContext) *cobra.Command {
	var inPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Annotate an experiences CSV with insight categories",
		Long: "Reads a CSV with a content column and writes a copy with primary_cat\n" +
			"and cat_labels columns appended, using keyword and pattern rules.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source := strings.TrimSpace(inPath)
			if source == "" {
				source = export.New(cfg, nil).ExperiencesPath()
			}
			target := strings.TrimSpace(outPath)
			if target == "" {
				base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
				target = filepath.Join(filepath.Dir(source), base+"_categorized.csv")
			}

			in, err := os.Open(source)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			out, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}

			if err := insights.AnnotateCSV(in, out, insights.NewClassifier()); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Categorized %s -> %s\n", source, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "Input CSV (defaults to <output_dir>/experiences.csv)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output CSV (defaults to <input>_categorized.csv)")
	return cmd
}

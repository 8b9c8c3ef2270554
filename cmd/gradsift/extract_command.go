package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gradsift/internal/export"
	"gradsift/internal/forum"
	"gradsift/internal/logging"
	"gradsift/internal/pipeline"
	"gradsift/internal/signal"
	"gradsift/internal/store"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var inputDir string
	var outputDir string
	var minConfidence float64
	var firmFilter string
	var workers int

	cmd := &cobra.Command{
		Use:   "extract [file...]",
		Short: "Run the extraction pipeline over forum CSV exports",
		Long: "Reads forum CSV exports, extracts confidence-rated recruitment signals\n" +
			"per firm mention, rates every matched post for experience quality, and\n" +
			"writes signals.csv and experiences.csv to the output directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.loggerValue()

			if cmd.Flags().Changed("min-confidence") {
				cfg.Pipeline.MinConfidence = minConfidence
			}
			if cmd.Flags().Changed("workers") {
				cfg.Pipeline.Workers = workers
			}
			if strings.TrimSpace(outputDir) != "" {
				cfg.Paths.OutputDir = outputDir
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			reader := forum.NewReader(logger)
			var posts []forum.RawPost
			switch {
			case len(args) > 0:
				posts, err = reader.ReadFiles(args)
			case strings.TrimSpace(inputDir) != "":
				posts, err = reader.ReadDir(inputDir, cfg.Ingest.Glob)
			default:
				posts, err = reader.ReadDir(cfg.Paths.InputDir, cfg.Ingest.Glob)
			}
			if err != nil {
				return err
			}

			runner := pipeline.New(cfg, nil, logger)
			result, err := runner.Run(cmd.Context(), posts)
			if err != nil {
				return err
			}

			signals := result.Signals
			filtered := result.Filtered
			if firm := strings.TrimSpace(firmFilter); firm != "" {
				signals = filterSignalsByFirm(signals, firm)
				filtered = filterPostsByFirm(filtered, firm)
			}

			exporter := export.New(cfg, logger)
			if err := exporter.WriteRun(signals, filtered); err != nil {
				return err
			}

			if cfg.Output.SQLite {
				mirrorRun(cmd.Context(), ctx, result, signals, filtered)
			}

			out := cmd.OutOrStdout()
			stats := result.Stats
			fmt.Fprintf(out, "Run %s: %d posts, %d signals, %d experiences (%d dropped, %d below confidence floor)\n",
				result.RunID, stats.Posts, len(signals), len(filtered), stats.Dropped, stats.LowConfidence)
			fmt.Fprintf(out, "Signals written to %s\n", exporter.SignalsPath())
			fmt.Fprintf(out, "Experiences written to %s\n", exporter.ExperiencesPath())

			if len(signals) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderFirmSummary(signals))
				if cities := renderCitySummary(signals); cities != "" {
					fmt.Fprintln(out)
					fmt.Fprintln(out, cities)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "in", "i", "", "Directory of forum CSV exports (defaults to paths.input_dir)")
	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory (defaults to paths.output_dir)")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0, "Drop signals below this confidence")
	cmd.Flags().StringVar(&firmFilter, "firm", "", "Keep only signals and experiences for one canonical firm")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent post workers")
	return cmd
}

func mirrorRun(runCtx context.Context, ctx *commandContext, result *pipeline.Result, signals []signal.Signal, filtered []signal.FilteredPost) {
	cfg := ctx.config
	logger := ctx.loggerValue()

	db, err := store.Open(cfg.Paths.DatabasePath)
	if err != nil {
		logger.Warn("sqlite mirror unavailable", logging.Args(logging.Error(err))...)
		return
	}
	defer db.Close()

	run := store.Run{
		ID:       result.RunID,
		Started:  result.Started,
		Posts:    result.Stats.Posts,
		Accepted: result.Stats.Accepted,
		Dropped:  result.Stats.Dropped,
		Signals:  len(signals),
	}
	if err := db.SaveRun(runCtx, run, signals, filtered); err != nil {
		logger.Warn("sqlite mirror write failed", logging.Args(logging.Error(err))...)
	}
}

func filterSignalsByFirm(signals []signal.Signal, firm string) []signal.Signal {
	kept := make([]signal.Signal, 0, len(signals))
	for _, sig := range signals {
		if strings.EqualFold(sig.FirmName, firm) {
			kept = append(kept, sig)
		}
	}
	return kept
}

func filterPostsByFirm(posts []signal.FilteredPost, firm string) []signal.FilteredPost {
	kept := make([]signal.FilteredPost, 0, len(posts))
	for _, post := range posts {
		if strings.EqualFold(post.FirmName, firm) {
			kept = append(kept, post)
		}
	}
	return kept
}

func renderFirmSummary(signals []signal.Signal) string {
	type firmCount struct {
		name  string
		count int
	}
	counts := make(map[string]int)
	for _, sig := range signals {
		counts[sig.FirmName]++
	}
	ranked := make([]firmCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, firmCount{name, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	rows := make([][]string, 0, len(ranked))
	for _, entry := range ranked {
		rows = append(rows, []string{entry.name, strconv.Itoa(entry.count)})
	}
	return renderTable([]column{{name: "Firm"}, {name: "Signals", right: true}}, rows)
}

func renderCitySummary(signals []signal.Signal) string {
	counts := make(map[string]int)
	for _, sig := range signals {
		if sig.City != "" {
			counts[sig.City]++
		}
	}
	if len(counts) == 0 {
		return ""
	}
	cities := make([]string, 0, len(counts))
	for city := range counts {
		cities = append(cities, city)
	}
	sort.Slice(cities, func(i, j int) bool {
		if counts[cities[i]] != counts[cities[j]] {
			return counts[cities[i]] > counts[cities[j]]
		}
		return cities[i] < cities[j]
	})

	rows := make([][]string, 0, len(cities))
	for _, city := range cities {
		rows = append(rows, []string{city, strconv.Itoa(counts[city])})
	}
	return renderTable([]column{{name: "City"}, {name: "Signals", right: true}}, rows)
}

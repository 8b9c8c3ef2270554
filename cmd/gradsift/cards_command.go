package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gradsift/internal/aggregate"
	"gradsift/internal/export"
)

func newCardsCommand(ctx *commandContext) *cobra.Command {
	var signalsPath string
	var firm string

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Aggregate signals into per-firm summary cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := strings.TrimSpace(signalsPath)
			if path == "" {
				path = export.New(cfg, nil).SignalsPath()
			}

			cards, err := aggregate.LoadCards(path)
			if err != nil {
				return err
			}
			if firm != "" {
				kept := cards[:0]
				for _, card := range cards {
					if strings.EqualFold(card.Name, firm) {
						kept = append(kept, card)
					}
				}
				cards = kept
			}

			out := cmd.OutOrStdout()
			if len(cards) == 0 {
				fmt.Fprintln(out, "No signals to aggregate.")
				return nil
			}

			rows := make([][]string, 0, len(cards))
			for _, card := range cards {
				salary := ""
				if card.AvgSalary != nil {
					salary = "$" + strconv.Itoa(*card.AvgSalary)
				}
				intake := ""
				if card.TopIntakeYear != nil {
					intake = strconv.Itoa(*card.TopIntakeYear)
				}
				rows = append(rows, []string{
					card.Name,
					strconv.Itoa(card.ExperienceCount),
					strings.Join(card.PopularPrograms, ", "),
					card.TopCity,
					intake,
					salary,
					card.NextClose,
				})
			}
			fmt.Fprintln(out, renderTable([]column{
				{name: "Firm"},
				{name: "Signals", right: true},
				{name: "Programs", widthMax: 40},
				{name: "Top City"},
				{name: "Intake", right: true},
				{name: "Avg Salary", right: true},
				{name: "Next Close"},
			}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&signalsPath, "signals", "", "Signals CSV (defaults to <output_dir>/signals.csv)")
	cmd.Flags().StringVar(&firm, "firm", "", "Show only one canonical firm")
	return cmd
}

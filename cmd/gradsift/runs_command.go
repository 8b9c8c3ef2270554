package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"gradsift/internal/store"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded pipeline runs from the sqlite mirror",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			db, err := store.Open(cfg.Paths.DatabasePath)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.Runs(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded. Enable output.sqlite and run `gradsift extract`.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.Started.Local().Format(time.RFC3339),
					strconv.Itoa(run.Posts),
					strconv.Itoa(run.Accepted),
					strconv.Itoa(run.Dropped),
					strconv.Itoa(run.Signals),
				})
			}
			fmt.Fprintln(out, renderTable([]column{
				{name: "Run"},
				{name: "Started"},
				{name: "Posts", right: true},
				{name: "Accepted", right: true},
				{name: "Dropped", right: true},
				{name: "Signals", right: true},
			}, rows))
			return nil
		},
	}
	return cmd
}

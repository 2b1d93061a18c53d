package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show logged workouts",
	}
	cmd.AddCommand(newLogsRecentCmd())
	return cmd
}

func newLogsRecentCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent workouts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return errors.New("--limit must be positive")
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			recent := a.logs.Recent(limit)
			if len(recent) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No workouts logged yet.")
				return nil
			}
			for _, l := range recent {
				_, _ = fmt.Fprintf(
					cmd.OutOrStdout(),
					"- %s  %s  %d min  %d exercises\n",
					l.Date.In(a.location).Format(time.DateTime),
					a.routineName(l.RoutineID),
					l.Duration,
					len(l.CompletedExercises),
				)
				if l.Notes != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", l.Notes)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", workoutlogs.DefaultRecentLimit, "max number of workouts")
	return cmd
}

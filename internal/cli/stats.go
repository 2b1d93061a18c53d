package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/2beens/gymroutines/internal/gymstats/stats"
)

const weekdayBarWidth = 20

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show workout statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			printStatistics(cmd.OutOrStdout(), stats.Compute(a.routines.List(), a.logs.List(), a.location), a.location)
			return nil
		},
	}
	cmd.AddCommand(newStatsHistoryCmd())
	return cmd
}

func newStatsHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <exercise-id>",
		Short: "Show the per-day averages of one exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			history := stats.NewExerciseHistory(a.logs.List(), args[0], a.location)
			if len(history.Days) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No history for exercise %s.\n", args[0])
				return nil
			}
			for _, d := range history.Days {
				_, _ = fmt.Fprintf(
					cmd.OutOrStdout(),
					"- %s  %d sets  avg %.1f reps @ %s kg\n",
					d.Day.Format(time.DateOnly), d.Sets, d.AvgReps, formatWeight(d.AvgWeight),
				)
			}
			return nil
		},
	}
	return cmd
}

func printStatistics(out io.Writer, s stats.Statistics, loc *time.Location) {
	if s.Empty {
		_, _ = fmt.Fprintln(out, "No workouts logged yet.")
		return
	}

	_, _ = fmt.Fprintf(out, "Total workouts:  %d\n", s.TotalWorkouts)
	_, _ = fmt.Fprintf(out, "Total time:      %dh %dm\n", s.Hours, s.Minutes)
	_, _ = fmt.Fprintf(out, "Active routines: %d\n", s.ActiveRoutines)

	_, _ = fmt.Fprintln(out, "\nMost popular routines:")
	for i, p := range s.Popularity {
		_, _ = fmt.Fprintf(out, "%d. %s (%d exercises): %d workouts\n", i+1, p.RoutineName, p.ExerciseCount, p.Count)
	}

	_, _ = fmt.Fprintln(out, "\nWorkouts by weekday:")
	for _, wd := range s.Weekdays {
		bar := strings.Repeat("#", int(wd.Ratio*weekdayBarWidth+0.5))
		_, _ = fmt.Fprintf(out, "%-9s %3d %s\n", wd.Day, wd.Count, bar)
	}

	if len(s.TopExercises) > 0 {
		_, _ = fmt.Fprintln(out, "\nTop exercises:")
		for i, e := range s.TopExercises {
			_, _ = fmt.Fprintf(out, "%d. %s: %d\n", i+1, e.Name, e.Count)
		}
	}

	_, _ = fmt.Fprintln(out, "\nRecent activity:")
	for _, r := range s.Recent {
		_, _ = fmt.Fprintf(out, "- %s  %s  %d min  %d exercises\n", r.Date.In(loc).Format(time.DateOnly), r.RoutineName, r.Duration, r.ExercisesCount)
	}
}

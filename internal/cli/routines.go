package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2beens/gymroutines/internal/gymstats/dashboard"
	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/session"
)

func newRoutinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routines",
		Short: "List and delete workout routines",
	}
	cmd.AddCommand(newRoutinesListCmd())
	cmd.AddCommand(newRoutinesDeleteCmd())
	return cmd
}

func newRoutinesListCmd() *cobra.Command {
	var (
		muscleGroup   string
		favoritesOnly bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List routines grouped by their scheduled day",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := routines.FilterParams{
				MuscleGroup:   routines.MuscleGroup(strings.ToLower(muscleGroup)),
				FavoritesOnly: favoritesOnly,
			}
			if params.MuscleGroup != "" && !params.MuscleGroup.IsValid() {
				return fmt.Errorf("%w: %s", routines.ErrInvalidMuscleGroup, muscleGroup)
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			filtered := routines.Filter(a.routines.List(), params)
			if len(filtered) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No routines.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, group := range routines.GroupByDay(filtered) {
				_, _ = fmt.Fprintf(out, "%s:\n", dayTitle(group.Day))
				for _, r := range group.Routines {
					printRoutine(out, r)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&muscleGroup, "muscle-group", "", "only routines training this muscle group")
	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "only favorite routines")
	return cmd
}

func newRoutinesDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <routine-id>",
		Short: "Delete a routine after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			confirmer := dashboard.ConfirmerFunc(func(prompt string) bool {
				if yes {
					return true
				}
				return askYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
			})
			controller := dashboard.NewController(
				a.routines,
				session.NewManager(a.routines, a.logs, session.ManagerParams{}),
				confirmer,
			)

			deleted, err := controller.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !deleted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted routine %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}

// askYesNo prints the prompt and reads one answer line. Anything but y/yes is a no.
func askYesNo(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func dayTitle(day routines.Day) string {
	if day == "" {
		return "Unscheduled"
	}
	s := string(day)
	return strings.ToUpper(s[:1]) + s[1:]
}

func printRoutine(out io.Writer, r routines.Routine) {
	favorite := ""
	if r.IsFavorite {
		favorite = " *"
	}
	_, _ = fmt.Fprintf(out, "- %s%s (%s, %d exercises)\n", r.Name, favorite, r.ID, len(r.Exercises))
	for _, e := range r.Exercises {
		_, _ = fmt.Fprintf(out, "    %s [%s] %d x %d @ %s kg\n", e.Name, e.MuscleGroup, e.Sets, e.Reps, formatWeight(e.Weight))
	}
}

func formatWeight(w float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", w), "0"), ".")
}

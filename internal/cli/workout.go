package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/2beens/gymroutines/internal/gymstats/dashboard"
	"github.com/2beens/gymroutines/internal/gymstats/session"
)

const workoutHelp = `Commands:
  reps <set> <value>     set the reps of a working set (sets start at 1)
  weight <set> <value>   set the weight of a working set
  notes <text>           set the workout notes
  next | n               complete the exercise and move on
  back | b               go back one exercise
  show | s               show the current exercise
  cancel | q             cancel the workout, nothing is logged
  help | h               show this help`

func newWorkoutCmd() *cobra.Command {
	var (
		notes        string
		tickInterval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "workout <routine-id>",
		Short: "Run a guided workout session on a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			manager := session.NewManager(a.routines, a.logs, session.ManagerParams{})
			controller := dashboard.NewController(a.routines, manager, nil)

			s, err := controller.StartWorkout(args[0], notes)
			if err != nil {
				return err
			}
			// no-op once the session ended
			defer controller.Back()

			runner := &workoutRunner{
				out:     &lockedWriter{w: cmd.OutOrStdout()},
				session: s,
			}
			ticker := s.StartTicker(tickInterval, runner.redrawPrompt)
			defer ticker.Stop()

			return runner.run(cmd.Context(), cmd.InOrStdin())
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "workout notes")
	cmd.Flags().DurationVar(&tickInterval, "tick", session.DefaultTickInterval, "timer refresh interval")
	return cmd
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

type workoutRunner struct {
	out     io.Writer
	session *session.Session
}

func (r *workoutRunner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r *workoutRunner) redrawPrompt(elapsed string) {
	r.printf("\r[%s] > ", elapsed)
}

func (r *workoutRunner) prompt() {
	r.printf("[%s] > ", session.FormatElapsed(r.session.Elapsed()))
}

// run reads commands line by line until the session ends. Running out of
// input cancels the workout.
func (r *workoutRunner) run(ctx context.Context, in io.Reader) error {
	routine := r.session.Routine()
	r.printf("Starting %s, %d exercises. Type help for commands.\n", routine.Name, len(routine.Exercises))
	r.showCurrent()

	scanner := bufio.NewScanner(in)
	for {
		r.prompt()
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			r.printf("\n")
			return r.cancel()
		}

		done, err := r.handle(ctx, scanner.Text())
		if done {
			return err
		}
		if err != nil {
			r.printf("%s\n", err)
		}
	}
	r.printf("\n")

	if err := scanner.Err(); err != nil {
		_ = r.cancel()
		return fmt.Errorf("read input: %w", err)
	}
	return r.cancel()
}

// handle executes one command line and reports whether the session ended.
func (r *workoutRunner) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "reps", "weight":
		if len(fields) != 3 {
			return false, fmt.Errorf("usage: %s <set> <value>", fields[0])
		}
		setNumber, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("invalid set number: %s", fields[1])
		}
		value, err := parseSetValue(fields[2])
		if err != nil {
			return false, err
		}
		field := session.SetField(strings.ToLower(fields[0]))
		if err := r.session.EditSet(setNumber-1, field, value); err != nil {
			return false, err
		}
		r.showSets()
	case "notes":
		notes := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		if err := r.session.SetNotes(notes); err != nil {
			return false, err
		}
		r.printf("Notes saved.\n")
	case "next", "n":
		state, err := r.session.Advance(ctx)
		if finished, ok := state.(session.Finished); ok {
			r.printf(
				"Workout complete: %d exercises in %d min.\n",
				len(finished.Log.CompletedExercises), finished.Log.Duration,
			)
			return true, err
		}
		if err != nil {
			return false, err
		}
		r.showCurrent()
	case "back", "b":
		if _, err := r.session.Retreat(); err != nil {
			return false, err
		}
		r.showCurrent()
	case "show", "s":
		r.showCurrent()
	case "cancel", "q":
		return true, r.cancel()
	case "help", "h":
		r.printf("%s\n", workoutHelp)
	default:
		return false, fmt.Errorf("unknown command: %s (type help)", fields[0])
	}

	return false, nil
}

func (r *workoutRunner) cancel() error {
	if err := r.session.Cancel(); err != nil && !errors.Is(err, session.ErrSessionEnded) {
		return err
	}
	r.printf("Workout cancelled.\n")
	return nil
}

func (r *workoutRunner) showCurrent() {
	exercise, ok := r.session.CurrentExercise()
	if !ok {
		return
	}
	view := r.session.View()
	r.printf(
		"Exercise %d/%d: %s [%s], progress %.0f%%\n",
		view.ExerciseIndex+1, view.ExerciseCount, exercise.Name, exercise.MuscleGroup, view.Progress*100,
	)
	r.showSets()
}

func (r *workoutRunner) showSets() {
	for i, set := range r.session.WorkingSets() {
		r.printf("  set %d: %d reps @ %s kg\n", i+1, set.Reps, formatWeight(set.Weight))
	}
}

func parseSetValue(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("invalid value: %s", raw)
	}
	return value, nil
}

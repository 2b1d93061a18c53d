package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymroutines/internal/gymstats/dashboard"
	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/session"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
	"github.com/2beens/gymroutines/internal/storage"
)

var testCreatedAt = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func testRoutines() []routines.Routine {
	return []routines.Routine{
		{
			ID:   "r-legs",
			Name: "Leg Day",
			Exercises: []routines.Exercise{
				{ID: "e-squat", Name: "Squats", MuscleGroup: routines.MuscleGroupLegs, Sets: 1, Reps: 10, Weight: 60},
				{ID: "e-lunge", Name: "Lunges", MuscleGroup: routines.MuscleGroupLegs, Sets: 2, Reps: 12, Weight: 20},
			},
			Day:        routines.Monday,
			IsFavorite: true,
			CreatedAt:  testCreatedAt,
		},
		{
			ID:   "r-push",
			Name: "Push",
			Exercises: []routines.Exercise{
				{ID: "e-bench", Name: "Bench Press", MuscleGroup: routines.MuscleGroupChest, Sets: 3, Reps: 8, Weight: 80},
			},
			CreatedAt: testCreatedAt,
		},
	}
}

// newTestEnv writes a disk backed config and seeds the routines (and logs, if any).
func newTestEnv(t *testing.T, logs []workoutlogs.WorkoutLog) (configPath, dataDir string) {
	t.Helper()

	dir := t.TempDir()
	dataDir = filepath.Join(dir, "kv")

	kv, err := storage.NewDiskKV(dataDir)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, storage.NewCollection[routines.Routine](kv, routines.StorageKey).Save(ctx, testRoutines()))
	if len(logs) > 0 {
		require.NoError(t, storage.NewCollection[workoutlogs.WorkoutLog](kv, workoutlogs.StorageKey).Save(ctx, logs))
	}
	require.NoError(t, kv.Close())

	configPath = filepath.Join(dir, "config.toml")
	content := fmt.Sprintf(`[development]
storage_backend = "disk"
disk_root_path = %q
stats_timezone = "UTC"
`, dataDir)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return configPath, dataDir
}

func execute(t *testing.T, configPath, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--config", configPath))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func storedRoutines(t *testing.T, dataDir string) []routines.Routine {
	t.Helper()
	kv, err := storage.NewDiskKV(dataDir)
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()
	list, err := storage.NewCollection[routines.Routine](kv, routines.StorageKey).Load(context.Background())
	require.NoError(t, err)
	return list
}

func TestNewRootCmd_hasSubcommands(t *testing.T) {
	root := NewRootCmd("test")
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"routines", "logs", "stats", "workout"} {
		assert.True(t, names[want], "expected subcommand %q", want)
	}
}

func TestNewRootCmd_flags(t *testing.T) {
	root := NewRootCmd("1.2.3")
	assert.Equal(t, "1.2.3", root.Version)
	assert.Equal(t, "dev", NewRootCmd("").Version)
	for _, name := range []string{"env", "config", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "expected --%s persistent flag", name)
	}
}

func TestNewRootCmd_missingConfig(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "nope.toml"), "", "stats")
	assert.ErrorContains(t, err, "decode config")
}

func TestRoutinesList(t *testing.T) {
	configPath, _ := newTestEnv(t, nil)

	out, err := execute(t, configPath, "", "routines", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday:\n- Leg Day * (r-legs, 2 exercises)\n")
	assert.Contains(t, out, "    Squats [legs] 1 x 10 @ 60 kg\n")
	assert.Contains(t, out, "Unscheduled:\n- Push (r-push, 1 exercises)\n")
	assert.Less(t, strings.Index(out, "Monday:"), strings.Index(out, "Unscheduled:"))

	out, err = execute(t, configPath, "", "routines", "list", "--muscle-group", "chest")
	require.NoError(t, err)
	assert.Contains(t, out, "Push")
	assert.NotContains(t, out, "Leg Day")

	out, err = execute(t, configPath, "", "routines", "list", "--favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "Leg Day")
	assert.NotContains(t, out, "Push")

	out, err = execute(t, configPath, "", "routines", "list", "--muscle-group", "cardio")
	require.NoError(t, err)
	assert.Equal(t, "No routines.\n", out)

	_, err = execute(t, configPath, "", "routines", "list", "--muscle-group", "toes")
	assert.ErrorIs(t, err, routines.ErrInvalidMuscleGroup)
}

func TestRoutinesDelete(t *testing.T) {
	configPath, dataDir := newTestEnv(t, nil)

	out, err := execute(t, configPath, "n\n", "routines", "delete", "r-legs")
	require.NoError(t, err)
	assert.Contains(t, out, dashboard.DeleteConfirmationPrompt+" [y/N]: ")
	assert.Contains(t, out, "Aborted.")
	assert.Len(t, storedRoutines(t, dataDir), 2)

	// no answer at all is a no
	out, err = execute(t, configPath, "", "routines", "delete", "r-legs")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = execute(t, configPath, "y\n", "routines", "delete", "r-legs")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted routine r-legs")
	stored := storedRoutines(t, dataDir)
	require.Len(t, stored, 1)
	assert.Equal(t, "r-push", stored[0].ID)

	out, err = execute(t, configPath, "", "routines", "delete", "r-push", "--yes")
	require.NoError(t, err)
	assert.NotContains(t, out, dashboard.DeleteConfirmationPrompt)
	assert.Empty(t, storedRoutines(t, dataDir))

	_, err = execute(t, configPath, "y\n", "routines", "delete", "r-gone")
	assert.ErrorIs(t, err, dashboard.ErrRoutineNotFound)
}

func TestWorkout_complete(t *testing.T) {
	configPath, _ := newTestEnv(t, nil)

	stdin := strings.Join([]string{
		"reps 1 12",
		"weight 1 62.5",
		"notes felt strong",
		"next",
		"back",
		"show",
		"next",
		"next",
		"",
	}, "\n")
	out, err := execute(t, configPath, stdin, "workout", "r-legs", "--tick", "1h")
	require.NoError(t, err)

	assert.Contains(t, out, "Starting Leg Day, 2 exercises.")
	assert.Contains(t, out, "Exercise 1/2: Squats [legs], progress 0%\n  set 1: 10 reps @ 60 kg\n")
	assert.Contains(t, out, "set 1: 12 reps @ 62.5 kg")
	assert.Contains(t, out, "Notes saved.")
	assert.Contains(t, out, "Exercise 2/2: Lunges [legs], progress 50%\n  set 1: 12 reps @ 20 kg\n  set 2: 12 reps @ 20 kg\n")
	// going back re-commits the squats, so they are logged twice
	assert.Contains(t, out, "Workout complete: 3 exercises in 0 min.")
	assert.NotContains(t, out, "Workout cancelled.")

	out, err = execute(t, configPath, "", "logs", "recent")
	require.NoError(t, err)
	assert.Contains(t, out, "  Leg Day  0 min  3 exercises\n    felt strong\n")

	out, err = execute(t, configPath, "", "stats", "history", "e-squat")
	require.NoError(t, err)
	assert.Contains(t, out, "2 sets  avg 11.0 reps @ 61.25 kg")
}

func TestWorkout_endOfInputCancels(t *testing.T) {
	configPath, _ := newTestEnv(t, nil)

	out, err := execute(t, configPath, "next\n", "workout", "r-legs", "--tick", "1h")
	require.NoError(t, err)
	assert.Contains(t, out, "Exercise 2/2: Lunges")
	assert.Contains(t, out, "Workout cancelled.")

	out, err = execute(t, configPath, "", "logs", "recent")
	require.NoError(t, err)
	assert.Equal(t, "No workouts logged yet.\n", out)
}

func TestWorkout_badInput(t *testing.T) {
	configPath, _ := newTestEnv(t, nil)

	stdin := strings.Join([]string{
		"reps 1 NaN",
		"weight 1 heavy",
		"reps one 5",
		"reps 9 5",
		"reps 1",
		"jump",
		"q",
		"",
	}, "\n")
	out, err := execute(t, configPath, stdin, "workout", "r-legs", "--tick", "1h")
	require.NoError(t, err)
	assert.Contains(t, out, "invalid value: NaN")
	assert.Contains(t, out, "invalid value: heavy")
	assert.Contains(t, out, "invalid set number: one")
	assert.Contains(t, out, session.ErrSetIndexOutOfRange.Error())
	assert.Contains(t, out, "usage: reps <set> <value>")
	assert.Contains(t, out, "unknown command: jump")
	assert.Contains(t, out, "Workout cancelled.")
}

func TestWorkout_unknownRoutine(t *testing.T) {
	configPath, _ := newTestEnv(t, nil)

	_, err := execute(t, configPath, "", "workout", "r-gone")
	assert.ErrorIs(t, err, session.ErrRoutineNotFound)
}

func TestWorkout_timerLine(t *testing.T) {
	configPath, _ := newTestEnv(t, nil)

	// the ticker redraws the prompt while the input is still being read
	in, inWriter := io.Pipe()
	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(in)
	root.SetArgs([]string{"workout", "r-legs", "--tick", "5ms", "--config", configPath})

	done := make(chan error, 1)
	go func() {
		done <- root.ExecuteContext(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	_, _ = inWriter.Write([]byte("cancel\n"))
	require.NoError(t, <-done)
	_ = inWriter.Close()

	assert.Contains(t, out.String(), "\r[00:00:00] > ")
}

func TestLogsRecent(t *testing.T) {
	logs := []workoutlogs.WorkoutLog{
		{ID: "l-1", RoutineID: "r-legs", Date: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Duration: 45},
		{ID: "l-2", RoutineID: "r-deleted", Date: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC), Duration: 30},
		{ID: "l-3", RoutineID: "r-push", Date: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), Duration: 50},
	}
	configPath, _ := newTestEnv(t, logs)

	out, err := execute(t, configPath, "", "logs", "recent", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"- 2024-01-03 10:00:00  Unknown Routine  30 min  0 exercises\n"+
			"- 2024-01-02 10:00:00  Push  50 min  0 exercises\n",
		out,
	)

	_, err = execute(t, configPath, "", "logs", "recent", "--limit", "0")
	assert.ErrorContains(t, err, "--limit must be positive")
}

func TestStats(t *testing.T) {
	configPath, _ := newTestEnv(t, nil)

	out, err := execute(t, configPath, "", "stats")
	require.NoError(t, err)
	assert.Equal(t, "No workouts logged yet.\n", out)

	logs := []workoutlogs.WorkoutLog{
		{
			ID:        "l-1",
			RoutineID: "r-legs",
			CompletedExercises: []workoutlogs.CompletedExercise{
				{ExerciseID: "e-squat", Sets: []workoutlogs.CompletedSet{{Reps: 10, Weight: 60}}},
			},
			Date:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			Duration: 45,
		},
		{ID: "l-2", RoutineID: "r-legs", Date: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), Duration: 30},
	}
	configPath, _ = newTestEnv(t, logs)

	out, err = execute(t, configPath, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total workouts:  2\n")
	assert.Contains(t, out, "Total time:      1h 15m\n")
	assert.Contains(t, out, "Active routines: 1\n")
	assert.Contains(t, out, "1. Leg Day (2 exercises): 2 workouts\n")
	assert.Contains(t, out, "Monday      2 ####################\n")
	assert.Contains(t, out, "Sunday      0 \n")
	assert.Contains(t, out, "1. Squats: 1\n")
	assert.Contains(t, out, "- 2024-01-08  Leg Day  30 min  0 exercises\n")

	out, err = execute(t, configPath, "", "stats", "history", "e-unknown")
	require.NoError(t, err)
	assert.Equal(t, "No history for exercise e-unknown.\n", out)
}

func TestAskYesNo(t *testing.T) {
	for answer, want := range map[string]bool{
		"y\n":     true,
		"YES\n":   true,
		" yes ":   true,
		"n\n":     false,
		"\n":      false,
		"":        false,
		"maybe\n": false,
	} {
		var out bytes.Buffer
		got := askYesNo(strings.NewReader(answer), &out, "Sure?")
		assert.Equal(t, want, got, "answer %q", answer)
		assert.Equal(t, "Sure? [y/N]: ", out.String())
	}
}

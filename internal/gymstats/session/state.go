package session

import "github.com/2beens/gymroutines/internal/gymstats/workoutlogs"

// State is either AwaitingExercise or Finished.
type State interface {
	isState()
	Name() string
}

// AwaitingExercise is the state of performing the exercise at Index.
type AwaitingExercise struct {
	Index int
}

func (AwaitingExercise) isState() {}

func (AwaitingExercise) Name() string {
	return "awaiting_exercise"
}

// Finished holds the log emitted when the last exercise was completed.
type Finished struct {
	Log workoutlogs.WorkoutLog
}

func (Finished) isState() {}

func (Finished) Name() string {
	return "finished"
}

package session

import (
	"time"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
)

const StateCancelled = "cancelled"

// View is a read-only snapshot of a session for the HTTP and CLI surfaces.
type View struct {
	ID                 string                          `json:"id"`
	RoutineID          string                          `json:"routineId"`
	RoutineName        string                          `json:"routineName"`
	State              string                          `json:"state"`
	ExerciseIndex      int                             `json:"exerciseIndex"`
	ExerciseCount      int                             `json:"exerciseCount"`
	CurrentExercise    *routines.Exercise              `json:"currentExercise,omitempty"`
	WorkingSets        []workoutlogs.CompletedSet      `json:"workingSets"`
	CompletedExercises []workoutlogs.CompletedExercise `json:"completedExercises"`
	Progress           float64                         `json:"progress"`
	Elapsed            string                          `json:"elapsed"`
	StartedAt          time.Time                       `json:"startedAt"`
	Log                *workoutlogs.WorkoutLog         `json:"log,omitempty"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:                 s.id,
		RoutineID:          s.routine.ID,
		RoutineName:        s.routine.Name,
		State:              s.state.Name(),
		ExerciseCount:      len(s.routine.Exercises),
		WorkingSets:        cloneSets(s.workingSets),
		CompletedExercises: cloneCompleted(s.completed),
		Progress:           s.progress(),
		Elapsed:            FormatElapsed(s.now().Sub(s.startedAt)),
		StartedAt:          s.startedAt,
	}

	switch state := s.state.(type) {
	case AwaitingExercise:
		v.ExerciseIndex = state.Index
		if !s.cancelled {
			exercise := s.routine.Exercises[state.Index]
			v.CurrentExercise = &exercise
		}
	case Finished:
		v.ExerciseIndex = len(s.routine.Exercises)
		workoutLog := state.Log.Clone()
		v.Log = &workoutLog
	}
	if s.cancelled {
		v.State = StateCancelled
	}

	return v
}

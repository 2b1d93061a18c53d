package workoutlogs

import (
	"encoding/json"
	"math"
	"time"
)

type CompletedSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// MarshalJSON writes a NaN or infinite weight as null, which reads back as 0.
func (s CompletedSet) MarshalJSON() ([]byte, error) {
	var weight *float64
	if !math.IsNaN(s.Weight) && !math.IsInf(s.Weight, 0) {
		weight = &s.Weight
	}
	return json.Marshal(struct {
		Reps   int      `json:"reps"`
		Weight *float64 `json:"weight"`
	}{
		Reps:   s.Reps,
		Weight: weight,
	})
}

type CompletedExercise struct {
	ExerciseID string         `json:"exerciseId"`
	Sets       []CompletedSet `json:"sets"`
}

// WorkoutLog is the record of one finished workout. It is never changed after creation.
// RoutineID may point to a routine that no longer exists.
type WorkoutLog struct {
	ID                 string              `json:"id"`
	RoutineID          string              `json:"routineId"`
	CompletedExercises []CompletedExercise `json:"completedExercises"`
	Date               time.Time           `json:"date"`
	// Duration in whole minutes.
	Duration int    `json:"duration"`
	Notes    string `json:"notes,omitempty"`
}

func (l WorkoutLog) Clone() WorkoutLog {
	l.CompletedExercises = cloneCompleted(l.CompletedExercises)
	return l
}

func cloneCompleted(completed []CompletedExercise) []CompletedExercise {
	cp := make([]CompletedExercise, len(completed))
	for i, ce := range completed {
		sets := make([]CompletedSet, len(ce.Sets))
		copy(sets, ce.Sets)
		cp[i] = CompletedExercise{
			ExerciseID: ce.ExerciseID,
			Sets:       sets,
		}
	}
	return cp
}

func cloneLogs(logs []WorkoutLog) []WorkoutLog {
	cp := make([]WorkoutLog, len(logs))
	for i := range logs {
		cp[i] = logs[i].Clone()
	}
	return cp
}

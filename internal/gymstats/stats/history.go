package stats

import (
	"sort"
	"time"

	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
)

// ExerciseHistory represents the history of one routine exercise
// so that, for each day, we get the average weight and reps per set
type ExerciseHistory struct {
	ExerciseID string         `json:"exerciseId"`
	Days       []ExerciseStat `json:"days"`
}

type ExerciseStat struct {
	Day       time.Time `json:"day"`
	AvgWeight float64   `json:"avgWeight"`
	AvgReps   float64   `json:"avgReps"`
	Sets      int       `json:"sets"`
}

// NewExerciseHistory aggregates the sets performed for exerciseID per calendar day
// in loc, oldest day first.
func NewExerciseHistory(logs []workoutlogs.WorkoutLog, exerciseID string, loc *time.Location) ExerciseHistory {
	if loc == nil {
		loc = time.UTC
	}

	type dayTotals struct {
		weight float64
		reps   int
		sets   int
	}

	day2totals := make(map[time.Time]*dayTotals)
	for _, l := range logs {
		date := l.Date.In(loc)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
		for _, ce := range l.CompletedExercises {
			if ce.ExerciseID != exerciseID {
				continue
			}
			totals, ok := day2totals[day]
			if !ok {
				totals = &dayTotals{}
				day2totals[day] = totals
			}
			for _, set := range ce.Sets {
				totals.weight += set.Weight
				totals.reps += set.Reps
				totals.sets++
			}
		}
	}

	history := ExerciseHistory{
		ExerciseID: exerciseID,
		Days:       make([]ExerciseStat, 0, len(day2totals)),
	}
	for day, totals := range day2totals {
		stat := ExerciseStat{
			Day:  day,
			Sets: totals.sets,
		}
		if totals.sets > 0 {
			stat.AvgWeight = totals.weight / float64(totals.sets)
			stat.AvgReps = float64(totals.reps) / float64(totals.sets)
		}
		history.Days = append(history.Days, stat)
	}
	sort.Slice(history.Days, func(i, j int) bool {
		return history.Days[i].Day.Before(history.Days[j].Day)
	})

	return history
}

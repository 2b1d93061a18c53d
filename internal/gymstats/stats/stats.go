package stats

import (
	"sort"
	"time"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
)

const (
	TopN               = 5
	UnknownRoutineName = "Unknown Routine"
)

// Weekdays in display order, Sunday first.
var Weekdays = []time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

type RoutinePopularity struct {
	RoutineID     string `json:"routineId"`
	RoutineName   string `json:"routineName"`
	ExerciseCount int    `json:"exerciseCount"`
	Count         int    `json:"count"`
}

type WeekdayFrequency struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
	// Ratio to the busiest day, 0..1.
	Ratio float64 `json:"ratio"`
}

type ExerciseFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RecentActivity struct {
	ID             string    `json:"id"`
	RoutineID      string    `json:"routineId"`
	RoutineName    string    `json:"routineName"`
	Date           time.Time `json:"date"`
	Duration       int       `json:"duration"`
	ExercisesCount int       `json:"exercisesCount"`
}

// Statistics over all workout logs. When Empty is set there were no logs and
// none of the other fields carry data.
type Statistics struct {
	Empty          bool                `json:"empty"`
	TotalWorkouts  int                 `json:"totalWorkouts"`
	TotalMinutes   int                 `json:"totalMinutes"`
	Hours          int                 `json:"hours"`
	Minutes        int                 `json:"minutes"`
	ActiveRoutines int                 `json:"activeRoutines"`
	Popularity     []RoutinePopularity `json:"popularity,omitempty"`
	Weekdays       []WeekdayFrequency  `json:"weekdays,omitempty"`
	TopExercises   []ExerciseFrequency `json:"topExercises,omitempty"`
	Recent         []RecentActivity    `json:"recent,omitempty"`
}

// ByWeekday returns the weekday counts keyed by day name, all seven days present.
func (s Statistics) ByWeekday() map[string]int {
	byDay := make(map[string]int, len(Weekdays))
	for _, wd := range Weekdays {
		byDay[wd.String()] = 0
	}
	for _, f := range s.Weekdays {
		byDay[f.Day] = f.Count
	}
	return byDay
}

// Compute derives the statistics from a snapshot of routines and logs. Weekdays
// are taken in loc, UTC when loc is nil. Neither input is modified.
func Compute(routineList []routines.Routine, logs []workoutlogs.WorkoutLog, loc *time.Location) Statistics {
	if len(logs) == 0 {
		return Statistics{Empty: true}
	}
	if loc == nil {
		loc = time.UTC
	}

	byID := make(map[string]routines.Routine, len(routineList))
	for _, r := range routineList {
		byID[r.ID] = r
	}

	totalMinutes := 0
	for _, l := range logs {
		totalMinutes += l.Duration
	}

	popularity := popularityByRoutine(byID, logs)

	return Statistics{
		TotalWorkouts:  len(logs),
		TotalMinutes:   totalMinutes,
		Hours:          totalMinutes / 60,
		Minutes:        totalMinutes % 60,
		ActiveRoutines: len(popularity),
		Popularity:     top(popularity, TopN),
		Weekdays:       frequencyByWeekday(logs, loc),
		TopExercises:   top(topExercises(byID, logs), TopN),
		Recent:         recentActivity(byID, logs, TopN),
	}
}

func popularityByRoutine(byID map[string]routines.Routine, logs []workoutlogs.WorkoutLog) []RoutinePopularity {
	var order []string
	counts := make(map[string]int)
	for _, l := range logs {
		if _, ok := counts[l.RoutineID]; !ok {
			order = append(order, l.RoutineID)
		}
		counts[l.RoutineID]++
	}

	popularity := make([]RoutinePopularity, 0, len(order))
	for _, routineID := range order {
		r, ok := byID[routineID]
		if !ok {
			continue
		}
		popularity = append(popularity, RoutinePopularity{
			RoutineID:     routineID,
			RoutineName:   r.Name,
			ExerciseCount: len(r.Exercises),
			Count:         counts[routineID],
		})
	}

	sort.SliceStable(popularity, func(i, j int) bool {
		return popularity[i].Count > popularity[j].Count
	})
	return popularity
}

func frequencyByWeekday(logs []workoutlogs.WorkoutLog, loc *time.Location) []WeekdayFrequency {
	counts := make(map[time.Weekday]int, len(Weekdays))
	maxCount := 0
	for _, l := range logs {
		wd := l.Date.In(loc).Weekday()
		counts[wd]++
		if counts[wd] > maxCount {
			maxCount = counts[wd]
		}
	}

	frequencies := make([]WeekdayFrequency, 0, len(Weekdays))
	for _, wd := range Weekdays {
		f := WeekdayFrequency{
			Day:   wd.String(),
			Count: counts[wd],
		}
		if maxCount > 0 {
			f.Ratio = float64(f.Count) / float64(maxCount)
		}
		frequencies = append(frequencies, f)
	}
	return frequencies
}

// topExercises resolves names through the current exercises of each log's routine.
// Occurrences whose routine or exercise no longer exists are dropped.
func topExercises(byID map[string]routines.Routine, logs []workoutlogs.WorkoutLog) []ExerciseFrequency {
	var order []string
	counts := make(map[string]int)
	for _, l := range logs {
		r, ok := byID[l.RoutineID]
		if !ok {
			continue
		}
		for _, ce := range l.CompletedExercises {
			e, ok := r.FindExercise(ce.ExerciseID)
			if !ok {
				continue
			}
			if _, seen := counts[e.Name]; !seen {
				order = append(order, e.Name)
			}
			counts[e.Name]++
		}
	}

	frequencies := make([]ExerciseFrequency, 0, len(order))
	for _, name := range order {
		frequencies = append(frequencies, ExerciseFrequency{
			Name:  name,
			Count: counts[name],
		})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})
	return frequencies
}

func recentActivity(byID map[string]routines.Routine, logs []workoutlogs.WorkoutLog, limit int) []RecentActivity {
	recent := workoutlogs.Recent(logs, limit)

	activities := make([]RecentActivity, 0, len(recent))
	for _, l := range recent {
		name := UnknownRoutineName
		if r, ok := byID[l.RoutineID]; ok {
			name = r.Name
		}
		activities = append(activities, RecentActivity{
			ID:             l.ID,
			RoutineID:      l.RoutineID,
			RoutineName:    name,
			Date:           l.Date,
			Duration:       l.Duration,
			ExercisesCount: len(l.CompletedExercises),
		})
	}
	return activities
}

func top[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

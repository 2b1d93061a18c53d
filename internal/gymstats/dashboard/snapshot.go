package dashboard

import (
	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/stats"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
)

const RecentLogsLimit = 5

type RecentLog struct {
	workoutlogs.WorkoutLog
	RoutineName string `json:"routineName"`
}

type Snapshot struct {
	MuscleGroup   routines.MuscleGroup `json:"muscleGroup,omitempty"`
	FavoritesOnly bool                 `json:"favoritesOnly"`
	Count         int                  `json:"count"`
	Days          []routines.DayGroup  `json:"days"`
	Recent        []RecentLog          `json:"recent"`
}

// NewSnapshot filters the routines, groups them by day and attaches the most
// recent workouts with their routine names.
func NewSnapshot(routineList []routines.Routine, logs []workoutlogs.WorkoutLog, params routines.FilterParams) Snapshot {
	filtered := routines.Filter(routineList, params)

	names := make(map[string]string, len(routineList))
	for _, r := range routineList {
		names[r.ID] = r.Name
	}

	recentLogs := workoutlogs.Recent(logs, RecentLogsLimit)
	recent := make([]RecentLog, 0, len(recentLogs))
	for _, l := range recentLogs {
		name, ok := names[l.RoutineID]
		if !ok {
			name = stats.UnknownRoutineName
		}
		recent = append(recent, RecentLog{
			WorkoutLog:  l,
			RoutineName: name,
		})
	}

	return Snapshot{
		MuscleGroup:   params.MuscleGroup,
		FavoritesOnly: params.FavoritesOnly,
		Count:         len(filtered),
		Days:          routines.GroupByDay(filtered),
		Recent:        recent,
	}
}

package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymroutines/internal/gymstats/dashboard"
	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
)

func TestNewSnapshot(t *testing.T) {
	seed := routines.SeedRoutines(routines.NewCatalog(sequential()), sequential(), testStart)
	unscheduled := legDay()
	unscheduled.ID = "r-anytime"
	unscheduled.Day = ""
	routineList := append(seed, unscheduled)

	var logs []workoutlogs.WorkoutLog
	for i := 0; i < 7; i++ {
		logs = append(logs, workoutlogs.WorkoutLog{
			ID:        string(rune('a' + i)),
			RoutineID: seed[i%len(seed)].ID,
			Date:      testStart.Add(time.Duration(i) * time.Hour),
		})
	}
	logs = append(logs, workoutlogs.WorkoutLog{ID: "dangling", RoutineID: "deleted", Date: testStart.AddDate(0, 0, 1)})

	snapshot := dashboard.NewSnapshot(routineList, logs, routines.FilterParams{})
	assert.Equal(t, 4, snapshot.Count)
	require.Len(t, snapshot.Days, 4)
	assert.Equal(t, routines.Monday, snapshot.Days[0].Day)
	assert.Equal(t, routines.Day(""), snapshot.Days[3].Day)

	require.Len(t, snapshot.Recent, dashboard.RecentLogsLimit)
	assert.Equal(t, "dangling", snapshot.Recent[0].ID)
	assert.Equal(t, "Unknown Routine", snapshot.Recent[0].RoutineName)
	assert.Equal(t, "g", snapshot.Recent[1].ID)
	assert.Equal(t, seed[0].Name, snapshot.Recent[1].RoutineName)
}

func TestNewSnapshot_Filtered(t *testing.T) {
	seed := routines.SeedRoutines(routines.NewCatalog(sequential()), sequential(), testStart)

	snapshot := dashboard.NewSnapshot(seed, nil, routines.FilterParams{FavoritesOnly: true})
	assert.True(t, snapshot.FavoritesOnly)
	assert.Equal(t, 2, snapshot.Count)
	assert.NotNil(t, snapshot.Recent)
	assert.Empty(t, snapshot.Recent)

	snapshot = dashboard.NewSnapshot(seed, nil, routines.FilterParams{MuscleGroup: routines.MuscleGroupCardio})
	assert.Zero(t, snapshot.Count)
	assert.Empty(t, snapshot.Days)
}

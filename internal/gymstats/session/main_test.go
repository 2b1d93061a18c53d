package session_test

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 6, 18, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type routineMap map[string]routines.Routine

func (m routineMap) FindByID(id string) (routines.Routine, bool) {
	r, ok := m[id]
	return r, ok
}

func legDay() routines.Routine {
	return routines.Routine{
		ID:   "leg-day",
		Name: "Leg Day",
		Exercises: []routines.Exercise{
			{ID: "squat", Name: "Squats", MuscleGroup: routines.MuscleGroupLegs, Sets: 3, Reps: 10, Weight: 100},
		},
	}
}

func fullBody() routines.Routine {
	return routines.Routine{
		ID:   "full-body",
		Name: "Full Body",
		Exercises: []routines.Exercise{
			{ID: "bench", Name: "Bench Press", MuscleGroup: routines.MuscleGroupChest, Sets: 2, Reps: 10, Weight: 60},
			{ID: "row", Name: "Row", MuscleGroup: routines.MuscleGroupBack, Sets: 3, Reps: 8, Weight: 50},
			{ID: "plank", Name: "Plank", MuscleGroup: routines.MuscleGroupCore, Sets: 1, Reps: 1, Weight: 0},
		},
	}
}

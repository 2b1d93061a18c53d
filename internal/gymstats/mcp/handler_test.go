package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/stats"
)

// mockContextService implements contextService for tests.
type mockContextService struct {
	routines    []routines.Routine
	routinesErr error
	gotFilter   routines.FilterParams
	recent      []RecentWorkout
	recentErr   error
	gotLimit    int
	statistics  string
	statsErr    error
	history     stats.ExerciseHistory
	historyErr  error
	gotExercise string
}

func (m *mockContextService) GetRoutines(_ context.Context, params routines.FilterParams) ([]routines.Routine, error) {
	m.gotFilter = params
	return m.routines, m.routinesErr
}

func (m *mockContextService) GetRecentWorkouts(_ context.Context, limit int) ([]RecentWorkout, error) {
	m.gotLimit = limit
	return m.recent, m.recentErr
}

func (m *mockContextService) GetStatistics(_ context.Context) (string, error) {
	return m.statistics, m.statsErr
}

func (m *mockContextService) GetExerciseHistory(_ context.Context, exerciseID string) (stats.ExerciseHistory, error) {
	m.gotExercise = exerciseID
	return m.history, m.historyErr
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

// Tests for GetRoutinesTool.
func TestHandler_GetRoutinesTool(t *testing.T) {
	t.Run("returns_routines", func(t *testing.T) {
		svc := &mockContextService{routines: []routines.Routine{{ID: "r1", Name: "Leg Day"}}}
		fn := NewHandler(svc).GetRoutinesTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, RoutinesInput{MuscleGroup: "legs", FavoritesOnly: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError: %s", resultText(t, res))
		}
		if svc.gotFilter.MuscleGroup != routines.MuscleGroupLegs || !svc.gotFilter.FavoritesOnly {
			t.Fatalf("filter = %+v", svc.gotFilter)
		}
		var got []routines.Routine
		if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Leg Day" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("returns_error_when_service_fails", func(t *testing.T) {
		svc := &mockContextService{routinesErr: ErrInvalidMuscleGroup}
		fn := NewHandler(svc).GetRoutinesTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, RoutinesInput{MuscleGroup: "wings"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if text := resultText(t, res); text != "Error fetching routines: invalid muscle group" {
			t.Fatalf("content text = %q", text)
		}
	})
}

// Tests for GetRecentWorkoutsTool.
func TestHandler_GetRecentWorkoutsTool(t *testing.T) {
	t.Run("negative_limit", func(t *testing.T) {
		fn := NewHandler(&mockContextService{}).GetRecentWorkoutsTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, RecentWorkoutsInput{Limit: -1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
	})

	t.Run("returns_workouts", func(t *testing.T) {
		svc := &mockContextService{recent: []RecentWorkout{{ID: "l1", RoutineName: "Leg Day"}}}
		fn := NewHandler(svc).GetRecentWorkoutsTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, RecentWorkoutsInput{Limit: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError: %s", resultText(t, res))
		}
		if svc.gotLimit != 3 {
			t.Fatalf("limit = %d, want 3", svc.gotLimit)
		}
	})

	t.Run("returns_error_when_service_fails", func(t *testing.T) {
		svc := &mockContextService{recentErr: context.Canceled}
		fn := NewHandler(svc).GetRecentWorkoutsTool()
		res, _, _ := fn(context.Background(), &mcp.CallToolRequest{}, RecentWorkoutsInput{})
		if text := resultText(t, res); !res.IsError || text != "Error fetching workouts: context canceled" {
			t.Fatalf("content text = %q", text)
		}
	})
}

// Tests for GetWorkoutStatisticsTool.
func TestHandler_GetWorkoutStatisticsTool(t *testing.T) {
	t.Run("returns_statistics", func(t *testing.T) {
		want := "# Workout Statistics\n"
		fn := NewHandler(&mockContextService{statistics: want}).GetWorkoutStatisticsTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text := resultText(t, res); res.IsError || text != want {
			t.Fatalf("content text = %q, want %q", text, want)
		}
	})

	t.Run("returns_error_when_service_fails", func(t *testing.T) {
		fn := NewHandler(&mockContextService{statsErr: errors.New("boom")}).GetWorkoutStatisticsTool()
		res, _, _ := fn(context.Background(), &mcp.CallToolRequest{}, nil)
		if text := resultText(t, res); !res.IsError || text != "Error computing statistics: boom" {
			t.Fatalf("content text = %q", text)
		}
	})
}

// Tests for GetExerciseHistoryTool.
func TestHandler_GetExerciseHistoryTool(t *testing.T) {
	t.Run("missing_exercise_id", func(t *testing.T) {
		fn := NewHandler(&mockContextService{}).GetExerciseHistoryTool()
		res, _, _ := fn(context.Background(), &mcp.CallToolRequest{}, ExerciseHistoryInput{})
		if text := resultText(t, res); !res.IsError || text != "Missing exercise_id" {
			t.Fatalf("content text = %q", text)
		}
	})

	t.Run("returns_history", func(t *testing.T) {
		svc := &mockContextService{history: stats.ExerciseHistory{ExerciseID: "e1", Days: []stats.ExerciseStat{{Sets: 3}}}}
		fn := NewHandler(svc).GetExerciseHistoryTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, ExerciseHistoryInput{ExerciseID: "e1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError: %s", resultText(t, res))
		}
		if svc.gotExercise != "e1" {
			t.Fatalf("exercise = %q", svc.gotExercise)
		}
	})
}

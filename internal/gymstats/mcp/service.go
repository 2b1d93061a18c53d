package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/stats"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
)

const maxRecentWorkouts = 50

var ErrInvalidMuscleGroup = errors.New("invalid muscle group")

// RoutinesRepo provides the routine list (for dependency injection and testing).
type RoutinesRepo interface {
	List() []routines.Routine
}

// LogsRepo provides the workout logs (for dependency injection and testing).
type LogsRepo interface {
	List() []workoutlogs.WorkoutLog
	Recent(limit int) []workoutlogs.WorkoutLog
}

// contextService provides routines, workouts and statistics to the MCP tools.
// Used by Handler for testability.
type contextService interface {
	GetRoutines(ctx context.Context, params routines.FilterParams) ([]routines.Routine, error)
	GetRecentWorkouts(ctx context.Context, limit int) ([]RecentWorkout, error)
	GetStatistics(ctx context.Context) (string, error)
	GetExerciseHistory(ctx context.Context, exerciseID string) (stats.ExerciseHistory, error)
}

// RecentWorkout is a workout log with its routine name resolved.
type RecentWorkout struct {
	ID          string    `json:"id"`
	RoutineID   string    `json:"routineId"`
	RoutineName string    `json:"routineName"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"`
	Exercises   int       `json:"exercises"`
	Notes       string    `json:"notes,omitempty"`
}

// ContextService holds dependencies and implements the MCP tools business logic.
type ContextService struct {
	routines RoutinesRepo
	logs     LogsRepo
	loc      *time.Location
}

// NewContextService builds a ContextService with the given dependencies.
func NewContextService(routinesRepo RoutinesRepo, logsRepo LogsRepo, loc *time.Location) *ContextService {
	if loc == nil {
		loc = time.UTC
	}
	return &ContextService{
		routines: routinesRepo,
		logs:     logsRepo,
		loc:      loc,
	}
}

// GetRoutines returns the routines, optionally filtered by muscle group and favorites.
func (s *ContextService) GetRoutines(ctx context.Context, params routines.FilterParams) ([]routines.Routine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if params.MuscleGroup != "" && !params.MuscleGroup.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMuscleGroup, params.MuscleGroup)
	}
	return routines.Filter(s.routines.List(), params), nil
}

// GetRecentWorkouts returns the newest workouts first, at most limit of them.
func (s *ContextService) GetRecentWorkouts(ctx context.Context, limit int) ([]RecentWorkout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = workoutlogs.DefaultRecentLimit
	}
	if limit > maxRecentWorkouts {
		limit = maxRecentWorkouts
	}

	names := make(map[string]string)
	for _, r := range s.routines.List() {
		names[r.ID] = r.Name
	}

	logs := s.logs.Recent(limit)
	recent := make([]RecentWorkout, 0, len(logs))
	for _, l := range logs {
		name, ok := names[l.RoutineID]
		if !ok {
			name = stats.UnknownRoutineName
		}
		recent = append(recent, RecentWorkout{
			ID:          l.ID,
			RoutineID:   l.RoutineID,
			RoutineName: name,
			Date:        l.Date,
			Duration:    l.Duration,
			Exercises:   len(l.CompletedExercises),
			Notes:       l.Notes,
		})
	}
	return recent, nil
}

// GetStatistics returns the workout statistics rendered as markdown.
func (s *ContextService) GetStatistics(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return formatStatistics(stats.Compute(s.routines.List(), s.logs.List(), s.loc)), nil
}

// GetExerciseHistory returns per-day stats (avg weight, avg reps, sets) for one routine exercise.
func (s *ContextService) GetExerciseHistory(ctx context.Context, exerciseID string) (stats.ExerciseHistory, error) {
	if err := ctx.Err(); err != nil {
		return stats.ExerciseHistory{}, err
	}
	return stats.NewExerciseHistory(s.logs.List(), exerciseID, s.loc), nil
}

func formatStatistics(st stats.Statistics) string {
	if st.Empty {
		return "# Workout Statistics\n\nNo workouts logged yet.\n"
	}

	var b strings.Builder
	b.WriteString("# Workout Statistics\n\n")
	b.WriteString(fmt.Sprintf("- Total workouts: %d\n", st.TotalWorkouts))
	b.WriteString(fmt.Sprintf("- Total time: %dh %dm\n", st.Hours, st.Minutes))
	b.WriteString(fmt.Sprintf("- Active routines: %d\n\n", st.ActiveRoutines))

	b.WriteString("## Most popular routines\n\n| Routine | Exercises | Workouts |\n|---------|-----------|----------|\n")
	for _, p := range st.Popularity {
		b.WriteString(fmt.Sprintf("| %s | %d | %d |\n", p.RoutineName, p.ExerciseCount, p.Count))
	}

	b.WriteString("\n## Workouts by weekday\n\n| Day | Workouts |\n|-----|----------|\n")
	for _, w := range st.Weekdays {
		b.WriteString(fmt.Sprintf("| %s | %d |\n", w.Day, w.Count))
	}

	b.WriteString("\n## Top exercises\n\n| Exercise | Times done |\n|----------|------------|\n")
	for _, e := range st.TopExercises {
		b.WriteString(fmt.Sprintf("| %s | %d |\n", e.Name, e.Count))
	}

	b.WriteString("\n## Recent activity\n\n| Date | Routine | Duration (min) | Exercises |\n|------|---------|----------------|-----------|\n")
	for _, a := range st.Recent {
		b.WriteString(fmt.Sprintf("| %s | %s | %d | %d |\n", a.Date.Format("2006-01-02"), a.RoutineName, a.Duration, a.ExercisesCount))
	}

	return b.String()
}

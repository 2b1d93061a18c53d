package routines

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrNameEmpty          = errors.New("routine name empty")
	ErrInvalidMuscleGroup = errors.New("invalid muscle group")
	ErrInvalidDay         = errors.New("invalid day")
	ErrInvalidExercise    = errors.New("invalid exercise")
)

type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "chest"
	MuscleGroupBack      MuscleGroup = "back"
	MuscleGroupLegs      MuscleGroup = "legs"
	MuscleGroupShoulders MuscleGroup = "shoulders"
	MuscleGroupArms      MuscleGroup = "arms"
	MuscleGroupCore      MuscleGroup = "core"
	MuscleGroupCardio    MuscleGroup = "cardio"
)

var AllMuscleGroups = []MuscleGroup{
	MuscleGroupChest,
	MuscleGroupBack,
	MuscleGroupLegs,
	MuscleGroupShoulders,
	MuscleGroupArms,
	MuscleGroupCore,
	MuscleGroupCardio,
}

func (g MuscleGroup) IsValid() bool {
	for _, mg := range AllMuscleGroups {
		if g == mg {
			return true
		}
	}
	return false
}

func (g MuscleGroup) String() string {
	return string(g)
}

// Day is the optional weekday a routine is scheduled on. The zero value means unscheduled.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// AllDays in schedule order, week starting on Monday.
var AllDays = []Day{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

func (d Day) IsValid() bool {
	return d.Order() >= 0
}

// Order is the day's position in AllDays, -1 for unscheduled or unknown days.
func (d Day) Order() int {
	for i, day := range AllDays {
		if d == day {
			return i
		}
	}
	return -1
}

func (d Day) String() string {
	return string(d)
}

type Exercise struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	Sets        int         `json:"sets"`
	Reps        int         `json:"reps"`
	Weight      float64     `json:"weight"`
	Notes       string      `json:"notes,omitempty"`
}

func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidExercise)
	}
	if !e.MuscleGroup.IsValid() {
		return fmt.Errorf("%w: [%s]", ErrInvalidMuscleGroup, e.MuscleGroup)
	}
	if e.Sets <= 0 {
		return fmt.Errorf("%w: sets must be positive, got %d", ErrInvalidExercise, e.Sets)
	}
	if e.Reps <= 0 {
		return fmt.Errorf("%w: reps must be positive, got %d", ErrInvalidExercise, e.Reps)
	}
	if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return fmt.Errorf("%w: weight must be a non-negative number, got %v", ErrInvalidExercise, e.Weight)
	}
	return nil
}

type Routine struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
	Day         Day        `json:"day,omitempty"`
	IsFavorite  bool       `json:"isFavorite"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// RoutineDraft is a routine before the store assigned it an id and creation time.
type RoutineDraft struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
	Day         Day        `json:"day,omitempty"`
	IsFavorite  bool       `json:"isFavorite"`
}

func (r Routine) Draft() RoutineDraft {
	return RoutineDraft{
		Name:        r.Name,
		Description: r.Description,
		Exercises:   cloneExercises(r.Exercises),
		Day:         r.Day,
		IsFavorite:  r.IsFavorite,
	}
}

func (r Routine) Validate() error {
	return r.Draft().Validate()
}

func (d RoutineDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameEmpty
	}
	if d.Day != "" && !d.Day.IsValid() {
		return fmt.Errorf("%w: [%s]", ErrInvalidDay, d.Day)
	}

	seenIDs := make(map[string]struct{}, len(d.Exercises))
	for i, e := range d.Exercises {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("exercise %d: %w", i, err)
		}
		if e.ID == "" {
			continue
		}
		if _, ok := seenIDs[e.ID]; ok {
			return fmt.Errorf("%w: duplicate exercise id [%s]", ErrInvalidExercise, e.ID)
		}
		seenIDs[e.ID] = struct{}{}
	}

	return nil
}

func (r Routine) HasMuscleGroup(group MuscleGroup) bool {
	for _, e := range r.Exercises {
		if e.MuscleGroup == group {
			return true
		}
	}
	return false
}

// MuscleGroups lists the distinct muscle groups of the routine in exercise order.
func (r Routine) MuscleGroups() []MuscleGroup {
	var groups []MuscleGroup
	seen := make(map[MuscleGroup]struct{})
	for _, e := range r.Exercises {
		if _, ok := seen[e.MuscleGroup]; ok {
			continue
		}
		seen[e.MuscleGroup] = struct{}{}
		groups = append(groups, e.MuscleGroup)
	}
	return groups
}

func (r Routine) FindExercise(exerciseID string) (Exercise, bool) {
	for _, e := range r.Exercises {
		if e.ID == exerciseID {
			return e, true
		}
	}
	return Exercise{}, false
}

// Clone returns a copy that shares no memory with r.
func (r Routine) Clone() Routine {
	r.Exercises = cloneExercises(r.Exercises)
	return r
}

func cloneExercises(exercises []Exercise) []Exercise {
	if exercises == nil {
		return []Exercise{}
	}
	cp := make([]Exercise, len(exercises))
	copy(cp, exercises)
	return cp
}

func cloneRoutines(routines []Routine) []Routine {
	cp := make([]Routine, len(routines))
	for i := range routines {
		cp[i] = routines[i].Clone()
	}
	return cp
}

package routines

import "time"

var catalogTemplate = []Exercise{
	{Name: "Bench Press", MuscleGroup: MuscleGroupChest, Sets: 3, Reps: 10, Weight: 135},
	{Name: "Squats", MuscleGroup: MuscleGroupLegs, Sets: 3, Reps: 10, Weight: 185},
	{Name: "Deadlift", MuscleGroup: MuscleGroupBack, Sets: 3, Reps: 8, Weight: 225},
	{Name: "Military Press", MuscleGroup: MuscleGroupShoulders, Sets: 3, Reps: 10, Weight: 95},
	{Name: "Biceps Curls", MuscleGroup: MuscleGroupArms, Sets: 3, Reps: 12, Weight: 35},
	{Name: "Push-ups", MuscleGroup: MuscleGroupChest, Sets: 3, Reps: 15, Weight: 0},
	{Name: "Pull-ups", MuscleGroup: MuscleGroupBack, Sets: 3, Reps: 8, Weight: 0},
	{Name: "Lunges", MuscleGroup: MuscleGroupLegs, Sets: 3, Reps: 10, Weight: 50},
}

type seedRoutine struct {
	name        string
	description string
	exercises   []int // indexes into the catalog
	day         Day
	isFavorite  bool
}

var seedRoutines = []seedRoutine{
	{
		name:        "Chest & Triceps",
		description: "Routine focused on chest and triceps",
		exercises:   []int{0, 3, 5},
		day:         Monday,
		isFavorite:  true,
	},
	{
		name:        "Lower Body Power",
		description: "Heavy leg day with squats and deadlifts",
		exercises:   []int{1, 2, 7},
		day:         Wednesday,
		isFavorite:  false,
	},
	{
		name:        "Back & Biceps",
		description: "Focus on back strength and arm definition",
		exercises:   []int{2, 4, 6},
		day:         Friday,
		isFavorite:  true,
	},
}

// NewCatalog builds the fixed exercise catalog with fresh ids.
func NewCatalog(newID func() string) []Exercise {
	catalog := make([]Exercise, len(catalogTemplate))
	for i, e := range catalogTemplate {
		e.ID = newID()
		catalog[i] = e
	}
	return catalog
}

// SeedRoutines builds the first-run routines out of catalog copies.
func SeedRoutines(catalog []Exercise, newID func() string, now time.Time) []Routine {
	routines := make([]Routine, 0, len(seedRoutines))
	for _, seed := range seedRoutines {
		exercises := make([]Exercise, 0, len(seed.exercises))
		for _, idx := range seed.exercises {
			if idx >= len(catalog) {
				continue
			}
			exercises = append(exercises, NewExerciseFromCatalog(catalog[idx], newID))
		}
		routines = append(routines, Routine{
			ID:          newID(),
			Name:        seed.name,
			Description: seed.description,
			Exercises:   exercises,
			Day:         seed.day,
			IsFavorite:  seed.isFavorite,
			CreatedAt:   now,
		})
	}
	return routines
}

// FilterCatalog returns the catalog entries of the given muscle group, or all of them
// when group is empty.
func FilterCatalog(catalog []Exercise, group MuscleGroup) []Exercise {
	filtered := make([]Exercise, 0, len(catalog))
	for _, e := range catalog {
		if group == "" || e.MuscleGroup == group {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

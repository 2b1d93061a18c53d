package routines

// NewExerciseFromCatalog copies a catalog entry into a routine exercise with its own id.
func NewExerciseFromCatalog(template Exercise, newID func() string) Exercise {
	e := template
	e.ID = newID()
	return e
}

// AddExercise appends a catalog copy to the routine's exercise list.
func AddExercise(r Routine, template Exercise, newID func() string) Routine {
	r = r.Clone()
	r.Exercises = append(r.Exercises, NewExerciseFromCatalog(template, newID))
	return r
}

// RemoveExercise drops the exercise with the given id, no-op if absent.
func RemoveExercise(r Routine, exerciseID string) Routine {
	r = r.Clone()
	kept := r.Exercises[:0]
	for _, e := range r.Exercises {
		if e.ID != exerciseID {
			kept = append(kept, e)
		}
	}
	r.Exercises = kept
	return r
}

type ExerciseDetails struct {
	Sets   *int     `json:"sets,omitempty"`
	Reps   *int     `json:"reps,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}

// UpdateExercise applies the non-nil details to the exercise with the given id.
// The bool result is false when the routine has no such exercise.
func UpdateExercise(r Routine, exerciseID string, details ExerciseDetails) (Routine, bool) {
	r = r.Clone()
	for i := range r.Exercises {
		if r.Exercises[i].ID != exerciseID {
			continue
		}
		if details.Sets != nil {
			r.Exercises[i].Sets = *details.Sets
		}
		if details.Reps != nil {
			r.Exercises[i].Reps = *details.Reps
		}
		if details.Weight != nil {
			r.Exercises[i].Weight = *details.Weight
		}
		if details.Notes != nil {
			r.Exercises[i].Notes = *details.Notes
		}
		return r, true
	}
	return r, false
}

package routines

type FilterParams struct {
	MuscleGroup   MuscleGroup
	FavoritesOnly bool
}

// Filter keeps routines with at least one exercise in the muscle group (if set),
// and only favorites when asked to. Order is preserved.
func Filter(routines []Routine, params FilterParams) []Routine {
	filtered := make([]Routine, 0, len(routines))
	for _, r := range routines {
		if params.MuscleGroup != "" && !r.HasMuscleGroup(params.MuscleGroup) {
			continue
		}
		if params.FavoritesOnly && !r.IsFavorite {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

type DayGroup struct {
	// Day is empty for the unscheduled group.
	Day      Day       `json:"day"`
	Routines []Routine `json:"routines"`
}

// GroupByDay groups routines by their scheduled day, Monday to Sunday, with the
// unscheduled ones last. Empty groups are left out.
func GroupByDay(routines []Routine) []DayGroup {
	byDay := make(map[Day][]Routine)
	for _, r := range routines {
		day := r.Day
		if !day.IsValid() {
			day = ""
		}
		byDay[day] = append(byDay[day], r)
	}

	order := make([]Day, 0, len(AllDays)+1)
	order = append(order, AllDays...)
	order = append(order, "")

	groups := make([]DayGroup, 0, len(byDay))
	for _, day := range order {
		if rs, ok := byDay[day]; ok {
			groups = append(groups, DayGroup{
				Day:      day,
				Routines: rs,
			})
		}
	}
	return groups
}

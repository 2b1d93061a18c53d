package routines

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymroutines/internal/storage"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
)

const StorageKey = "routines"

type Option func(s *Store)

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store owns the routines collection and the exercise catalog.
// Every mutation re-serializes the whole collection under StorageKey.
type Store struct {
	mu          sync.RWMutex
	routines    []Routine
	catalog     []Exercise
	collection  *storage.Collection[Routine]
	subscribers []func([]Routine)

	newID func() string
	now   func() time.Time
}

// NewStore loads the routines from kv. A missing or corrupt value is treated as a
// first run and the seed routines are used instead.
func NewStore(ctx context.Context, kv storage.KV, opts ...Option) *Store {
	s := &Store{
		collection: storage.NewCollection[Routine](kv, StorageKey),
		newID:      uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.catalog = NewCatalog(s.newID)

	routines, err := s.collection.Load(ctx)
	if err != nil {
		log.Warnf("routines store, load [%s]: %s, using seed routines", StorageKey, err)
		routines = SeedRoutines(s.catalog, s.newID, s.now())
	}
	s.routines = routines

	return s
}

// Subscribe registers fn to be called with the updated routines after every mutation.
func (s *Store) Subscribe(fn func([]Routine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) List() []Routine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRoutines(s.routines)
}

func (s *Store) Catalog() []Exercise {
	return cloneExercises(s.catalog)
}

func (s *Store) FindByID(id string) (Routine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Routine{}, false
	}
	return s.routines[idx].Clone(), true
}

func (s *Store) FindByMuscleGroup(group MuscleGroup) []Routine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]Routine, 0)
	for _, r := range s.routines {
		if r.HasMuscleGroup(group) {
			found = append(found, r.Clone())
		}
	}
	return found
}

// Add stores the draft as a new routine with a fresh id and creation time.
// Exercises without an id get one. A non-nil error is a persistence failure;
// the routine is kept in memory and returned either way.
func (s *Store) Add(ctx context.Context, draft RoutineDraft) (_ Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine := Routine{
		ID:          s.newID(),
		Name:        draft.Name,
		Description: draft.Description,
		Exercises:   s.assignExerciseIDs(draft.Exercises),
		Day:         draft.Day,
		IsFavorite:  draft.IsFavorite,
		CreatedAt:   s.now(),
	}
	span.SetAttributes(attribute.String("routine.id", routine.ID))

	err = s.mutate(ctx, func(routines []Routine) ([]Routine, bool) {
		return append(routines, routine), true
	})

	return routine.Clone(), err
}

// Update replaces the stored routine with the same id. Unknown ids are ignored.
// A zero CreatedAt keeps the stored one.
func (s *Store) Update(ctx context.Context, routine Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routine.ID))

	routine = routine.Clone()
	routine.Exercises = s.assignExerciseIDs(routine.Exercises)

	return s.mutate(ctx, func(routines []Routine) ([]Routine, bool) {
		idx := indexOf(routines, routine.ID)
		if idx < 0 {
			return routines, false
		}
		if routine.CreatedAt.IsZero() {
			routine.CreatedAt = routines[idx].CreatedAt
		}
		routines[idx] = routine
		return routines, true
	})
}

// Delete removes the routine, no-op if absent.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	return s.mutate(ctx, func(routines []Routine) ([]Routine, bool) {
		idx := indexOf(routines, id)
		if idx < 0 {
			return routines, false
		}
		return append(routines[:idx], routines[idx+1:]...), true
	})
}

// ToggleFavorite flips the favorite flag, no-op if absent.
func (s *Store) ToggleFavorite(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.routines.toggle_favorite")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	return s.mutate(ctx, func(routines []Routine) ([]Routine, bool) {
		idx := indexOf(routines, id)
		if idx < 0 {
			return routines, false
		}
		routines[idx].IsFavorite = !routines[idx].IsFavorite
		return routines, true
	})
}

// mutate applies fn under the write lock and, if fn changed anything, persists the
// collection and notifies subscribers with the new snapshot.
func (s *Store) mutate(ctx context.Context, fn func([]Routine) ([]Routine, bool)) error {
	s.mu.Lock()
	routines, changed := fn(s.routines)
	if !changed {
		s.mu.Unlock()
		return nil
	}
	s.routines = routines

	snapshot := cloneRoutines(s.routines)
	saveErr := s.collection.Save(ctx, snapshot)
	subscribers := append([]func([]Routine){}, s.subscribers...)
	s.mu.Unlock()

	if saveErr != nil {
		log.Errorf("routines store, save [%s]: %s", StorageKey, saveErr)
	}

	for _, fn := range subscribers {
		fn(cloneRoutines(snapshot))
	}

	return saveErr
}

func (s *Store) assignExerciseIDs(exercises []Exercise) []Exercise {
	exercises = cloneExercises(exercises)
	for i := range exercises {
		if exercises[i].ID == "" {
			exercises[i].ID = s.newID()
		}
	}
	return exercises
}

func (s *Store) indexOf(id string) int {
	return indexOf(s.routines, id)
}

func indexOf(routines []Routine, id string) int {
	for i := range routines {
		if routines[i].ID == id {
			return i
		}
	}
	return -1
}

package workoutlogs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymroutines/internal/storage"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
)

const (
	StorageKey         = "workoutLogs"
	DefaultRecentLimit = 10
)

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

// Store owns the workout log collection, newest first, persisted whole under StorageKey.
type Store struct {
	mu          sync.RWMutex
	logs        []WorkoutLog
	collection  *storage.Collection[WorkoutLog]
	subscribers []func([]WorkoutLog)

	newID func() string
	now   func() time.Time
}

// NewStore loads the logs from kv, starting empty when nothing usable is stored.
func NewStore(ctx context.Context, kv storage.KV, opts ...Option) *Store {
	s := &Store{
		collection: storage.NewCollection[WorkoutLog](kv, StorageKey),
		newID:      uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	logs, err := s.collection.Load(ctx)
	if err != nil {
		log.Warnf("workout logs store, load [%s]: %s, starting empty", StorageKey, err)
		logs = []WorkoutLog{}
	}
	s.logs = logs

	return s
}

func (s *Store) Subscribe(fn func([]WorkoutLog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// List returns all logs, most recently appended first.
func (s *Store) List() []WorkoutLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLogs(s.logs)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}

// Append records a finished workout. A non-nil error is a persistence failure;
// the log is kept in memory and returned either way.
func (s *Store) Append(
	ctx context.Context,
	routineID string,
	completed []CompletedExercise,
	durationMinutes int,
	notes string,
) (_ WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workoutlogs.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutLog := WorkoutLog{
		ID:                 s.newID(),
		RoutineID:          routineID,
		CompletedExercises: cloneCompleted(completed),
		Date:               s.now(),
		Duration:           durationMinutes,
		Notes:              notes,
	}
	span.SetAttributes(
		attribute.String("workout_log.id", workoutLog.ID),
		attribute.String("routine.id", routineID),
		attribute.Int("completed_exercises", len(completed)),
	)

	s.mu.Lock()
	s.logs = append([]WorkoutLog{workoutLog}, s.logs...)
	snapshot := cloneLogs(s.logs)
	err = s.collection.Save(ctx, snapshot)
	subscribers := append([]func([]WorkoutLog){}, s.subscribers...)
	s.mu.Unlock()

	if err != nil {
		log.Errorf("workout logs store, save [%s]: %s", StorageKey, err)
	}

	for _, fn := range subscribers {
		fn(cloneLogs(snapshot))
	}

	return workoutLog.Clone(), err
}

// FindByRoutine returns the logs of one routine in store order.
func (s *Store) FindByRoutine(routineID string) []WorkoutLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]WorkoutLog, 0)
	for _, l := range s.logs {
		if l.RoutineID == routineID {
			found = append(found, l.Clone())
		}
	}
	return found
}

// Recent returns up to limit logs, newest first. Logs with the same date keep
// their store order, so the later append wins. A non-positive limit yields no logs.
func (s *Store) Recent(limit int) []WorkoutLog {
	return Recent(s.List(), limit)
}

// Recent sorts a copy of logs by date descending (stable) and truncates it to limit.
func Recent(logs []WorkoutLog, limit int) []WorkoutLog {
	if limit <= 0 {
		return []WorkoutLog{}
	}

	sorted := make([]WorkoutLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=session_test

var (
	ErrEmptyRoutine       = errors.New("routine has no exercises")
	ErrSessionEnded       = errors.New("session already ended")
	ErrSetIndexOutOfRange = errors.New("set index out of range")
	ErrInvalidSetField    = errors.New("invalid set field")
)

// LogAppender receives the single workout log of a finished session.
type LogAppender interface {
	Append(
		ctx context.Context,
		routineID string,
		completed []workoutlogs.CompletedExercise,
		durationMinutes int,
		notes string,
	) (workoutlogs.WorkoutLog, error)
}

type SetField string

const (
	SetFieldReps   SetField = "reps"
	SetFieldWeight SetField = "weight"
)

func (f SetField) IsValid() bool {
	return f == SetFieldReps || f == SetFieldWeight
}

type Option func(s *Session)

func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithNotes(notes string) Option {
	return func(s *Session) {
		s.notes = notes
	}
}

// Session walks through the exercises of one routine snapshot and, once the last
// exercise is completed, appends exactly one workout log.
type Session struct {
	mu       sync.Mutex
	id       string
	routine  routines.Routine
	appender LogAppender
	now      func() time.Time

	startedAt   time.Time
	state       State
	workingSets []workoutlogs.CompletedSet
	completed   []workoutlogs.CompletedExercise
	notes       string
	cancelled   bool
	onEnd       []func()
}

func New(routine routines.Routine, appender LogAppender, opts ...Option) (*Session, error) {
	if len(routine.Exercises) == 0 {
		return nil, ErrEmptyRoutine
	}

	s := &Session{
		routine:   routine.Clone(),
		appender:  appender,
		now:       time.Now,
		completed: []workoutlogs.CompletedExercise{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.startedAt = s.now()
	s.enter(0)

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Routine() routines.Routine {
	return s.routine.Clone()
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ended reports whether the session finished or was cancelled.
func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended()
}

func (s *Session) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

// CurrentExercise is the exercise being performed, false once the session ended.
func (s *Session) CurrentExercise() (routines.Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	awaiting, ok := s.state.(AwaitingExercise)
	if !ok || s.cancelled {
		return routines.Exercise{}, false
	}
	return s.routine.Exercises[awaiting.Index], true
}

func (s *Session) WorkingSets() []workoutlogs.CompletedSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSets(s.workingSets)
}

// Completed returns the exercises committed so far, in commit order.
func (s *Session) Completed() []workoutlogs.CompletedExercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCompleted(s.completed)
}

// Progress is the share of the routine already traversed, index / exercise count.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress()
}

func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.startedAt)
}

func (s *Session) SetNotes(notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended() {
		return ErrSessionEnded
	}
	s.notes = notes
	return nil
}

// OnEnd registers fn to run once, when the session finishes or is cancelled.
// If it already ended, fn runs right away.
func (s *Session) OnEnd(fn func()) {
	s.mu.Lock()
	if s.ended() {
		s.mu.Unlock()
		fn()
		return
	}
	s.onEnd = append(s.onEnd, fn)
	s.mu.Unlock()
}

// EditSet changes one field of a working set of the current exercise.
// Values are taken as they are; reps are truncated to an integer.
func (s *Session) EditSet(setIndex int, field SetField, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended() {
		return ErrSessionEnded
	}
	if !field.IsValid() {
		return fmt.Errorf("%w: [%s]", ErrInvalidSetField, field)
	}
	if setIndex < 0 || setIndex >= len(s.workingSets) {
		return fmt.Errorf("%w: %d, sets: %d", ErrSetIndexOutOfRange, setIndex, len(s.workingSets))
	}

	switch field {
	case SetFieldReps:
		s.workingSets[setIndex].Reps = int(value)
	case SetFieldWeight:
		s.workingSets[setIndex].Weight = value
	}

	return nil
}

// Advance commits the working sets of the current exercise and moves to the next one.
// Advancing past the last exercise finishes the session and appends the workout log.
// The returned error of a finished session is the appender's; the session is
// finished regardless.
func (s *Session) Advance(ctx context.Context) (_ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.advance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	if s.ended() {
		s.mu.Unlock()
		return s.state, ErrSessionEnded
	}

	idx := s.state.(AwaitingExercise).Index
	exercise := s.routine.Exercises[idx]
	s.completed = append(s.completed, workoutlogs.CompletedExercise{
		ExerciseID: exercise.ID,
		Sets:       cloneSets(s.workingSets),
	})
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("exercise.index", idx),
	)

	if idx < len(s.routine.Exercises)-1 {
		s.enter(idx + 1)
		state := s.state
		s.mu.Unlock()
		return state, nil
	}

	durationMinutes := int(s.now().Sub(s.startedAt) / time.Minute)
	completed := cloneCompleted(s.completed)

	workoutLog, appendErr := s.appender.Append(ctx, s.routine.ID, completed, durationMinutes, s.notes)
	if appendErr != nil {
		log.Errorf("session [%s] finish, append workout log: %s", s.id, appendErr)
		err = fmt.Errorf("append workout log: %w", appendErr)
	}
	if workoutLog.ID == "" {
		// appender failed before creating a log, keep what was performed
		workoutLog = workoutlogs.WorkoutLog{
			RoutineID:          s.routine.ID,
			CompletedExercises: completed,
			Date:               s.now(),
			Duration:           durationMinutes,
			Notes:              s.notes,
		}
	}

	s.state = Finished{Log: workoutLog}
	s.workingSets = nil
	state := s.state
	onEnd := s.takeOnEnd()
	s.mu.Unlock()

	for _, fn := range onEnd {
		fn()
	}

	return state, err
}

// Retreat moves back one exercise and re-seeds its working sets. What was already
// committed for that exercise stays committed, so re-advancing counts it again.
// At the first exercise it does nothing.
func (s *Session) Retreat() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended() {
		return s.state, ErrSessionEnded
	}

	idx := s.state.(AwaitingExercise).Index
	if idx > 0 {
		s.enter(idx - 1)
	}
	return s.state, nil
}

// Cancel ends the session without writing any log.
func (s *Session) Cancel() error {
	s.mu.Lock()
	if s.ended() {
		s.mu.Unlock()
		return ErrSessionEnded
	}
	s.cancelled = true
	s.workingSets = nil
	onEnd := s.takeOnEnd()
	s.mu.Unlock()

	for _, fn := range onEnd {
		fn()
	}
	return nil
}

func (s *Session) enter(idx int) {
	exercise := s.routine.Exercises[idx]
	sets := exercise.Sets
	if sets < 0 {
		sets = 0
	}

	s.workingSets = make([]workoutlogs.CompletedSet, sets)
	for i := range s.workingSets {
		s.workingSets[i] = workoutlogs.CompletedSet{
			Reps:   exercise.Reps,
			Weight: exercise.Weight,
		}
	}
	s.state = AwaitingExercise{Index: idx}
}

func (s *Session) ended() bool {
	if s.cancelled {
		return true
	}
	_, finished := s.state.(Finished)
	return finished
}

func (s *Session) progress() float64 {
	if _, finished := s.state.(Finished); finished {
		return 1
	}
	return float64(s.state.(AwaitingExercise).Index) / float64(len(s.routine.Exercises))
}

func (s *Session) takeOnEnd() []func() {
	onEnd := s.onEnd
	s.onEnd = nil
	return onEnd
}

func cloneSets(sets []workoutlogs.CompletedSet) []workoutlogs.CompletedSet {
	cp := make([]workoutlogs.CompletedSet, len(sets))
	copy(cp, sets)
	return cp
}

func cloneCompleted(completed []workoutlogs.CompletedExercise) []workoutlogs.CompletedExercise {
	cp := make([]workoutlogs.CompletedExercise, len(completed))
	for i, ce := range completed {
		cp[i] = workoutlogs.CompletedExercise{
			ExerciseID: ce.ExerciseID,
			Sets:       cloneSets(ce.Sets),
		}
	}
	return cp
}

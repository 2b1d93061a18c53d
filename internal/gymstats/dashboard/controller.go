package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/session"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

const DeleteConfirmationPrompt = "Are you sure you want to delete this routine?"

var (
	ErrRoutineNotFound   = errors.New("routine not found")
	ErrInvalidTransition = errors.New("invalid view transition")
)

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

type routinesStore interface {
	FindByID(id string) (routines.Routine, bool)
	Add(ctx context.Context, draft routines.RoutineDraft) (routines.Routine, error)
	Update(ctx context.Context, routine routines.Routine) error
	Delete(ctx context.Context, id string) error
}

type sessionStarter interface {
	Start(routineID, notes string) (*session.Session, error)
}

// Controller drives the dashboard between browsing, the routine form and a
// running workout.
type Controller struct {
	mu      sync.Mutex
	view    View
	session *session.Session

	routines  routinesStore
	sessions  sessionStarter
	confirmer Confirmer
}

func NewController(routinesStore routinesStore, sessions sessionStarter, confirmer Confirmer) *Controller {
	return &Controller{
		view:      Browsing{},
		routines:  routinesStore,
		sessions:  sessions,
		confirmer: confirmer,
	}
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Session returns the running workout, if any.
func (c *Controller) Session() (*session.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session, c.session != nil
}

func (c *Controller) Create() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.view.(Browsing); !ok {
		return fmt.Errorf("%w: %s -> creating", ErrInvalidTransition, c.view.Name())
	}
	c.view = Creating{}
	return nil
}

func (c *Controller) Edit(routineID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.view.(Browsing); !ok {
		return fmt.Errorf("%w: %s -> editing", ErrInvalidTransition, c.view.Name())
	}
	if _, ok := c.routines.FindByID(routineID); !ok {
		return fmt.Errorf("%w: [%s]", ErrRoutineNotFound, routineID)
	}
	c.view = Editing{RoutineID: routineID}
	return nil
}

// Save submits the routine form. A new routine is added when creating; the
// edited routine keeps its id and creation time. The view returns to browsing.
func (c *Controller) Save(ctx context.Context, draft routines.RoutineDraft) (routines.Routine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch v := c.view.(type) {
	case Creating:
		routine, err := c.routines.Add(ctx, draft)
		if err != nil {
			return routines.Routine{}, err
		}
		c.view = Browsing{}
		return routine, nil
	case Editing:
		existing, ok := c.routines.FindByID(v.RoutineID)
		if !ok {
			c.view = Browsing{}
			return routines.Routine{}, fmt.Errorf("%w: [%s]", ErrRoutineNotFound, v.RoutineID)
		}
		updated := routines.Routine{
			ID:          existing.ID,
			Name:        draft.Name,
			Description: draft.Description,
			Exercises:   draft.Exercises,
			Day:         draft.Day,
			IsFavorite:  draft.IsFavorite,
			CreatedAt:   existing.CreatedAt,
		}
		if err := c.routines.Update(ctx, updated); err != nil {
			return routines.Routine{}, err
		}
		c.view = Browsing{}
		return updated, nil
	default:
		return routines.Routine{}, fmt.Errorf("%w: save while %s", ErrInvalidTransition, c.view.Name())
	}
}

// StartWorkout opens a session on the routine. The view goes back to browsing
// on its own once the session finishes or is cancelled.
func (c *Controller) StartWorkout(routineID, notes string) (*session.Session, error) {
	c.mu.Lock()
	if _, ok := c.view.(Browsing); !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s -> in_session", ErrInvalidTransition, c.view.Name())
	}

	s, err := c.sessions.Start(routineID, notes)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.view = InSession{
		RoutineID: routineID,
		SessionID: s.ID(),
	}
	c.session = s
	c.mu.Unlock()

	s.OnEnd(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if v, ok := c.view.(InSession); ok && v.SessionID == s.ID() {
			c.view = Browsing{}
			c.session = nil
		}
	})

	return s, nil
}

// Back leaves the form without saving, or cancels the running workout.
func (c *Controller) Back() {
	c.mu.Lock()
	s := c.session
	if s == nil {
		c.view = Browsing{}
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if err := s.Cancel(); err != nil {
		log.Debugf("dashboard back: session [%s]: %s", s.ID(), err)
	}
}

// Delete removes the routine once the user confirms. It reports whether the
// routine was deleted.
func (c *Controller) Delete(ctx context.Context, routineID string) (bool, error) {
	if _, ok := c.routines.FindByID(routineID); !ok {
		return false, fmt.Errorf("%w: [%s]", ErrRoutineNotFound, routineID)
	}
	if c.confirmer == nil || !c.confirmer.Confirm(DeleteConfirmationPrompt) {
		return false, nil
	}
	if err := c.routines.Delete(ctx, routineID); err != nil {
		return false, err
	}

	c.mu.Lock()
	if v, ok := c.view.(Editing); ok && v.RoutineID == routineID {
		c.view = Browsing{}
	}
	c.mu.Unlock()

	return true, nil
}

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/telemetry/metrics"
)

const DefaultIdleTimeout = 3 * time.Hour

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrRoutineNotFound = errors.New("routine not found")
)

type RoutineFinder interface {
	FindByID(id string) (routines.Routine, bool)
}

type ManagerParams struct {
	IdleTimeout    time.Duration
	MetricsManager *metrics.Manager
	Now            func() time.Time
	NewID          func() string
}

type managedSession struct {
	session      *Session
	lastActivity time.Time
}

// Manager keeps the live sessions by id. Sessions leave the registry when they
// finish, are cancelled, or stay idle for longer than the idle timeout.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managedSession

	routines       RoutineFinder
	appender       LogAppender
	idleTimeout    time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time
	newID          func() string
}

func NewManager(routineFinder RoutineFinder, appender LogAppender, params ManagerParams) *Manager {
	m := &Manager{
		sessions:       make(map[string]*managedSession),
		routines:       routineFinder,
		appender:       appender,
		idleTimeout:    params.IdleTimeout,
		metricsManager: params.MetricsManager,
		now:            params.Now,
		newID:          params.NewID,
	}
	if m.idleTimeout <= 0 {
		m.idleTimeout = DefaultIdleTimeout
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.newID == nil {
		m.newID = uuid.NewString
	}
	return m
}

// Start snapshots the routine and starts a session on it.
func (m *Manager) Start(routineID, notes string) (*Session, error) {
	routine, ok := m.routines.FindByID(routineID)
	if !ok {
		return nil, fmt.Errorf("%w: [%s]", ErrRoutineNotFound, routineID)
	}

	id := m.newID()
	s, err := New(routine, m.appender, WithID(id), WithClock(m.now), WithNotes(notes))
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = &managedSession{
		session:      s,
		lastActivity: m.now(),
	}
	m.mu.Unlock()

	s.OnEnd(func() {
		outcome := "finished"
		if s.Cancelled() {
			outcome = "cancelled"
		}
		m.remove(id, outcome)
	})

	if m.metricsManager != nil {
		m.metricsManager.CounterSessions.WithLabelValues("started").Inc()
		m.metricsManager.GaugeActiveSessions.Inc()
	}
	log.Debugf("session [%s] started on routine [%s]", id, routineID)

	return s, nil
}

// Get returns a live session and marks it as active.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: [%s]", ErrSessionNotFound, id)
	}
	ms.lastActivity = m.now()
	return ms.session, nil
}

func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// ExpireIdle cancels every session idle for longer than the idle timeout and
// returns how many were cancelled.
func (m *Manager) ExpireIdle() int {
	now := m.now()

	m.mu.Lock()
	var expired []*Session
	for id, ms := range m.sessions {
		if now.Sub(ms.lastActivity) > m.idleTimeout {
			expired = append(expired, ms.session)
			delete(m.sessions, id)
			m.sessionEnded("expired")
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		// already out of the registry, the OnEnd hook is a no-op
		if err := s.Cancel(); err != nil && !errors.Is(err, ErrSessionEnded) {
			log.Errorf("expire session [%s]: %s", s.ID(), err)
		}
		log.Debugf("session [%s] expired", s.ID())
	}

	return len(expired)
}

// RunJanitor expires idle sessions every interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("session janitor stopped")
			return
		case <-ticker.C:
			if n := m.ExpireIdle(); n > 0 {
				log.Infof("session janitor: %d idle sessions expired", n)
			}
		}
	}
}

// CancelAll cancels every live session, used on shutdown.
func (m *Manager) CancelAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, ms := range m.sessions {
		sessions = append(sessions, ms.session)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		_ = s.Cancel()
	}
}

func (m *Manager) remove(id, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return
	}
	delete(m.sessions, id)
	m.sessionEnded(outcome)
	log.Debugf("session [%s] %s", id, outcome)
}

func (m *Manager) sessionEnded(outcome string) {
	if m.metricsManager == nil {
		return
	}
	m.metricsManager.CounterSessions.WithLabelValues(outcome).Inc()
	m.metricsManager.GaugeActiveSessions.Dec()
	if outcome == "finished" {
		m.metricsManager.CounterWorkoutsLogged.Inc()
	}
}

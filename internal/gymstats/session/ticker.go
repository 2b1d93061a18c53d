package session

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTickInterval = time.Second

// FormatElapsed renders d as HH:MM:SS. Hours are not capped.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Ticker calls onTick with the formatted elapsed time of a session once per interval.
// Stop blocks until the ticking goroutine has exited; onTick must not call Stop.
type Ticker struct {
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func newTicker(interval time.Duration, elapsed func() time.Duration, onTick func(string)) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	t := &Ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(t.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				onTick(FormatElapsed(elapsed()))
			}
		}
	}()

	return t
}

func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
	<-t.done
}

// Done is closed once the ticker goroutine exited.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}

// StartTicker starts the display timer of the session. It stops by itself when
// the session finishes or is cancelled, and can be stopped earlier with Stop.
func (s *Session) StartTicker(interval time.Duration, onTick func(elapsed string)) *Ticker {
	t := newTicker(interval, s.Elapsed, onTick)
	s.OnEnd(t.Stop)
	return t
}

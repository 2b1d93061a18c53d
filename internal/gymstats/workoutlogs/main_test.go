package workoutlogs_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sequentialIDs(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// steppingClock returns start, start+step, start+2*step, ...
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var (
		mu sync.Mutex
		n  int
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := start.Add(time.Duration(n) * step)
		n++
		return t
	}
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("get failed")
}

func (failingKV) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func (failingKV) Close() error {
	return nil
}

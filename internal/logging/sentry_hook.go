package logging

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

const sentryFlushTimeout = 2 * time.Second

var levelToSentry = map[logrus.Level]sentry.Level{
	logrus.TraceLevel: sentry.LevelDebug,
	logrus.DebugLevel: sentry.LevelDebug,
	logrus.InfoLevel:  sentry.LevelInfo,
	logrus.WarnLevel:  sentry.LevelWarning,
	logrus.ErrorLevel: sentry.LevelError,
	logrus.FatalLevel: sentry.LevelFatal,
	logrus.PanicLevel: sentry.LevelFatal,
}

// SentryHook forwards log entries of the given levels to sentry.
type SentryHook struct {
	levels []logrus.Level
	hub    *sentry.Hub
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels: levels,
		hub:    sentry.CurrentHub(),
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := NewSentryEvent(entry)
	h.hub.CaptureEvent(event)

	// the process is about to exit
	if entry.Level == logrus.FatalLevel || entry.Level == logrus.PanicLevel {
		h.hub.Flush(sentryFlushTimeout)
	}
	return nil
}

// NewSentryEvent converts a log entry; an error field becomes the event exception.
func NewSentryEvent(entry *logrus.Entry) *sentry.Event {
	event := sentry.NewEvent()
	event.Level = levelToSentry[entry.Level]
	event.Message = entry.Message
	event.Timestamp = entry.Time
	event.Logger = "logrus"

	for k, v := range entry.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				event.SetException(err, -1)
				continue
			}
		}
		event.Extra[k] = v
	}

	return event
}

var errNoSentryClient = errors.New("sentry client not initialized")

// Flush waits for buffered sentry events to be sent.
func Flush() error {
	if sentry.CurrentHub().Client() == nil {
		return errNoSentryClient
	}
	if !sentry.Flush(sentryFlushTimeout) {
		return errors.New("sentry flush timed out")
	}
	return nil
}

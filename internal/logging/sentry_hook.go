package logging

import (
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// SentryHook forwards error (and above) log entries to Sentry.
type SentryHook struct {
	levels []log.Level
}

func NewSentryHook(dsn, environment string) (*SentryHook, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	}); err != nil {
		return nil, err
	}

	return &SentryHook{
		levels: []log.Level{
			log.PanicLevel,
			log.FatalLevel,
			log.ErrorLevel,
		},
	}, nil
}

func (h *SentryHook) Levels() []log.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *log.Entry) error {
	event := sentry.NewEvent()
	event.Message = entry.Message
	event.Timestamp = entry.Time
	event.Level = sentryLevel(entry.Level)
	for k, v := range entry.Data {
		event.Extra[k] = v
	}
	sentry.CaptureEvent(event)
	return nil
}

func (h *SentryHook) Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

func sentryLevel(level log.Level) sentry.Level {
	switch level {
	case log.PanicLevel, log.FatalLevel:
		return sentry.LevelFatal
	case log.ErrorLevel:
		return sentry.LevelError
	default:
		return sentry.LevelWarning
	}
}

package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	// Out receives JSON log lines. Defaults to os.Stderr so stdout stays reserved for results.
	Out   io.Writer
	Debug bool
}

var (
	mu       sync.RWMutex
	global   = slog.New(slog.NewJSONHandler(io.Discard, nil))
	ready    bool
	initedAt time.Time
)

// Setup installs the global logger. Without Debug the logger discards everything, so a
// plain run writes nothing but its results.
func Setup(cfg Config) (func() error, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.Debug {
		out = io.Discard
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	ready = true
	initedAt = time.Now().UTC()
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		ready = false
		initedAt = time.Time{}
		global = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nil
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return initedAt
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if !ready {
		return errors.New("logger not initialized")
	}
	return nil
}

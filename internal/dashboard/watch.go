// ABOUTME: Watches the data file and reports changes after a quiet period.
// ABOUTME: Watches the parent directory so atomic renames are seen.
package dashboard

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the file must stay quiet before fn runs.
const DefaultDebounce = 250 * time.Millisecond

// WatchOption configures Watch.
type WatchOption func(*watchConfig)

type watchConfig struct {
	debounce time.Duration
	logger   zerolog.Logger
}

// WithDebounce sets the quiet period.
func WithDebounce(d time.Duration) WatchOption {
	return func(c *watchConfig) { c.debounce = d }
}

// WithLogger sets the logger for watcher errors.
func WithLogger(logger zerolog.Logger) WatchOption {
	return func(c *watchConfig) {
		c.logger = logger.With().Str("component", "watcher").Logger()
	}
}

// Watch calls fn whenever the file at path is written, created, or renamed
// into place. It blocks until ctx is cancelled and returns nil then.
func Watch(ctx context.Context, path string, fn func(), opts ...WatchOption) error {
	cfg := watchConfig{debounce: DefaultDebounce, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	base := filepath.Base(path)
	cfg.logger.Debug().Str("path", path).Msg("watching data file")

	// Reset never delivers a stale tick (Go 1.23 timer semantics).
	timer := time.NewTimer(cfg.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cfg.logger.Debug().Str("op", event.Op.String()).Msg("data file changed")
			timer.Reset(cfg.debounce)

		case <-timer.C:
			fn()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cfg.logger.Error().Err(err).Msg("watcher error")
		}
	}
}

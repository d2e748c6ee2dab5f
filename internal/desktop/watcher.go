package desktop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/proinvestix/pkg/logger"
)

// Default update check delay after startup.
const DefaultCheckDelay = 5 * time.Second

// Confirmation dialog title.
const UpdateTitle = "Update Beschikbaar"

// Outcome of one watcher run.
type Outcome string

const (
	OutcomeSkipped   Outcome = "skipped"
	OutcomeCanceled  Outcome = "canceled"
	OutcomeUpToDate  Outcome = "up-to-date"
	OutcomeDeclined  Outcome = "declined"
	OutcomeInstalled Outcome = "installed"
	OutcomeFailed    Outcome = "failed"
)

// UpdateWatcher checks for an update once, shortly after startup, and
// offers to install it. Every failure is logged and swallowed.
type UpdateWatcher struct {
	shell  Shell
	delay  time.Duration
	logger logger.Logger
}

// WatcherOption applies a configuration option to the UpdateWatcher.
type WatcherOption func(*UpdateWatcher)

// WithDelay sets the wait before checking. Zero checks immediately.
func WithDelay(d time.Duration) WatcherOption {
	return func(w *UpdateWatcher) {
		if d >= 0 {
			w.delay = d
		}
	}
}

// WithWatcherLogger sets the logger.
func WithWatcherLogger(l logger.Logger) WatcherOption {
	return func(w *UpdateWatcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewUpdateWatcher creates a watcher for shell.
func NewUpdateWatcher(shell Shell, opts ...WatcherOption) *UpdateWatcher {
	w := &UpdateWatcher{shell: shell, delay: DefaultCheckDelay, logger: logger.Nop()}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.Named("updates")
	return w
}

// UpdatePrompt is the confirmation text for version.
func UpdatePrompt(version, notes string) string {
	return fmt.Sprintf("Versie %s is beschikbaar. Wil je nu updaten?\n\n%s", version, notes)
}

// Run waits for the delay, then checks, confirms and installs. It returns
// immediately outside the desktop shell.
func (w *UpdateWatcher) Run(ctx context.Context) Outcome {
	if !w.shell.IsDesktop() {
		return OutcomeSkipped
	}

	timer := time.NewTimer(w.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return OutcomeCanceled
	case <-timer.C:
	}
	return w.CheckNow(ctx)
}

// CheckNow runs the check without waiting.
func (w *UpdateWatcher) CheckNow(ctx context.Context) Outcome {
	info := w.shell.CheckUpdate(ctx)
	if !info.Available || info.Version == "" {
		return OutcomeUpToDate
	}

	ok, err := w.shell.Confirm(ctx, UpdateTitle, UpdatePrompt(info.Version, info.Notes))
	if err != nil {
		w.logger.Error(ctx, "update check failed", logger.Error(err))
		return OutcomeFailed
	}
	if !ok {
		w.logger.Info(ctx, "update declined", logger.String("version", info.Version))
		return OutcomeDeclined
	}
	if err := w.shell.InstallUpdate(ctx); err != nil {
		if errors.Is(err, ErrNoUpdate) {
			w.logger.Info(ctx, "update withdrawn before install", logger.String("version", info.Version))
			return OutcomeUpToDate
		}
		w.logger.Error(ctx, "update installation failed", logger.Error(err))
		return OutcomeFailed
	}
	return OutcomeInstalled
}

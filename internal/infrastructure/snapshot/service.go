// Package snapshot autosaves the desktop layout after changes.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ncruces/go-sqlite3"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/logging"
)

const (
	defaultInterval   = 2 * time.Second
	defaultRetryDelay = 100 * time.Millisecond
	maxSaveAttempts   = 2
)

// Service debounces layout autosaves.
type Service struct {
	snapshotUC *usecase.SnapshotLayoutUseCase
	provider   port.LayoutProvider
	interval   time.Duration
	retryDelay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new snapshot service. intervalMs <= 0 uses the default.
func NewService(snapshotUC *usecase.SnapshotLayoutUseCase, provider port.LayoutProvider, intervalMs int) *Service {
	interval := defaultInterval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	return &Service{
		snapshotUC: snapshotUC,
		provider:   provider,
		interval:   interval,
		retryDelay: defaultRetryDelay,
	}
}

// Start enables debounced saves until ctx is cancelled or Stop is called.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(logging.WithComponent(ctx, "autosave"))
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("layout autosave started")
}

// Stop cancels pending saves and writes the final state if it changed.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that the layout changed and restarts the debounce timer.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}
		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to autosave layout")
		}
	})
}

// SaveNow saves immediately if the layout is dirty.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}
	return s.saveSnapshot(ctx)
}

// Dirty reports whether a save is pending.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	snap := s.provider.CurrentLayout()
	if snap == nil {
		return nil
	}

	var err error
	for attempt := 1; ; attempt++ {
		if err = s.snapshotUC.Save(ctx, snap); err == nil || !isBusy(err) || attempt == maxSaveAttempts {
			break
		}
		logging.FromContext(ctx).Debug().Err(err).Int("attempt", attempt).Msg("database busy, retrying autosave")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}
	if err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return fmt.Errorf("autosave layout: %w", err)
	}
	return nil
}

// isBusy reports whether err carries SQLITE_BUSY or SQLITE_LOCKED from the
// driver, possibly wrapped by the repository and use case.
func isBusy(err error) bool {
	return errors.Is(err, sqlite3.BUSY) || errors.Is(err, sqlite3.LOCKED)
}

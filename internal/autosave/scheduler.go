// Package autosave decouples keystroke-level edits from storage writes.
// Every mutation marks the state dirty and restarts one cancellable timer;
// only the final state after a quiescent period is persisted. Last state
// wins — there is no merge logic and never more than one pending write.
package autosave

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
	"github.com/hobfurniture/orderdesk-backend/pkg/metrics"
)

const (
	defaultDelay        = 500 * time.Millisecond
	defaultWriteTimeout = 10 * time.Second
)

// WriteFunc persists the complete current snapshot. The scheduler does not
// know what it writes; composition wires this to the engine and store.
type WriteFunc func(ctx context.Context) error

// Params configure the scheduler.
type Params struct {
	Logger       *logger.Logger
	Metrics      *metrics.AutosaveMetrics
	Backend      string
	Delay        time.Duration
	WriteTimeout time.Duration
	Write        WriteFunc
}

// Scheduler coalesces rapid mutations into a single debounced write.
type Scheduler struct {
	logg         *logger.Logger
	metrics      *metrics.AutosaveMetrics
	backend      string
	delay        time.Duration
	writeTimeout time.Duration
	write        WriteFunc

	mu         sync.Mutex
	timer      *time.Timer
	saving     bool
	generation uint64
	closed     bool

	// writeMu serializes the write callback so a superseded timer that
	// already fired can never overlap the next write.
	writeMu sync.Mutex
}

// NewScheduler builds a scheduler.
func NewScheduler(params Params) (*Scheduler, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Write == nil {
		return nil, fmt.Errorf("write callback required")
	}
	delay := params.Delay
	if delay <= 0 {
		delay = defaultDelay
	}
	writeTimeout := params.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &Scheduler{
		logg:         params.Logger,
		metrics:      params.Metrics,
		backend:      params.Backend,
		delay:        delay,
		writeTimeout: writeTimeout,
		write:        params.Write,
	}, nil
}

// Mark flags the state dirty and restarts the debounce timer. A mark that
// arrives before the previous timer elapses cancels it, so a burst of edits
// produces exactly one write.
func (s *Scheduler) Mark() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.saving = true
	s.generation++
	gen := s.generation

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(gen)
	})
}

// Saving reports whether a write is pending or in flight. It turns false
// only after the latest write completes.
func (s *Scheduler) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Flush cancels any pending timer and writes immediately. Used on shutdown
// so the last edits reach storage.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	gen := s.generation
	s.mu.Unlock()

	err := s.runWrite(ctx)

	s.mu.Lock()
	if gen == s.generation {
		s.saving = false
	}
	s.mu.Unlock()
	return err
}

// Close cancels the pending timer so nothing writes after teardown. Further
// marks are ignored.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.generation {
		// A newer mark superseded this timer; its own timer will write.
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	if err := s.runWrite(ctx); err != nil {
		// Best effort only: the failure is logged and counted, in-memory
		// state stands, and editing continues.
		s.logg.Error(ctx, "autosave write failed", err)
	}

	s.mu.Lock()
	if gen == s.generation {
		s.saving = false
		s.timer = nil
	}
	s.mu.Unlock()
}

func (s *Scheduler) runWrite(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	start := time.Now()
	err := s.write(ctx)
	s.metrics.ObserveDuration(s.backend, time.Since(start))
	if err != nil {
		s.metrics.IncFailure(s.backend)
		return err
	}
	s.metrics.IncSuccess(s.backend)
	return nil
}

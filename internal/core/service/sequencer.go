package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/yndnr/tapkey-go/internal/core/domain"
	"github.com/yndnr/tapkey-go/internal/core/keymap"
	"github.com/yndnr/tapkey-go/internal/telemetry/logger"
)

// Emitter writes a single key transition to a keyboard.
type Emitter interface {
	Emit(key domain.Key, pressed bool) error
}

// Timing holds the gaps between events.
type Timing struct {
	// Hold is the gap after a key press before its release, and after ctrl
	// press in a paste.
	Hold time.Duration
	// ModifierGap is the gap after shift press before the shifted key.
	ModifierGap time.Duration
	// ReleaseGap is the gap after a key release before the modifier release.
	ReleaseGap time.Duration
}

// DefaultTiming returns the timing most compositors accept reliably.
func DefaultTiming() Timing {
	return Timing{
		Hold:        8 * time.Millisecond,
		ModifierGap: 2 * time.Millisecond,
		ReleaseGap:  2 * time.Millisecond,
	}
}

// Sequencer plays actions on an Emitter. Perform is not meant to be called
// concurrently; the daemon serializes actions.
type Sequencer struct {
	emitter Emitter
	timing  atomic.Pointer[Timing]
	sleep   func(time.Duration)
}

// SequencerOption configures a Sequencer.
type SequencerOption func(*Sequencer)

// WithSleep replaces time.Sleep, mainly for tests.
func WithSleep(fn func(time.Duration)) SequencerOption {
	return func(s *Sequencer) { s.sleep = fn }
}

// NewSequencer creates a Sequencer.
func NewSequencer(e Emitter, t Timing, opts ...SequencerOption) *Sequencer {
	s := &Sequencer{emitter: e, sleep: time.Sleep}
	s.timing.Store(&t)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Timing returns the current timing.
func (s *Sequencer) Timing() Timing { return *s.timing.Load() }

// SetTiming replaces the timing; it applies from the next action on.
func (s *Sequencer) SetTiming(t Timing) { s.timing.Store(&t) }

// Perform plays a. Emit failures do not stop the sequence: every press is
// still followed by its release, and all failures are returned joined.
// The context carries logging fields only; a started action always runs
// to completion.
func (s *Sequencer) Perform(ctx context.Context, a domain.Action) error {
	t := s.Timing()
	r := &run{s: s}

	switch a.Kind {
	case domain.ActionTypeChar:
		e, ok := keymap.Lookup(a.Char)
		if !ok {
			logger.L(ctx).Debug("unsupported character dropped", "char", string(a.Char))
			return nil
		}
		if e.Shift {
			r.emit(domain.KeyLeftShift, true)
			r.wait(t.ModifierGap)
		}
		r.emit(e.Key, true)
		r.wait(t.Hold)
		r.emit(e.Key, false)
		r.wait(t.ReleaseGap)
		if e.Shift {
			r.emit(domain.KeyLeftShift, false)
		}

	case domain.ActionBackspace:
		r.tap(domain.KeyBackspace, t.Hold)

	case domain.ActionPressModifier:
		r.tap(a.Key, t.Hold)

	case domain.ActionPaste:
		r.emit(domain.KeyLeftCtrl, true)
		r.wait(t.Hold)
		r.emit(domain.KeyV, true)
		r.wait(t.Hold)
		r.emit(domain.KeyV, false)
		r.wait(t.ReleaseGap)
		r.emit(domain.KeyLeftCtrl, false)

	default:
		return domain.ErrInvalidArgument.WithDetails("action " + a.Kind.String())
	}

	if len(r.errs) > 0 {
		logger.L(ctx).Warn("key events failed", "action", a.Kind.String(), "failures", len(r.errs), "error", r.errs[0])
	}
	return errors.Join(r.errs...)
}

// run collects emit failures for one action.
type run struct {
	s    *Sequencer
	errs []error
}

func (r *run) emit(k domain.Key, pressed bool) {
	if err := r.s.emitter.Emit(k, pressed); err != nil {
		r.errs = append(r.errs, err)
	}
}

func (r *run) wait(d time.Duration) {
	if d > 0 {
		r.s.sleep(d)
	}
}

func (r *run) tap(k domain.Key, hold time.Duration) {
	r.emit(k, true)
	r.wait(hold)
	r.emit(k, false)
}

// Failures returns the number of emit failures joined into err.
func Failures(err error) int {
	if err == nil {
		return 0
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return len(j.Unwrap())
	}
	return 1
}

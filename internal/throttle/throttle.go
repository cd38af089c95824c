// SPDX-License-Identifier: Unlicense OR MIT

// Package throttle rate-limits high frequency scroll notifications.
//
// A Limiter forwards the first sample after a quiet period
// immediately, then at most one sample per interval, and always
// delivers the newest sample of a burst within one interval of its
// arrival.
package throttle

import (
	"sync"
	"time"

	"github.com/yujiangshui/react-web/f32"
)

// Sample is one scroll notification.
type Sample struct {
	// Offset is the content offset reported by the scroll
	// primitive.
	Offset f32.Point
	// Time is the event timestamp, relative to an undefined base.
	Time time.Duration
}

// Limiter wraps a callback with a minimum spacing between calls.
//
// Observe is meant to be called from the host event loop, but the
// deferred forward fires on a timer goroutine, so a Limiter is
// internally locked.
type Limiter struct {
	interval time.Duration
	fn       func(Sample)

	mu         sync.Mutex
	closed     bool
	invoked    bool
	last       time.Time
	pending    Sample
	hasPending bool
	timer      *time.Timer

	now   func() time.Time
	after func(time.Duration, func()) *time.Timer
}

// New returns a Limiter forwarding to fn at most once per interval.
// A zero interval forwards every sample synchronously; a negative
// interval is treated as zero.
func New(interval time.Duration, fn func(Sample)) *Limiter {
	if interval < 0 {
		interval = 0
	}
	return &Limiter{
		interval: interval,
		fn:       fn,
		now:      time.Now,
		after:    time.AfterFunc,
	}
}

// Observe accepts a raw scroll sample. The sample is forwarded
// immediately when the interval has elapsed since the last forwarded
// call, and otherwise stored for a deferred forward at the end of the
// current window. Later samples replace the stored one.
func (l *Limiter) Observe(s Sample) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if l.interval == 0 {
		l.mu.Unlock()
		l.fn(s)
		return
	}
	now := l.now()
	if elapsed := now.Sub(l.last); !l.invoked || elapsed >= l.interval {
		l.invoked = true
		l.last = now
		l.hasPending = false
		l.pending = Sample{}
		if l.timer != nil {
			l.timer.Stop()
			l.timer = nil
		}
		l.mu.Unlock()
		l.fn(s)
		return
	}
	l.pending = s
	if !l.hasPending {
		l.hasPending = true
		l.timer = l.after(l.interval-now.Sub(l.last), l.forward)
	}
	l.mu.Unlock()
}

// forward delivers the pending sample at the end of a window. The
// callback runs with the lock held, so Close cannot return while a
// deferred forward is in flight; the callback must not call back into
// the Limiter.
func (l *Limiter) forward() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || !l.hasPending {
		return
	}
	now := l.now()
	if elapsed := now.Sub(l.last); elapsed < l.interval {
		// The timer fired late, inside a window restarted by an
		// immediate forward. Wait out the remainder.
		l.timer = l.after(l.interval-elapsed, l.forward)
		return
	}
	s := l.pending
	l.hasPending = false
	l.pending = Sample{}
	l.last = now
	l.fn(s)
}

// Close cancels any deferred forward and discards the pending sample.
// No call is forwarded after Close returns.
func (l *Limiter) Close() {
	l.mu.Lock()
	l.closed = true
	l.hasPending = false
	l.pending = Sample{}
	t := l.timer
	l.timer = nil
	l.mu.Unlock()
	if t != nil {
		t.Stop()
	}
}

// Package event provides a typed, synchronous publish/subscribe channel.
//
// A Channel delivers each published value to every current subscriber, in
// the order they attached, before Publish returns. Subscribers are isolated
// from one another: a handler that fails or panics is reported and skipped,
// and the remaining handlers still receive the value.
package event

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"go.uber.org/atomic"
)

// Handler receives published values. A returned error is reported through
// the channel's error reporter and never reaches the publisher.
type Handler[T any] func(T) error

// ConsumerError describes a subscriber that failed while handling a value.
type ConsumerError struct {
	Channel    string // channel name
	Subscriber uint64 // subscription id, in attachment order starting at 1
	Err        error  // error returned by the handler, or nil after a panic
	Panic      any    // recovered panic value, or nil
	Stack      []byte // stack trace captured for panics
}

func (e *ConsumerError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("event %s: subscriber %d panicked: %v", e.Channel, e.Subscriber, e.Panic)
	}
	return fmt.Sprintf("event %s: subscriber %d: %v", e.Channel, e.Subscriber, e.Err)
}

func (e *ConsumerError) Unwrap() error {
	return e.Err
}

// Option configures a Channel.
type Option func(*options)

type options struct {
	report func(*ConsumerError)
}

// WithErrorReporter replaces the default reporter, which logs consumer
// failures with slog at warning level.
func WithErrorReporter(fn func(*ConsumerError)) Option {
	return func(o *options) {
		o.report = fn
	}
}

func defaultReport(e *ConsumerError) {
	if e.Panic != nil {
		slog.Warn("event subscriber panicked", "channel", e.Channel, "subscriber", e.Subscriber, "panic", e.Panic, "stack", string(e.Stack))
		return
	}
	slog.Warn("event subscriber failed", "channel", e.Channel, "subscriber", e.Subscriber, "error", e.Err)
}

type subscriber[T any] struct {
	id      uint64
	handler Handler[T]
	active  *atomic.Bool
}

// Channel is a multicast event channel carrying values of type T.
// The zero value is not usable; create channels with NewChannel.
type Channel[T any] struct {
	name   string
	report func(*ConsumerError)

	mu     sync.Mutex
	subs   []*subscriber[T] // replaced, never mutated in place, so snapshots stay valid
	nextID uint64
	closed bool
}

// NewChannel creates an open channel. The name only appears in error reports.
func NewChannel[T any](name string, opts ...Option) *Channel[T] {
	o := options{report: defaultReport}
	for _, opt := range opts {
		opt(&o)
	}
	return &Channel[T]{name: name, report: o.report}
}

// Subscribe attaches h and returns a function that detaches it. The
// disposer is safe to call more than once and from inside a handler.
// Subscribing to a closed channel attaches nothing.
func (c *Channel[T]) Subscribe(h Handler[T]) (dispose func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return func() {}
	}

	c.nextID++
	s := &subscriber[T]{id: c.nextID, handler: h, active: atomic.NewBool(true)}

	subs := make([]*subscriber[T], len(c.subs), len(c.subs)+1)
	copy(subs, c.subs)
	c.subs = append(subs, s)

	return func() {
		if !s.active.CompareAndSwap(true, false) {
			return
		}
		c.remove(s.id)
	}
}

func (c *Channel[T]) remove(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	subs := make([]*subscriber[T], 0, len(c.subs))
	for _, s := range c.subs {
		if s.id != id {
			subs = append(subs, s)
		}
	}
	c.subs = subs
}

// Publish delivers v synchronously to the subscribers attached when the
// call starts, in attachment order. Subscribers detached mid-delivery are
// skipped. Publishing on a closed channel does nothing.
func (c *Channel[T]) Publish(v T) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	subs := c.subs
	c.mu.Unlock()

	for _, s := range subs {
		if !s.active.Load() {
			continue
		}
		c.deliver(s, v)
	}
}

func (c *Channel[T]) deliver(s *subscriber[T], v T) {
	defer func() {
		if r := recover(); r != nil {
			c.report(&ConsumerError{Channel: c.name, Subscriber: s.id, Panic: r, Stack: debug.Stack()})
		}
	}()
	if err := s.handler(v); err != nil {
		c.report(&ConsumerError{Channel: c.name, Subscriber: s.id, Err: err})
	}
}

// Close detaches every subscriber and stops further delivery.
func (c *Channel[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for _, s := range c.subs {
		s.active.Store(false)
	}
	c.subs = nil
}

// Closed reports whether Close has been called.
func (c *Channel[T]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Len returns the number of attached subscribers.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Name returns the channel name.
func (c *Channel[T]) Name() string {
	return c.name
}

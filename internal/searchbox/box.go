// Package searchbox implements the console's reusable filter input.
//
// A Box exposes one outbound channel, Update, carrying filter text. Mounting
// a box always emits "" first, so list views can treat the first value they
// receive as "show everything" without tracking whether a filter has been
// applied yet. Every later user interaction emits the current text.
package searchbox

import (
	"errors"
	"fmt"

	"github.com/jpl-au/juggler/internal/event"
	"go.uber.org/atomic"
)

var (
	// ErrNotMounted is returned for interactions with a box that was never mounted.
	ErrNotMounted = errors.New("search box not mounted")
	// ErrDestroyed is returned when mounting or interacting after Destroy.
	ErrDestroyed = errors.New("search box destroyed")
	// ErrUnknownPolicy is returned by ParsePolicy.
	ErrUnknownPolicy = errors.New("unknown emission policy")
)

// State is the lifecycle state of a Box.
type State int

const (
	StateUninitialized State = iota // constructed, not mounted
	StateInitialized                // mounted, "" emitted, no interaction yet
	StateActive                     // at least one interaction seen
	StateDestroyed                  // terminal
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateActive:
		return "active"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Policy decides which interactions produce an emission. The mount-time ""
// is emitted under every policy.
type Policy string

const (
	// PolicyEveryInteraction emits the current text on every interaction.
	PolicyEveryInteraction Policy = "every"
	// PolicyDistinct skips interactions whose text equals the last emission.
	PolicyDistinct Policy = "distinct"
)

func (p Policy) normalize() Policy {
	switch p {
	case PolicyDistinct:
		return PolicyDistinct
	default:
		return PolicyEveryInteraction
	}
}

// ParsePolicy converts a configuration value to a Policy. Empty selects
// PolicyEveryInteraction.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyEveryInteraction:
		return PolicyEveryInteraction, nil
	case PolicyDistinct:
		return PolicyDistinct, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s, %s)", ErrUnknownPolicy, s, PolicyEveryInteraction, PolicyDistinct)
	}
}

// Option configures a Box.
type Option func(*Box)

// WithPolicy sets the emission policy. Values other than PolicyDistinct
// select PolicyEveryInteraction.
func WithPolicy(p Policy) Option {
	return func(b *Box) {
		b.policy = p.normalize()
	}
}

// WithName names the update channel in consumer error reports.
func WithName(name string) Option {
	return func(b *Box) {
		b.name = name
	}
}

// WithChannelOptions passes options through to the update channel.
func WithChannelOptions(opts ...event.Option) Option {
	return func(b *Box) {
		b.chanOpts = append(b.chanOpts, opts...)
	}
}

// Box is one search filter instance. It is driven from a single UI loop and
// is not safe for concurrent interaction; its channel is.
type Box struct {
	name     string
	policy   Policy
	chanOpts []event.Option

	update  *event.Channel[string]
	state   State
	text    string
	last    string
	emitted *atomic.Int64
}

// New creates an unmounted box.
func New(opts ...Option) *Box {
	b := &Box{
		name:    "search",
		policy:  PolicyEveryInteraction,
		emitted: atomic.NewInt64(0),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.update = event.NewChannel[string](b.name, b.chanOpts...)
	return b
}

// Update returns the outbound filter channel. Subscribe before Mount to
// receive the initial "".
func (b *Box) Update() *event.Channel[string] {
	return b.update
}

// Mount initialises the box and synchronously emits "" exactly once.
// Mounting a mounted box does nothing.
func (b *Box) Mount() error {
	switch b.state {
	case StateDestroyed:
		return ErrDestroyed
	case StateInitialized, StateActive:
		return nil
	}
	b.state = StateInitialized
	b.text = ""
	b.emit("")
	return nil
}

// Input records one user interaction that left the input holding text.
func (b *Box) Input(text string) error {
	switch b.state {
	case StateUninitialized:
		return ErrNotMounted
	case StateDestroyed:
		return ErrDestroyed
	}
	b.state = StateActive
	b.text = text

	if b.policy == PolicyDistinct && text == b.last {
		return nil
	}
	b.emit(text)
	return nil
}

// Clear is an interaction that empties the input.
func (b *Box) Clear() error {
	return b.Input("")
}

// Destroy closes the update channel. No emissions follow. Safe to repeat.
func (b *Box) Destroy() {
	if b.state == StateDestroyed {
		return
	}
	b.state = StateDestroyed
	b.update.Close()
}

// State returns the lifecycle state.
func (b *Box) State() State { return b.state }

// Value returns the current input text.
func (b *Box) Value() string { return b.text }

// Policy returns the emission policy.
func (b *Box) Policy() Policy { return b.policy }

// Emitted returns how many values the box has published.
func (b *Box) Emitted() int64 { return b.emitted.Load() }

func (b *Box) emit(text string) {
	b.last = text
	b.emitted.Inc()
	b.update.Publish(text)
}

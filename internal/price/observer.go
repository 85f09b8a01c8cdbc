// Package price implements the market price observer. It watches a value
// rendered by the host page through a Source abstraction and fans out a
// notification whenever the observed value changes, so profit/loss consumers
// can re-derive without knowing how changes are detected.
package price

import (
	"context"
	"log"
	"math"
	"sync"
	"time"
)

// Observer states. The observer starts Idle, moves to Locating when started,
// and to Tracking once the source has found the price region. Losing the
// region falls back to Locating; stopping returns to Idle.
const (
	StateIdle     = "idle"
	StateLocating = "locating"
	StateTracking = "tracking"
)

// Subscriber receives the new price (sats per token) after each distinct change.
type Subscriber func(price float64)

// Observer polls a Source for the rendered market price and notifies
// subscribers exactly once per distinct change. Values are compared at
// two-decimal precision; re-reads of an unchanged value are suppressed.
type Observer struct {
	source   Source
	interval time.Duration

	mu          sync.RWMutex
	state       string
	price       float64
	known       bool
	subscribers []Subscriber
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewObserver creates an Observer over the given source, polling at the given
// interval.
func NewObserver(source Source, interval time.Duration) *Observer {
	return &Observer{
		source:   source,
		interval: interval,
		state:    StateIdle,
	}
}

// Subscribe registers a callback invoked after each distinct price change.
// Subscribers must be registered before Start; they are invoked from the
// observer's polling goroutine.
func (o *Observer) Subscribe(fn Subscriber) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.subscribers = append(o.subscribers, fn)
}

// Start begins polling. It transitions the observer to Locating and returns
// immediately; observation runs until Stop or context cancellation.
func (o *Observer) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	o.mu.Lock()
	o.state = StateLocating
	o.cancel = cancel
	o.done = make(chan struct{})
	done := o.done
	o.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(o.interval)
		defer ticker.Stop()

		o.tick(ctx)
		for {
			select {
			case <-ctx.Done():
				// Cancellation of the parent context is a teardown too;
				// a dead observer must not keep reporting Tracking.
				o.setState(StateIdle)
				return
			case <-ticker.C:
				o.tick(ctx)
			}
		}
	}()
}

// Stop ends observation and returns the observer to Idle. The held price is
// cleared; a later Start begins a fresh locate cycle.
func (o *Observer) Stop() {
	o.mu.Lock()
	cancel := o.cancel
	done := o.done
	o.cancel = nil
	o.done = nil
	o.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	o.mu.Lock()
	o.state = StateIdle
	o.price = 0
	o.known = false
	o.mu.Unlock()
}

// Price returns the most recently observed price. The second return value is
// false while no price has been observed yet.
func (o *Observer) Price() (float64, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.price, o.known
}

// State returns the observer's current state.
func (o *Observer) State() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// tick runs one locate/read cycle against the source.
func (o *Observer) tick(ctx context.Context) {
	o.mu.RLock()
	state := o.state
	o.mu.RUnlock()

	if state == StateLocating {
		if err := o.source.Locate(ctx); err != nil {
			// Stay in Locating; absence of a price is not an error.
			return
		}
		o.setState(StateTracking)
	}

	value, err := o.source.Read(ctx)
	if err != nil {
		// The tracked region disappeared; fall back to locating on the
		// next tick. The last known price is kept until a new one appears.
		log.Printf("price observer lost tracking: %v", err)
		o.setState(StateLocating)
		return
	}

	o.observe(value)
}

// observe updates the held price and notifies subscribers when the value
// differs, at two-decimal precision, from the previously known value.
func (o *Observer) observe(value float64) {
	rounded := math.Round(value*100) / 100
	if rounded <= 0 {
		return
	}

	o.mu.Lock()
	if o.known && o.price == rounded {
		o.mu.Unlock()
		return
	}
	o.price = rounded
	o.known = true
	subscribers := make([]Subscriber, len(o.subscribers))
	copy(subscribers, o.subscribers)
	o.mu.Unlock()

	for _, fn := range subscribers {
		fn(rounded)
	}
}

func (o *Observer) setState(state string) {
	o.mu.Lock()
	o.state = state
	o.mu.Unlock()
}

// Package outside detects clicks that land outside a set of components.
package outside

import (
	"context"
	"slices"
	"sync"

	"github.com/alexisbeaulieu97/tablekit/internal/ports"
)

// Options selects what counts as inside. A click is outside when its path
// contains none of Components and its classes contain none of
// ExcludedClasses.
type Options struct {
	Components      []string
	ExcludedClasses []string
	OnOutside       func(ports.ClickEvent)
}

// Release unsubscribes a mounted listener. It is safe to call more than once.
type Release func()

// Mount subscribes to src until the returned Release is called or ctx ends.
// With neither components nor classes configured nothing is subscribed.
func Mount(ctx context.Context, src ports.ClickSource, opts Options) Release {
	if src == nil || (len(opts.Components) == 0 && len(opts.ExcludedClasses) == 0) {
		return func() {}
	}

	unsubscribe := src.Subscribe(func(event ports.ClickEvent) {
		if IsOutside(event, opts) && opts.OnOutside != nil {
			opts.OnOutside(event)
		}
	})

	stop := make(chan struct{})
	var once sync.Once
	release := func() {
		once.Do(func() {
			close(stop)
			unsubscribe()
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			release()
		case <-stop:
		}
	}()

	return release
}

// IsOutside reports whether event missed every component and excluded class.
func IsOutside(event ports.ClickEvent, opts Options) bool {
	for _, component := range opts.Components {
		if slices.Contains(event.Path, component) {
			return false
		}
	}
	for _, class := range opts.ExcludedClasses {
		if slices.Contains(event.Classes, class) {
			return false
		}
	}
	return true
}

// Bus is an in-process ClickSource. Listeners run synchronously on the
// goroutine that publishes.
type Bus struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func(ports.ClickEvent)
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[int]func(ports.ClickEvent))}
}

// Subscribe registers listener until the returned function is called.
func (b *Bus) Subscribe(listener func(ports.ClickEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.listeners[id] = listener
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// Publish delivers event to every current listener.
func (b *Bus) Publish(event ports.ClickEvent) {
	b.mu.Lock()
	listeners := make([]func(ports.ClickEvent), 0, len(b.listeners))
	for _, listener := range b.listeners {
		listeners = append(listeners, listener)
	}
	b.mu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// Listeners reports how many listeners are subscribed.
func (b *Bus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

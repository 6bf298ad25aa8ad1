package iconcache

import (
	"context"
	"fmt"
	"sync"
)

// State is the load progress of a Handle.
type State int

const (
	Pending State = iota
	Resolved
	Failed
)

func (s State) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Handle is the future of one icon component. It is returned before the
// component has loaded.
type Handle struct {
	iconType string
	done     chan struct{}

	mu        sync.RWMutex
	state     State
	component Component
	err       error
}

func newHandle(iconType string, load Loader) *Handle {
	h := &Handle{iconType: iconType, done: make(chan struct{})}
	go h.run(load)
	return h
}

func (h *Handle) run(load Loader) {
	defer close(h.done)

	component, err := safeLoad(load)

	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		h.state = Failed
		h.err = fmt.Errorf("load icon %s: %w", h.iconType, err)
		return
	}
	h.state = Resolved
	h.component = component
}

func safeLoad(load Loader) (component Component, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loader panicked: %v", r)
		}
	}()
	return load()
}

// IconType is the registered type the handle loads.
func (h *Handle) IconType() string {
	return h.iconType
}

func (h *Handle) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Done is closed once the load has settled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the component is loaded or ctx ends. Cancelling ctx does
// not stop the load.
func (h *Handle) Wait(ctx context.Context) (Component, error) {
	select {
	case <-h.done:
	case <-ctx.Done():
		return Component{}, ctx.Err()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.component, h.err
}

// Package dialog tracks which dialogs of one table instance are open.
package dialog

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/tablekit/internal/logger"
)

// Registry records an open flag per dialog key plus the key opened last.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	open   map[string]bool
	active string
	log    *logger.Logger
}

// NewRegistry returns an empty registry. A nil logger disables logging.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		open: make(map[string]bool),
		log:  log,
	}
}

// Open marks key open and makes it the active dialog.
func (r *Registry) Open(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.open[key] = true
	r.active = key
	r.log.WithFields(map[string]any{"dialog": key}).Debug("dialog opened")
}

// Close marks key closed. The active dialog is cleared only when key is the
// active one.
func (r *Registry) Close(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.open[key] = false
	if r.active == key {
		r.active = ""
	}
	r.log.WithFields(map[string]any{"dialog": key}).Debug("dialog closed")
}

// IsOpen reports whether key is open. Unknown keys are closed.
func (r *Registry) IsOpen(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open[key]
}

// Active returns the key opened last, if it is still open.
func (r *Registry) Active() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active, r.active != ""
}

// OpenKeys lists every open dialog in sorted order.
func (r *Registry) OpenKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.open))
	for key, open := range r.open {
		if open {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Reset closes every dialog.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.open = make(map[string]bool)
	r.active = ""
}

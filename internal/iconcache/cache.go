// Package iconcache resolves icon types to lazily loaded components,
// memoized per table instance.
package iconcache

import (
	"sync"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

// Cache maps icon types to handles. The first request for a type creates
// the handle and starts loading; later requests get the same handle.
type Cache struct {
	mu      sync.Mutex
	loaders map[string]Loader
	handles map[string]*Handle
	log     *logger.Logger
}

// New builds a Cache over loaders. A nil map uses DefaultLoaders.
func New(loaders map[string]Loader, log *logger.Logger) *Cache {
	if loaders == nil {
		loaders = DefaultLoaders()
	}
	return &Cache{
		loaders: loaders,
		handles: make(map[string]*Handle),
		log:     log,
	}
}

// Resolve returns the handle for iconType. Empty or unregistered types are
// logged once and share the default icon's handle.
func (c *Cache) Resolve(iconType string) *Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolveLocked(iconType)
}

func (c *Cache) resolveLocked(iconType string) *Handle {
	if h, ok := c.handles[iconType]; ok {
		return h
	}

	load, ok := c.loaders[iconType]
	if !ok || iconType == "" {
		miss := tkerrors.NewLookupMiss(tkerrors.LookupIcon, iconType, DefaultIconType)
		c.log.WithFields(map[string]any{
			"icon_type": iconType,
			"fallback":  DefaultIconType,
		}).Warn(miss.Error())

		var h *Handle
		if iconType != DefaultIconType {
			if _, ok := c.loaders[DefaultIconType]; ok {
				h = c.resolveLocked(DefaultIconType)
			}
		}
		if h == nil {
			h = newHandle(DefaultIconType, missingLoader(miss))
		}
		c.handles[iconType] = h
		return h
	}

	h := newHandle(iconType, load)
	c.handles[iconType] = h
	return h
}

func missingLoader(err error) Loader {
	return func() (Component, error) { return Component{}, err }
}

// ResolveColumn resolves every activity of an action column. Activities
// without an icon type are logged and left as nil entries.
func (c *Cache) ResolveColumn(column *action.Column) []*Handle {
	if column == nil {
		return nil
	}

	out := make([]*Handle, len(column.ActivityList))
	for i, activity := range column.ActivityList {
		if activity == nil || activity.IconType == "" {
			c.log.WithFields(map[string]any{"activity_index": i}).
				Error(tkerrors.NewLookupMiss(tkerrors.LookupIcon, "", ""), "missing icon type for activity")
			continue
		}
		out[i] = c.Resolve(activity.IconType)
	}
	return out
}

// Len reports how many icon types have been requested.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

// Package table assembles one live table: its configuration, styles,
// responsive budgets, dialogs, icon cache and click-outside listeners.
package table

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/tablekit/internal/dialog"
	"github.com/alexisbeaulieu97/tablekit/internal/dispatch"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/responsive"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/style"
	domain "github.com/alexisbeaulieu97/tablekit/internal/domain/table"
	"github.com/alexisbeaulieu97/tablekit/internal/iconcache"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	"github.com/alexisbeaulieu97/tablekit/internal/outside"
	"github.com/alexisbeaulieu97/tablekit/internal/ports"
)

// ErrClosed is returned by operations on a closed Instance.
var ErrClosed = errors.New("table instance closed")

// Options configures a new Instance. Nil fields get empty defaults.
type Options struct {
	Config     *domain.Config
	Styles     *style.Tree
	Responsive *responsive.Config
	Loaders    map[string]iconcache.Loader
	Navigator  ports.Navigator
	Logger     *logger.Logger
}

// Instance owns every piece of per-table state. Nothing is shared between
// instances.
type Instance struct {
	Config     *domain.Config
	Styles     *style.Tree
	Responsive *responsive.Config
	Dialogs    *dialog.Registry
	Icons      *iconcache.Cache

	dispatcher *dispatch.Dispatcher
	navigator  ports.Navigator
	loadMore   *style.LoadMoreSwap
	log        *logger.Logger

	mu       sync.Mutex
	releases []outside.Release
	closed   bool
}

// New builds an Instance and starts loading the icons of every action column.
func New(opts Options) *Instance {
	cfg := opts.Config
	if cfg == nil {
		cfg = domain.NewConfig()
	}
	styles := opts.Styles
	if styles == nil {
		styles = style.NewTree()
	}
	budgets := opts.Responsive
	if budgets == nil {
		budgets = responsive.New(len(cfg.Headers), opts.Logger)
	}

	dialogs := dialog.NewRegistry(opts.Logger)
	inst := &Instance{
		Config:     cfg,
		Styles:     styles,
		Responsive: budgets,
		Dialogs:    dialogs,
		Icons:      iconcache.New(opts.Loaders, opts.Logger),
		dispatcher: dispatch.New(dialogs, opts.Logger),
		navigator:  opts.Navigator,
		loadMore:   style.NewLoadMoreSwap(styles),
		log:        opts.Logger,
	}
	inst.preloadIcons()
	return inst
}

func (i *Instance) preloadIcons() {
	if !i.Config.Actions.IsActions {
		return
	}
	for _, column := range i.Config.Actions.ColumnIndex {
		if column.ActivityType == action.ActivityIcon {
			i.Icons.ResolveColumn(column)
		}
	}
}

// Trigger dispatches the activity at activityIndex of column key for the row
// at rowIndex.
func (i *Instance) Trigger(key string, activityIndex, rowIndex int) (dispatch.Outcome, error) {
	if i.isClosed() {
		return dispatch.Outcome{}, ErrClosed
	}

	column, ok := i.Config.Actions.ColumnIndex[key]
	if !ok || !domain.IsActionColumn(key, i.Config) {
		return dispatch.Outcome{}, fmt.Errorf("column %q has no actions", key)
	}
	if activityIndex < 0 || activityIndex >= len(column.ActivityList) {
		return dispatch.Outcome{}, fmt.Errorf("column %q has no activity %d", key, activityIndex)
	}
	if rowIndex < 0 || rowIndex >= len(i.Config.Data) {
		return dispatch.Outcome{}, fmt.Errorf("row %d out of range", rowIndex)
	}

	rowID := i.Config.RowID(i.Config.Data[rowIndex])
	return i.dispatcher.HandleClick(column.ActivityList[activityIndex], rowID, rowIndex, column.ActivityType, i.navigator)
}

// MountOutside subscribes a click-outside listener that lives until ctx
// ends or the instance closes.
func (i *Instance) MountOutside(ctx context.Context, src ports.ClickSource, opts outside.Options) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return ErrClosed
	}
	i.releases = append(i.releases, outside.Mount(ctx, src, opts))
	return nil
}

// StartLoadMore switches the load-more button to its clicked styling.
func (i *Instance) StartLoadMore() {
	i.loadMore.Start()
}

// StopLoadMore restores the load-more button styling.
func (i *Instance) StopLoadMore() {
	i.loadMore.Stop()
}

// LoadingMore reports whether the load-more animation is running.
func (i *Instance) LoadingMore() bool {
	return i.loadMore.Active()
}

// Close releases every listener and closes all dialogs. Calling it again is
// a no-op.
func (i *Instance) Close() error {
	i.mu.Lock()
	releases := i.releases
	already := i.closed
	i.releases = nil
	i.closed = true
	i.mu.Unlock()

	if already {
		return nil
	}

	for _, release := range releases {
		release()
	}
	if i.loadMore.Active() {
		i.loadMore.Stop()
	}
	i.Dialogs.Reset()
	i.log.WithFields(map[string]any{"listeners": len(releases)}).Debug("table instance closed")
	return nil
}

func (i *Instance) isClosed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.closed
}

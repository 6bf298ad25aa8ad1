// Package responsive maps screen widths to the number of columns a table
// shows before folding the rest into its expandable row.
package responsive

import (
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

// Floors is the minimum width, in pixels, behind each breakpoint name. A
// width matches a breakpoint when it is strictly greater than the floor.
var Floors = map[string]int{
	"xxsm": 0,
	"xsm":  400,
	"xm":   480,
	"sm":   639,
	"md":   767,
	"lg":   1023,
	"xl":   1279,
	"xxl":  1535,
}

// DefaultBreakpoints is the widest-first order every Config starts with.
var DefaultBreakpoints = []string{"xxl", "xl", "lg", "md", "sm", "xm", "xsm", "xxsm"}

// Budget is the visible-column setting of one breakpoint.
type Budget struct {
	ColumnToShow int `json:"columnToShow" yaml:"columnToShow"`
}

// Config holds the ordered breakpoints and a budget per breakpoint.
type Config struct {
	breakpoints  []string
	dataShow     map[string]*Budget
	columnToShow int
	log          *logger.Logger
}

// New builds a Config that shows columnToShow columns at every breakpoint.
func New(columnToShow int, log *logger.Logger) *Config {
	c := &Config{
		breakpoints:  append([]string(nil), DefaultBreakpoints...),
		columnToShow: columnToShow,
		log:          log,
	}
	c.initializeDataShow()
	return c
}

func (c *Config) initializeDataShow() {
	c.dataShow = make(map[string]*Budget, len(c.breakpoints))
	for _, name := range c.breakpoints {
		c.dataShow[name] = &Budget{ColumnToShow: c.columnToShow}
	}
}

// Breakpoints returns the resolution order.
func (c *Config) Breakpoints() []string {
	return append([]string(nil), c.breakpoints...)
}

// Default returns the budget every breakpoint is initialized with.
func (c *Config) Default() int {
	return c.columnToShow
}

// UpdateBreakpoints replaces the resolution order and resets every budget to
// the default; earlier per-breakpoint settings must be applied again.
func (c *Config) UpdateBreakpoints(names []string) {
	c.breakpoints = append([]string(nil), names...)
	c.initializeDataShow()
}

// SetColumnToShow sets the budget of one breakpoint. Unknown names are logged
// and reported as a LookupMiss; nothing changes.
func (c *Config) SetColumnToShow(name string, columnToShow int) error {
	budget, ok := c.dataShow[name]
	if !ok {
		return c.miss(name)
	}
	budget.ColumnToShow = columnToShow
	return nil
}

// SetByIndex sets the budget of the breakpoint at index in the resolution
// order. Out of range indexes are ignored.
func (c *Config) SetByIndex(index, columnToShow int) {
	if index < 0 || index >= len(c.breakpoints) {
		return
	}
	if budget, ok := c.dataShow[c.breakpoints[index]]; ok {
		budget.ColumnToShow = columnToShow
	}
}

// SetRange sets every breakpoint from index end through index start, so
// SetRange(5, 2, n) covers lg through xm in the default order.
func (c *Config) SetRange(start, end, columnToShow int) {
	for i := end; i <= start; i++ {
		c.SetByIndex(i, columnToShow)
	}
}

// ColumnToShow returns the budget of a breakpoint. Unknown names are logged
// and return false.
func (c *Config) ColumnToShow(name string) (int, bool) {
	budget, ok := c.dataShow[name]
	if !ok {
		_ = c.miss(name)
		return 0, false
	}
	return budget.ColumnToShow, true
}

// All returns a copy of every budget keyed by breakpoint name.
func (c *Config) All() map[string]Budget {
	out := make(map[string]Budget, len(c.dataShow))
	for name, budget := range c.dataShow {
		out[name] = *budget
	}
	return out
}

func (c *Config) miss(name string) error {
	err := tkerrors.NewLookupMiss(tkerrors.LookupBreakpoint, name, "")
	c.log.WithFields(map[string]any{"breakpoint": name}).Error(err, "breakpoint not found")
	return err
}

// Resolve walks the breakpoints in stored order and returns the budget of
// the first one whose floor is below width. The boolean is false when no
// breakpoint matches; callers then show every column.
func Resolve(width int, cfg *Config) (Budget, bool) {
	name, ok := Match(width, cfg)
	if !ok {
		return Budget{}, false
	}
	return *cfg.dataShow[name], true
}

// Match returns the breakpoint name Resolve would use.
func Match(width int, cfg *Config) (string, bool) {
	if cfg == nil {
		return "", false
	}
	for _, name := range cfg.breakpoints {
		floor, known := Floors[name]
		if !known {
			continue
		}
		if width > floor {
			if _, ok := cfg.dataShow[name]; ok {
				return name, true
			}
		}
	}
	return "", false
}

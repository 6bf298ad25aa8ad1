package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	apptable "github.com/alexisbeaulieu97/tablekit/internal/app/table"
	"github.com/alexisbeaulieu97/tablekit/internal/domain/table"
	"github.com/alexisbeaulieu97/tablekit/internal/outside"
	"github.com/alexisbeaulieu97/tablekit/internal/ports"
)

// PixelsPerCell converts terminal columns to the pixel widths breakpoints
// are expressed in.
const PixelsPerCell = 8

const dialogComponent = "dialog"

// History records route navigations so the explorer can show them.
type History struct {
	Paths []string
}

// Navigate appends path.
func (h *History) Navigate(path string) error {
	h.Paths = append(h.Paths, path)
	return nil
}

// Last returns the most recent path.
func (h *History) Last() (string, bool) {
	if h == nil || len(h.Paths) == 0 {
		return "", false
	}
	return h.Paths[len(h.Paths)-1], true
}

type loadMoreDoneMsg struct{}

// Model is the Bubbletea state of the table explorer.
type Model struct {
	title    string
	inst     *apptable.Instance
	history  *History
	clicks   *outside.Bus
	keys     keyMap
	help     help.Model
	pager    paginator.Model
	width    int
	height   int
	cursor   int
	activity int
	sortStep int
	expanded map[string]bool
	status   string
	err      string
	quitting bool
}

// NewModel builds an explorer over inst. history must be the navigator inst
// was built with so routes show up in the status line.
func NewModel(title string, inst *apptable.Instance, history *History, width int) Model {
	m := Model{
		title:    title,
		inst:     inst,
		history:  history,
		clicks:   outside.NewBus(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		pager:    paginator.New(),
		width:    width,
		sortStep: -1,
		expanded: make(map[string]bool),
	}
	m.syncPager()

	dialogs := inst.Dialogs
	_ = inst.MountOutside(context.Background(), m.clicks, outside.Options{
		Components: []string{dialogComponent},
		OnOutside: func(ports.ClickEvent) {
			if key, ok := dialogs.Active(); ok {
				dialogs.Close(key)
			}
		},
	})
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the highlighted row on the current page.
func (m Model) Cursor() int {
	return m.cursor
}

// Page returns the zero-based current page.
func (m Model) Page() int {
	return m.pager.Page
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

func (m *Model) syncPager() {
	cfg := m.inst.Config
	m.pager.PerPage = max(cfg.ItemPerPage.Value, 1)
	if cfg.Pagination.IsShow {
		m.pager.SetTotalPages(len(cfg.Data))
	} else {
		m.pager.SetTotalPages(0)
	}
	if m.pager.TotalPages < 1 {
		m.pager.TotalPages = 1
	}
	if m.pager.Page >= m.pager.TotalPages {
		m.pager.Page = m.pager.TotalPages - 1
	}
}

func (m Model) resolve() (*apptable.View, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	return m.inst.View(ctx, apptable.ViewRequest{Width: m.width * PixelsPerCell, Page: m.pager.Page})
}

func (m Model) loadMore() bool {
	return m.inst.Config.Pagination.PaginationType == table.LoadMore
}

func (m Model) sortableKeys() []string {
	cfg := m.inst.Config
	if !cfg.Sorting.IsSorting {
		return nil
	}
	var keys []string
	for _, h := range cfg.RenderableHeaders() {
		if cfg.Sorting.ColumnIndex.Has(h.Key) {
			keys = append(keys, h.Key)
		}
	}
	return keys
}

// rowIndex maps a row id back to its position in the table data.
func (m Model) rowIndex(id string) int {
	cfg := m.inst.Config
	for i, row := range cfg.Data {
		if cfg.RowID(row) == id {
			return i
		}
	}
	return -1
}

func actionColumn(v *apptable.View) string {
	for _, h := range v.Headers {
		if h.Mode == "action" {
			return h.Key
		}
	}
	for _, h := range v.ExpandedHeaders {
		if h.Mode == "action" {
			return h.Key
		}
	}
	return ""
}

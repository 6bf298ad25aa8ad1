package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
	"github.com/alexisbeaulieu97/tablekit/internal/ports"
)

const loadMoreDelay = 300 * time.Millisecond

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.Y)
		}
		return m, nil
	case loadMoreDoneMsg:
		m.inst.StopLoadMore()
		m.pager.NextPage()
		m.status = fmt.Sprintf("showing %d pages", m.pager.Page+1)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.inst.Config
	m.err = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.CloseDialog):
		if active, ok := m.inst.Dialogs.Active(); ok {
			m.inst.Dialogs.Close(active)
			m.status = "closed " + active
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.activity = 0
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.visibleRows()-1 {
			m.cursor++
			m.activity = 0
		}
	case key.Matches(msg, m.keys.NextAction):
		m.activity++
	case key.Matches(msg, m.keys.PrevAction):
		if m.activity > 0 {
			m.activity--
		}
	case key.Matches(msg, m.keys.PrevPage):
		if !m.loadMore() {
			m.pager.PrevPage()
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.NextPage):
		if !m.loadMore() {
			m.pager.NextPage()
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Toggle):
		if id, index, ok := m.currentRow(); ok {
			cfg.UpdateCheckBox(&id, index, !cfg.IsSelected(id))
		}
	case key.Matches(msg, m.keys.ToggleAll):
		cfg.UpdateCheckBox(nil, 0, !cfg.SelectedItem.IsAllSelected)
	case key.Matches(msg, m.keys.Sort):
		m.sort()
	case key.Matches(msg, m.keys.PageSize):
		size := cfg.NextItemPerPage()
		m.pager.Page = 0
		m.cursor = 0
		m.syncPager()
		m.status = fmt.Sprintf("%d rows per page", size)
	case key.Matches(msg, m.keys.Expand):
		if id, _, ok := m.currentRow(); ok {
			m.expanded[id] = !m.expanded[id]
		}
	case key.Matches(msg, m.keys.Trigger):
		m.trigger()
	case key.Matches(msg, m.keys.LoadMore):
		if m.loadMore() && !m.inst.LoadingMore() && !m.pager.OnLastPage() {
			m.inst.StartLoadMore()
			return m, tea.Tick(loadMoreDelay, func(time.Time) tea.Msg { return loadMoreDoneMsg{} })
		}
	}

	m.cursor = min(m.cursor, max(m.visibleRows()-1, 0))
	return m, nil
}

func (m Model) visibleRows() int {
	v, err := m.resolve()
	if err != nil {
		return 0
	}
	return len(v.Rows)
}

func (m Model) currentRow() (string, int, bool) {
	v, err := m.resolve()
	if err != nil || m.cursor >= len(v.Rows) {
		return "", 0, false
	}
	id := v.Rows[m.cursor].ID
	return id, m.rowIndex(id), true
}

func (m *Model) sort() {
	keys := m.sortableKeys()
	if len(keys) == 0 {
		m.err = "no sortable columns"
		return
	}
	m.sortStep = (m.sortStep + 1) % (len(keys) * 2)
	column := keys[m.sortStep/2]
	descending := m.sortStep%2 == 1
	if err := m.inst.Config.SortBy(column, descending); err != nil {
		m.err = err.Error()
		return
	}
	direction := "ascending"
	if descending {
		direction = "descending"
	}
	m.status = fmt.Sprintf("sorted by %s, %s", column, direction)
}

func (m *Model) trigger() {
	v, err := m.resolve()
	if err != nil {
		m.err = err.Error()
		return
	}
	column := actionColumn(v)
	if column == "" || m.cursor >= len(v.Rows) {
		m.err = "no action on this row"
		return
	}

	activities := m.inst.Config.Actions.ColumnIndex[column].ActivityList
	if len(activities) == 0 {
		return
	}
	activity := m.activity % len(activities)
	out, err := m.inst.Trigger(column, activity, m.rowIndex(v.Rows[m.cursor].ID))
	if err != nil {
		m.err = err.Error()
		return
	}

	switch out.Behavior {
	case action.Route:
		if path, ok := m.history.Last(); ok {
			m.status = "navigated to " + path
		}
	case action.PopUp:
		m.status = "opened " + out.Module
	default:
		m.status = "nothing to do"
	}
}

// click publishes a click at screen row y. Rows inside the dialog box count
// as clicks on the dialog.
func (m *Model) click(y int) {
	path := []string{"table", "screen"}
	if top, bottom, ok := m.dialogBounds(); ok && y >= top && y < bottom {
		path = []string{dialogComponent, "screen"}
	}
	before, _ := m.inst.Dialogs.Active()
	m.clicks.Publish(ports.ClickEvent{Path: path})
	if _, still := m.inst.Dialogs.Active(); before != "" && !still {
		m.status = "closed " + before
	}
}

func (m Model) dialogBounds() (int, int, bool) {
	if _, ok := m.inst.Dialogs.Active(); !ok {
		return 0, 0, false
	}
	body, dialog := m.sections()
	top := lipgloss.Height(body)
	return top, top + lipgloss.Height(dialog), true
}

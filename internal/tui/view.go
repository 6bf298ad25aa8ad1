package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the table with its footer, any open dialog and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	body, dialog := m.sections()

	var b strings.Builder
	b.WriteString(body)
	if dialog != "" {
		b.WriteString("\n")
		b.WriteString(dialog)
	}
	b.WriteString("\n\n")
	switch {
	case m.err != "":
		b.WriteString(errorStyle.Render("✗ " + m.err))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// sections returns the table block and the dialog box separately so clicks
// can be mapped to the dialog.
func (m Model) sections() (string, string) {
	v, err := m.resolve()
	if err != nil {
		return errorStyle.Render(err.Error()), ""
	}

	var b strings.Builder
	title := m.title
	if v.Breakpoint != "" {
		title = fmt.Sprintf("%s  (%s, %d columns)", title, v.Breakpoint, len(v.Headers))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(v, RenderState{
		Cursor:   m.cursor,
		Activity: m.activity,
		Focused:  true,
		Expanded: m.expanded,
	}))

	label := ""
	if m.inst.Config.ItemPerPage.IsShow {
		label = m.inst.Config.ItemPerPage.Label
	}
	if footer := RenderFooter(v, label); footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}
	if v.Pagination.Show && !m.loadMore() && m.pager.TotalPages > 1 {
		b.WriteString("\n")
		b.WriteString(m.pager.View())
	}

	active, ok := m.inst.Dialogs.Active()
	if !ok {
		return b.String(), ""
	}
	dialog := dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(active),
		lipgloss.NewStyle().Foreground(mutedColor).Render("click outside or press esc to close"),
	))
	return b.String(), dialog
}

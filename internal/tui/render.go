package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apptable "github.com/alexisbeaulieu97/tablekit/internal/app/table"
)

// RenderState carries the interactive bits of a render. The zero value
// renders a static table.
type RenderState struct {
	Cursor   int
	Activity int
	Focused  bool
	Expanded map[string]bool
}

// RenderTable draws a resolved view as aligned terminal columns.
func RenderTable(v *apptable.View, state RenderState) string {
	if v == nil {
		return ""
	}

	grid := [][]string{headerCells(v)}
	styles := [][]lipgloss.Style{headerStyles(v)}
	for i, row := range v.Rows {
		cells, cellStyles := rowCells(v, row, state, i)
		grid = append(grid, cells)
		styles = append(styles, cellStyles)
	}

	widths := columnWidths(grid)
	var lines []string
	for r, cells := range grid {
		parts := make([]string, len(cells))
		for c, cell := range cells {
			parts[c] = cellStyle.Width(widths[c] + 2).Render(styles[r][c].Render(cell))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		if r > 0 && state.Focused && r-1 == state.Cursor {
			line = cursorStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)

		if r > 0 {
			row := v.Rows[r-1]
			if len(row.Expanded) > 0 && (state.Expanded[row.ID] || !state.Focused) {
				lines = append(lines, expandedLines(v, row)...)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// RenderFooter draws the total, the page size and the load-more button.
func RenderFooter(v *apptable.View, pageSizeLabel string) string {
	if v == nil {
		return ""
	}

	var parts []string
	if v.Total != nil {
		parts = append(parts, "Total: "+strconv.FormatFloat(*v.Total, 'f', -1, 64))
	}
	if v.Pagination.Show {
		if pageSizeLabel != "" {
			parts = append(parts, fmt.Sprintf("%s %d", pageSizeLabel, v.Pagination.PerPage))
		}
		if v.Pagination.Type == "loadMore" {
			label := "Load more"
			if strings.Contains(v.Pagination.ButtonClass, "buttonClick") {
				label = "Loading…"
			}
			parts = append(parts, classStyle(v.Pagination.ButtonClass).Render(label))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return footerStyle.Render(strings.Join(parts, "   "))
}

func headerCells(v *apptable.View) []string {
	var cells []string
	if v.Select {
		cells = append(cells, checkbox(v.AllSelected))
	}
	if v.SerialNo {
		cells = append(cells, "#")
	}
	for _, h := range v.Headers {
		label := h.Label
		if h.Sortable {
			label += " ↕"
		}
		cells = append(cells, label)
	}
	if len(v.ExpandedHeaders) > 0 {
		cells = append(cells, "")
	}
	return cells
}

func headerStyles(v *apptable.View) []lipgloss.Style {
	var out []lipgloss.Style
	if v.Select {
		out = append(out, lipgloss.NewStyle())
	}
	if v.SerialNo {
		out = append(out, classStyle("table__head__th"))
	}
	for _, h := range v.Headers {
		out = append(out, classStyle(h.Class))
	}
	if len(v.ExpandedHeaders) > 0 {
		out = append(out, lipgloss.NewStyle())
	}
	return out
}

func rowCells(v *apptable.View, row apptable.RowView, state RenderState, index int) ([]string, []lipgloss.Style) {
	var cells []string
	var styles []lipgloss.Style
	if v.Select {
		cells = append(cells, checkbox(row.Selected))
		styles = append(styles, lipgloss.NewStyle())
	}
	if v.SerialNo {
		cells = append(cells, strconv.Itoa(row.Serial))
		styles = append(styles, lipgloss.NewStyle().Foreground(mutedColor))
	}
	for _, cell := range row.Cells {
		activity := -1
		if state.Focused && index == state.Cursor {
			activity = state.Activity
		}
		cells = append(cells, cellText(cell, activity))
		styles = append(styles, classStyle(classList(cell)...))
	}
	if len(row.Expanded) > 0 {
		marker := "+"
		if state.Expanded[row.ID] {
			marker = "-"
		}
		cells = append(cells, marker)
		styles = append(styles, lipgloss.NewStyle().Foreground(mutedColor))
	}
	return cells, styles
}

func expandedLines(v *apptable.View, row apptable.RowView) []string {
	lines := make([]string, 0, len(row.Expanded))
	for i, cell := range row.Expanded {
		label := cell.Key
		if i < len(v.ExpandedHeaders) {
			label = v.ExpandedHeaders[i].Label
		}
		text := classStyle(classList(cell)...).Render(cellText(cell, -1))
		lines = append(lines, fmt.Sprintf("      %s: %s", label, text))
	}
	return lines
}

// cellText renders a cell as plain text. For action cells, activity marks
// the highlighted activity, or -1 for none.
func cellText(cell apptable.CellView, activity int) string {
	switch cell.Mode {
	case "multiple":
		return strings.Join(cell.Values, " / ")
	case "action":
		parts := make([]string, 0, len(cell.Activities))
		for i, a := range cell.Activities {
			label := a.Glyph
			if label == "" {
				label = "[" + a.Content + "]"
				if s, ok := theme[a.Class]; ok {
					label = s.Render(label)
				}
			}
			if i == activity {
				label = cursorStyle.Render("‹" + label + "›")
			}
			parts = append(parts, label)
		}
		return strings.Join(parts, " ")
	default:
		return cell.Text
	}
}

// classList returns the cell classes ordered by style path.
func classList(cell apptable.CellView) []string {
	paths := make([]string, 0, len(cell.Classes))
	for path := range cell.Classes {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	classes := make([]string, 0, len(paths))
	for _, path := range paths {
		classes = append(classes, cell.Classes[path])
	}
	return classes
}

func columnWidths(grid [][]string) []int {
	var widths []int
	for _, cells := range grid {
		for c, cell := range cells {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}
	return widths
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// PlainText renders a cell without any styling.
func PlainText(cell apptable.CellView) string {
	if cell.Mode != "action" {
		return cellText(cell, -1)
	}
	parts := make([]string, 0, len(cell.Activities))
	for _, a := range cell.Activities {
		parts = append(parts, a.Content)
	}
	return strings.Join(parts, " ")
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("226")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	footerStyle = lipgloss.NewStyle().MarginTop(1).Foreground(mutedColor)
	cursorStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)

	dialogStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2).
			MarginTop(1)
)

// theme maps class names produced by the style tree to terminal styles.
// Classes without an entry render plain.
var theme = map[string]lipgloss.Style{
	"table__head__th":                          lipgloss.NewStyle().Bold(true).Foreground(primaryColor),
	"table__head__th__sortItem":                lipgloss.NewStyle().Bold(true).Underline(true).Foreground(primaryColor),
	"table__body__td__multipleColumn__wrapper": lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	"table__body__td__actionColumn__wrapper":   lipgloss.NewStyle().Foreground(accentColor),
	"table__expandColumn__td__normal__wrapper": lipgloss.NewStyle().Foreground(mutedColor),
	"table__pagination__loadMore__button":      lipgloss.NewStyle().Reverse(true).Padding(0, 1),
	"table__pagination__loadMore__buttonClick": lipgloss.NewStyle().Faint(true).Italic(true).Padding(0, 1),
	"status__badge":                            lipgloss.NewStyle().Foreground(warningColor),
	"highlight":                                lipgloss.NewStyle().Bold(true).Foreground(accentColor),
	"customTable__button__primary__normal":     lipgloss.NewStyle().Reverse(true).Foreground(primaryColor),
	"customTable__button__primary__outline":    lipgloss.NewStyle().Foreground(primaryColor),
	"customTable__button__secondary__normal":   lipgloss.NewStyle().Reverse(true).Foreground(mutedColor),
	"customTable__button__secondary__outline":  lipgloss.NewStyle().Foreground(mutedColor),
	"customTable__button__disable__normal":     lipgloss.NewStyle().Faint(true),
	"customTable__button__disable__outline":    lipgloss.NewStyle().Faint(true),
	"customTable__button__cancel__normal":      lipgloss.NewStyle().Reverse(true).Foreground(errorColor),
	"customTable__button__cancel__outline":     lipgloss.NewStyle().Foreground(errorColor),
}

// classStyle merges the theme entries of every class in classes. Later
// classes win on conflicting properties.
func classStyle(classes ...string) lipgloss.Style {
	out := lipgloss.NewStyle()
	for _, list := range classes {
		for _, class := range strings.Fields(list) {
			if s, ok := theme[class]; ok {
				out = s.Inherit(out)
			}
		}
	}
	return out
}

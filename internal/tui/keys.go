package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextAction  key.Binding
	PrevAction  key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	Toggle      key.Binding
	ToggleAll   key.Binding
	Sort        key.Binding
	PageSize    key.Binding
	Expand      key.Binding
	Trigger     key.Binding
	LoadMore    key.Binding
	CloseDialog key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextAction:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next action")),
		PrevAction:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev action")),
		PrevPage:    key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:    key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
		ToggleAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		PageSize:    key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "page size")),
		Expand:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand row")),
		Trigger:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run action")),
		LoadMore:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "load more")),
		CloseDialog: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close dialog")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Trigger, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.NextAction, k.PrevAction, k.Trigger, k.CloseDialog},
		{k.Toggle, k.ToggleAll, k.Sort, k.PageSize},
		{k.Expand, k.LoadMore, k.Help, k.Quit},
	}
}

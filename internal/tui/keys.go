package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Applied   key.Binding
	Interview key.Binding
	Hired     key.Binding
	Add       key.Binding
	Search    key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column right")),
		Next:      key.NewBinding(key.WithKeys("]", "enter"), key.WithHelp("]", "advance")),
		Prev:      key.NewBinding(key.WithKeys("["), key.WithHelp("[", "move back")),
		Applied:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "drop on applied")),
		Interview: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "drop on interview")),
		Hired:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "drop on hired")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "board/list")),
		Delete:    key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Next, k.Prev, k.Search, k.Toggle, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Next, k.Prev, k.Applied, k.Interview, k.Hired},
		{k.Add, k.Search, k.Toggle},
		{k.Delete, k.Clear, k.Help, k.Quit},
	}
}

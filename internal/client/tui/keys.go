package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Search   key.Binding
	Goto     key.Binding
	More     key.Binding
	Select   key.Binding
	Favorite key.Binding
	Approve  key.Binding
	Reject   key.Binding
	Revert   key.Binding
	Delete   key.Binding
	ViewMode key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("backspace", "h"), key.WithHelp("⌫/h", "parent")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Goto:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to id")),
		More:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "more")),
		Select:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Favorite: key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "favorite")),
		Approve:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
		Reject:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reject")),
		Revert:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pending")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		ViewMode: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/list")),
		Refresh:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Search, k.Select, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back, k.More, k.Goto, k.Refresh},
		{k.Search, k.Select, k.Favorite, k.Delete, k.ViewMode},
		{k.Approve, k.Reject, k.Revert},
		{k.Help, k.Quit},
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Focus key.Binding
	Reset key.Binding
	Back  key.Binding
	Erase key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "next id")),
		Prev:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "prev id")),
		Focus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "search")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "clear error")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Erase: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Focus, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Reset}, {k.Focus, k.Back, k.Erase, k.Quit}}
}

// searchKeyMap is shown while the query field has focus.
type searchKeyMap struct {
	keyMap
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Erase, k.Back, k.Focus}
}

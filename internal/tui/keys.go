package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	add     key.Binding
	edit    key.Binding
	toggle  key.Binding
	delete  key.Binding
	refresh key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
	toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
	delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy id")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.add, k.toggle, k.edit, k.delete, k.copy, k.refresh, k.quit}
}

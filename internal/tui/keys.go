package tui

import "github.com/charmbracelet/bubbles/key"

// listKeys are active while no dialog is open.
type listKeys struct {
	Quit   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	View   key.Binding
}

var listKeyMap = listKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Add: key.NewBinding(
		key.WithKeys("a", "+"),
		key.WithHelp("a", "add"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x", "delete"),
		key.WithHelp("d", "delete"),
	),
	View: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "view"),
	),
}

// formKeys are active while the create/edit form is open.
type formKeys struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
}

var formKeyMap = formKeys{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
}

// viewKeys are active in the read-only dialog.
type viewKeys struct {
	Close key.Binding
	Edit  key.Binding
}

var viewKeyMap = viewKeys{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "enter"),
		key.WithHelp("esc", "close"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
}

// confirmKeys resolve the delete prompt and dismiss notices.
type confirmKeys struct {
	Yes key.Binding
	No  key.Binding
}

var confirmKeyMap = confirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "delete"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "cancel"),
	),
}

var dismissKey = key.NewBinding(
	key.WithKeys("enter", "esc"),
	key.WithHelp("enter", "ok"),
)

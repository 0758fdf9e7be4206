package tui

import "github.com/charmbracelet/bubbles/key"

type weekKeys struct {
	Create key.Binding
	Edit   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Delete key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newWeekKeys() weekKeys {
	return weekKeys{
		Create: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next event")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev event")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k weekKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Create, k.Edit, k.Next, k.Delete, k.Help, k.Quit}
}

func (k weekKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Create, k.Edit, k.Delete},
		{k.Next, k.Prev},
		{k.Help, k.Quit},
	}
}

type formKeys struct {
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Add       key.Binding
	RemoveOne key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func newFormKeys() formKeys {
	return formKeys{
		Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "change")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle day")),
		Add:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save / add attendee")),
		RemoveOne: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove attendee")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Add, k.Submit, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Toggle},
		{k.Add, k.RemoveOne, k.Submit, k.Cancel},
	}
}

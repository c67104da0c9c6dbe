package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Submit      key.Binding
	SwitchFocus key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Edit        key.Binding
	Zero        key.Binding
	Cancel      key.Binding
	Chart       key.Binding
	Export      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add player")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch focus")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Edit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/0-9", "edit")),
		Zero:        key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "zero")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		Chart:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chart")),
		Export:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	}
}

func (k keyMap) nameHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchFocus, k.ForceQuit}
}

func (k keyMap) gridHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Edit, k.Zero, k.Chart, k.Export, k.SwitchFocus, k.Quit}
}

func (k keyMap) editHelp() []key.Binding {
	done := key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done"))
	return []key.Binding{done, k.ForceQuit}
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, helpKeyStyle.Render(help.Key)+" "+helpDescStyle.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}

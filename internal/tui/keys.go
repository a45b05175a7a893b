package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	JumpLeft  key.Binding
	JumpRight key.Binding
	Start     key.Binding
	End       key.Binding
	Reset     key.Binding
	Save      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		JumpLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "jump left")),
		JumpRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "jump right")),
		Start:     key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "all after")),
		End:       key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("end", "all before")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.JumpLeft, k.JumpRight, k.Reset, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.JumpLeft, k.JumpRight},
		{k.Start, k.End, k.Reset},
		{k.Save, k.Quit},
	}
}

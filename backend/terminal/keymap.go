package terminal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/gridscroll/surface"
)

// KeyMap defines the keybindings of the terminal host.
type KeyMap struct {
	LineUp       key.Binding
	LineDown     key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	JumpFirst    key.Binding
	JumpLast     key.Binding
	GoToIndex    key.Binding
	SetCount     key.Binding
	ToggleSmooth key.Binding
	Help         key.Binding
	Quit         key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LineUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn/f", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "bottom"),
		),
		JumpFirst: key.NewBinding(
			key.WithKeys("ctrl+home", "g"),
			key.WithHelp("g", "jump to first"),
		),
		JumpLast: key.NewBinding(
			key.WithKeys("ctrl+end", "G"),
			key.WithHelp("G", "jump to last"),
		),
		GoToIndex: key.NewBinding(
			key.WithKeys(":", "i"),
			key.WithHelp(":", "go to index"),
		),
		SetCount: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "set item count"),
		),
		ToggleSmooth: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "smooth jumps"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LineDown, k.PageDown, k.GoToIndex, k.SetCount, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LineUp, k.LineDown, k.PageUp, k.PageDown},
		{k.Home, k.End, k.JumpFirst, k.JumpLast},
		{k.GoToIndex, k.SetCount, k.ToggleSmooth},
		{k.Help, k.Quit},
	}
}

// command maps a navigation key to a surface command.
func (k KeyMap) command(msg tea.KeyMsg) surface.Command {
	switch {
	case key.Matches(msg, k.LineUp):
		return surface.CmdLineUp
	case key.Matches(msg, k.LineDown):
		return surface.CmdLineDown
	case key.Matches(msg, k.PageUp):
		return surface.CmdPageUp
	case key.Matches(msg, k.PageDown):
		return surface.CmdPageDown
	case key.Matches(msg, k.Home):
		return surface.CmdHome
	case key.Matches(msg, k.End):
		return surface.CmdEnd
	case key.Matches(msg, k.JumpFirst):
		return surface.CmdJumpFirst
	case key.Matches(msg, k.JumpLast):
		return surface.CmdJumpLast
	default:
		return surface.CmdNone
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Help     key.Binding
	Settings key.Binding
	Enter    key.Binding
	Mode     key.Binding
	Tab      key.Binding
	Copy     key.Binding
	Export   key.Binding
	Scroll   key.Binding

	Preset     key.Binding
	Complexity key.Binding
	Density    key.Binding
	Rhythm     key.Binding
	Figurative key.Binding
	Font       key.Binding
	Align      key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back/quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Settings: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "settings"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Mode: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "mode"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "field"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy"),
	),
	Export: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "pdf"),
	),
	Scroll: key.NewBinding(
		key.WithKeys("pgup", "pgdown"),
		key.WithHelp("pgup/pgdn", "scroll"),
	),
	Preset: key.NewBinding(
		key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
		key.WithHelp("alt+1..9", "preset"),
	),
	Complexity: key.NewBinding(
		key.WithKeys("alt+c"),
		key.WithHelp("alt+c", "complexity"),
	),
	Density: key.NewBinding(
		key.WithKeys("alt+l"),
		key.WithHelp("alt+l", "lexical"),
	),
	Rhythm: key.NewBinding(
		key.WithKeys("alt+r"),
		key.WithHelp("alt+r", "rhythm"),
	),
	Figurative: key.NewBinding(
		key.WithKeys("alt+f"),
		key.WithHelp("alt+f", "figurative"),
	),
	Font: key.NewBinding(
		key.WithKeys("alt+t"),
		key.WithHelp("alt+t", "font"),
	),
	Align: key.NewBinding(
		key.WithKeys("alt+a"),
		key.WithHelp("alt+a", "align"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Mode, k.Tab, k.Copy, k.Export, k.Help, k.Back}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Mode, k.Tab, k.Scroll},
		{k.Copy, k.Export, k.Settings, k.Help},
		{k.Preset, k.Complexity, k.Density, k.Rhythm, k.Figurative},
		{k.Font, k.Align},
		{k.Back, k.Quit},
	}
}

// presetIndex maps alt+N to a zero-based preset index.
func presetIndex(s string) int {
	if len(s) != len("alt+1") || s[:4] != "alt+" || s[4] < '1' || s[4] > '9' {
		return -1
	}
	return int(s[4] - '1')
}

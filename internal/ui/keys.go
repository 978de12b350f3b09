package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Landing
	Enter key.Binding

	// Roster navigation
	Back     key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// Search/input
	Search      key.Binding
	Confirm     key.Binding
	ClearSearch key.Binding

	// Audio
	PlayPause  key.Binding
	Mute       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Landing
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Enter roster"),
		),

		// Roster navigation
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "Back to landing"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "n", "pgdown"),
			key.WithHelp("→/n", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "p", "pgup"),
			key.WithHelp("←/p", "Previous page"),
		),

		// Search/input
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search members"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Done searching"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search"),
		),

		// Audio
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Play/pause music"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle mute"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Volume down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.PrevPage, k.NextPage, k.PlayPause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Roster
		{k.Enter, k.Back, k.PrevPage, k.NextPage},
		// Search
		{k.Search, k.Confirm, k.ClearSearch},
		// Music
		{k.PlayPause, k.Mute, k.VolumeUp, k.VolumeDown},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// helpTitles names the FullHelp groups in order.
var helpTitles = []string{"Roster", "Search", "Music", "General"}

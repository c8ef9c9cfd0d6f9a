package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	search    key.Binding
	toggleFav key.Binding
	media     key.Binding
	switchTab key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		search:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		toggleFav: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "toggle favourite")),
		media:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "media filter")),
		switchTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "results/favourites")),
		quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.search, k.toggleFav, k.media, k.switchTab, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.search},
		{k.toggleFav, k.media, k.switchTab},
		{k.quit},
	}
}

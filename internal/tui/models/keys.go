// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import "github.com/charmbracelet/bubbles/key"

// CatalogKeyMap defines key bindings for the catalog screen.
type CatalogKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Search    key.Binding
	Sort      key.Binding
	Open      key.Binding
	Close     key.Binding
	Help      key.Binding
	Docs      key.Binding
	Quit      key.Binding
}

// DefaultCatalogKeyMap returns the default key bindings.
func DefaultCatalogKeyMap() CatalogKeyMap {
	return CatalogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "pgup"),
			key.WithHelp("h/←", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "pgdown"),
			key.WithHelp("l/→", "next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Open: key.NewBinding(
			key.WithKeys(KeyEnter),
			key.WithHelp("enter", "details"),
		),
		Close: key.NewBinding(
			key.WithKeys(KeyEsc, KeyEnter, "q"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Docs: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "documentation"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k CatalogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.PrevPage, k.NextPage, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k CatalogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Close},
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
		{k.Search, k.Sort, k.Help, k.Docs, k.Quit},
	}
}

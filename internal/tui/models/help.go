// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the screens of the interactive catalog.
package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/atlas/internal/tui/styles"
)

// docsWrapWidth is the widest the documentation text is wrapped.
const docsWrapWidth = 80

// HelpSection represents a help documentation section.
type HelpSection struct {
	Title   string
	Content string
}

// Help represents the help screen model.
type Help struct {
	styles         *styles.Styles
	width          int
	height         int
	sections       []HelpSection
	viewport       viewport.Model
	renderer       *glamour.TermRenderer
	currentSection int
	quitting       bool
	keyMap         HelpKeyMap
}

// HelpKeyMap defines key bindings for the help screen.
type HelpKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Tab      key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultHelpKeyMap returns the default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous section"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next section"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn/f", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "go to bottom"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to catalog"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewHelp creates a new help model.
func NewHelp(styleConfig *styles.Styles) *Help {
	sections := []HelpSection{
		{
			Title: "Browsing",
			Content: `# Browsing the catalog

Atlas fetches the country directory once when it starts and keeps it in
memory for the rest of the session.

| Key | Action |
|-----|--------|
| / | Search by official name |
| esc | Leave the search box |
| s | Toggle ascending/descending order |
| ←/→ or h/l | Previous/next page |
| 1-9 | Jump to a page |
| g/G | First/last page |
| ↑/↓ or j/k | Move between rows |
| enter | Show country details |
| ? | Key reference |
| q | Quit |

Search matches any part of the official name and ignores case. Typing a
new term always starts again from page 1; changing the sort order keeps
the current page.

Values missing from the directory are shown as **NF**.`,
		},
		{
			Title: "Command Line",
			Content: `# Command line

Every view of the catalog is also available without the interface:

` + "```" + `bash
# One page, searched and sorted
atlas list --search land --sort desc --page 2

# Pick search and order interactively
atlas list --interactive

# Machine readable output
atlas list --json
atlas list --yaml
atlas list --plain | cut -f3

# One country, or one field of it
atlas show SWE
atlas show FRA --field name.nativeName.fra.common
` + "```" + `

> Use ` + "`" + `atlas <command> --help` + "`" + ` for every flag.`,
		},
		{
			Title: "Configuration",
			Content: `# Configuration

Atlas reads ` + "`" + `$XDG_CONFIG_HOME/atlas/config.toml` + "`" + ` when it exists.
Command line flags override the file.

` + "```" + `toml
endpoint  = "https://restcountries.com/v3.1/all?fields=name,cca2,cca3,altSpellings,idd,flags,capital,population,region,subregion"
page_size = 25
locale    = "en"
timeout   = "30s"
log_level = "info"
` + "```" + `

Run ` + "`" + `atlas config` + "`" + ` to print the configuration in effect.

## Diagnostics

Fetch failures never interrupt browsing; the catalog just stays empty.
The reason is written to the log file, by default
` + "`" + `$XDG_STATE_HOME/atlas/atlas.log` + "`" + `.`,
		},
	}

	docs := &Help{
		styles:   styleConfig,
		sections: sections,
		viewport: viewport.New(docsWrapWidth, 20),
		keyMap:   DefaultHelpKeyMap(),
	}

	docs.viewport.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleConfig.Primary).
		Padding(1)

	docs.setWrapWidth(docsWrapWidth)

	return docs
}

// Init initializes the help model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Help model.
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	}

	return m, nil
}

// View renders the help screen.
func (m *Help) View() string {
	if m.quitting {
		return GoodbyeMessage
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.viewport.View(),
		"",
		m.renderFooter(),
	)
}

func (m *Help) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true

		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Back):
		return m, func() tea.Msg {
			return NavigateMsg{Screen: CatalogScreen}
		}
	case key.Matches(msg, m.keyMap.Left):
		return m.handleSectionNavigation(-1)
	case key.Matches(msg, m.keyMap.Right), key.Matches(msg, m.keyMap.Tab):
		return m.handleSectionNavigation(1)
	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()

		return m, nil
	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()

		return m, nil
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// handleSectionNavigation moves to the neighbouring section and stops at the ends.
func (m *Help) handleSectionNavigation(direction int) (tea.Model, tea.Cmd) {
	next := m.currentSection + direction
	if next < 0 || next >= len(m.sections) {
		return m, nil
	}

	m.currentSection = next
	m.updateContent()

	return m, nil
}

func (m *Help) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter()) + 2

	m.viewport.Width = msg.Width
	m.viewport.Height = max(msg.Height-chrome, 3)

	// Leave room for the viewport border and padding.
	m.setWrapWidth(min(max(msg.Width-8, 20), docsWrapWidth))

	return m, nil
}

func (m *Help) renderHeader() string {
	tabs := make([]string, 0, len(m.sections))

	for i, section := range m.sections {
		style := m.styles.Unselected.Padding(0, 1).MarginRight(1).Faint(true)
		if i == m.currentSection {
			style = m.styles.Selected.Padding(0, 1).MarginRight(1)
		}

		tabs = append(tabs, style.Render(section.Title))
	}

	return m.styles.Title.Render("Atlas Documentation") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Help) renderFooter() string {
	bindings := []string{
		m.styles.Keybinding("↑↓/jk", "scroll"),
		m.styles.Keybinding("←→/hl", "sections"),
		m.styles.Keybinding("tab", "next section"),
		m.styles.Keybinding("g/G", "top/bottom"),
		m.styles.Keybinding("esc", "back"),
		m.styles.Keybinding("q", "quit"),
	}

	return m.styles.Footer.Render(strings.Join(bindings, "  "))
}

// setWrapWidth rebuilds the markdown renderer for width and re-renders.
func (m *Help) setWrapWidth(width int) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		m.renderer = renderer
	}

	m.updateContent()
}

// updateContent shows the current section. Markdown that glamour cannot
// render is shown as is.
func (m *Help) updateContent() {
	section := m.sections[m.currentSection]

	rendered := section.Content
	if m.renderer != nil {
		if out, err := m.renderer.Render(section.Content); err == nil {
			rendered = out
		}
	}

	m.viewport.SetContent(rendered)
}

// CurrentSection returns the title of the section on screen.
func (m *Help) CurrentSection() string {
	return m.sections[m.currentSection].Title
}

// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/atlas/internal/tui/styles"
)

// HelpModal represents a modal overlay showing all available commands.
type HelpModal struct {
	styles   *styles.Styles
	visible  bool
	commands []HelpModalSection
	keys     helpModalKeys
}

// HelpModalSection groups related commands.
type HelpModalSection struct {
	Title    string
	Commands []HelpModalCommand
}

// HelpModalCommand represents a single keyboard command.
type HelpModalCommand struct {
	Keys        string
	Description string
}

type helpModalKeys struct {
	Help  key.Binding
	Close key.Binding
}

// NewHelpModal creates a hidden help modal for the catalog screen.
func NewHelpModal(styleConfig *styles.Styles) *HelpModal {
	return &HelpModal{
		styles:   styleConfig,
		commands: catalogCommands(),
		keys: helpModalKeys{
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "toggle help"),
			),
			Close: key.NewBinding(
				key.WithKeys(KeyEsc, "q"),
				key.WithHelp("esc", "close help"),
			),
		},
	}
}

// Toggle shows/hides the modal.
func (h *HelpModal) Toggle() {
	h.visible = !h.visible
}

// Show displays the modal.
func (h *HelpModal) Show() {
	h.visible = true
}

// Hide closes the modal.
func (h *HelpModal) Hide() {
	h.visible = false
}

// IsVisible returns whether the modal is shown.
func (h *HelpModal) IsVisible() bool {
	return h.visible
}

// Sections returns the listed command groups.
func (h *HelpModal) Sections() []HelpModalSection {
	return h.commands
}

// Update handles key events for the modal.
func (h *HelpModal) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, h.keys.Help) || key.Matches(msg, h.keys.Close) {
			h.Hide()
		}
	}

	return nil
}

// View renders the help modal.
func (h *HelpModal) View() string {
	if !h.visible {
		return ""
	}

	sectionStyle := lipgloss.NewStyle().
		Foreground(h.styles.Muted).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(h.styles.Warning).
		Width(15)

	var content strings.Builder

	content.WriteString(h.styles.Title.Render("All Commands"))
	content.WriteString("\n")

	for i, section := range h.commands {
		if i > 0 {
			content.WriteString("\n")
		}

		content.WriteString(sectionStyle.Render(section.Title))
		content.WriteString("\n")

		for _, cmd := range section.Commands {
			content.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render(cmd.Keys), cmd.Description))
		}
	}

	content.WriteString("\n")
	content.WriteString(h.styles.MutedText.Render("Press ? or Esc to close"))

	return h.styles.Overlay.MaxWidth(60).Render(content.String())
}

func catalogCommands() []HelpModalSection {
	return []HelpModalSection{
		{
			Title: "Navigation",
			Commands: []HelpModalCommand{
				{"j/k or ↑↓", "Move between rows"},
				{"h/l or ←→", "Previous/next page"},
				{"1-9", "Jump to page"},
				{"g/G", "First/last page"},
			},
		},
		{
			Title: "Catalog",
			Commands: []HelpModalCommand{
				{"/", "Search by official name"},
				{"Esc", "Leave the search box"},
				{"s", "Toggle sort order"},
				{"Enter", "Show country details"},
			},
		},
		{
			Title: "General",
			Commands: []HelpModalCommand{
				{"H", "Documentation"},
				{"?", "Toggle this help"},
				{"q", "Quit application"},
			},
		},
	}
}

// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/atlas/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpSectionNavigation(t *testing.T) {
	help := NewHelp(styles.New())
	help.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, "Browsing", help.CurrentSection())

	help.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Command Line", help.CurrentSection())

	help.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Configuration", help.CurrentSection())

	help.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Configuration", help.CurrentSection(), "stops at the last section")

	help.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Command Line", help.CurrentSection())
}

func TestHelpBackReturnsToCatalog(t *testing.T) {
	help := NewHelp(styles.New())

	_, cmd := help.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Screen: CatalogScreen}, cmd())
}

func TestHelpViewRendersMarkdown(t *testing.T) {
	help := NewHelp(styles.New())
	help.Update(tea.WindowSizeMsg{Width: 100, Height: 60})

	view := help.View()
	assert.Contains(t, view, "Atlas Documentation")
	assert.Contains(t, view, "Browsing")
	assert.Contains(t, view, "Browsing the catalog")
}

func TestHelpResizeRewrapsContent(t *testing.T) {
	t.Parallel()

	help := NewHelp(styles.New())

	assert.NotPanics(t, func() {
		help.Update(tea.WindowSizeMsg{Width: 30, Height: 5})
	})

	assert.Contains(t, help.View(), "Atlas Documentation")

	help.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	help.Update(runes("l"))
	assert.Equal(t, "Command Line", help.CurrentSection())
}

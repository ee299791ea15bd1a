// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/atlas/internal/tui/styles"
)

// FooterAction represents a key-action pair for footer display.
type FooterAction struct {
	Key    string
	Action string
}

// RenderFooter creates a standardized footer with the given actions.
func RenderFooter(styleConfig *styles.Styles, width int, actions []FooterAction, includeHelp bool) string {
	bracketStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styleConfig.Primary)

	actionStyle := lipgloss.NewStyle().
		Foreground(styleConfig.Muted)

	formatAction := func(key, action string) string {
		return bracketStyle.Render("["+key+"]") + " " + actionStyle.Render(action)
	}

	actionStrings := make([]string, 0, len(actions)+1) // +1 for potential help
	for _, action := range actions {
		actionStrings = append(actionStrings, formatAction(action.Key, action.Action))
	}

	if includeHelp {
		helpKey := bracketStyle.Render("[") +
			lipgloss.NewStyle().Bold(true).Foreground(styleConfig.Warning).Render("?") +
			bracketStyle.Render("]")
		actionStrings = append(actionStrings, helpKey+" "+actionStyle.Render("Help"))
	}

	footerText := strings.Join(actionStrings, "   ")

	style := lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color("240"))

	if width > 0 {
		style = style.Width(width)
	}

	return style.Render(footerText)
}

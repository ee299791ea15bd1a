// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import "github.com/janderssonse/atlas/internal/domain"

// NavigateMsg is a message sent to request navigation to a specific screen.
type NavigateMsg struct {
	Screen int
	Data   any // Optional data to pass to the new screen
}

// Screen constants for navigation.
const (
	CatalogScreen = iota
	HelpScreen
)

// Key constants shared by the screens.
const (
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// Common messages.
const (
	GoodbyeMessage = "Goodbye!\n"
	LoadingMessage = "Fetching countries..."
	EmptyMessage   = "No countries to show."
)

// CountriesLoadedMsg carries the result of the one directory fetch.
// A failed fetch arrives as an empty list.
type CountriesLoadedMsg struct {
	Countries []domain.Country
}

// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"strings"
)

// Common domain errors.
var (
	ErrFetchFailure     = errors.New("fetch failure")
	ErrCountryNotFound  = errors.New("country not found")
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrInvalidPage      = errors.New("invalid page")
)

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

// getErrorMatchers returns error patterns and their corresponding info.
func getErrorMatchers() []struct {
	patterns []string
	getInfo  func(string, bool) ErrorInfo
} {
	return []struct {
		patterns []string
		getInfo  func(string, bool) ErrorInfo
	}{
		{
			patterns: []string{"network", "connection", "timeout", "no such host", "deadline exceeded"},
			getInfo: func(_ string, verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Network connection failed",
					Suggestions: []string{"Check your internet connection", "Try again in a few moments"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"status 4", "status 5", "decode", "invalid character", "unexpected end"},
			getInfo: func(_ string, verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "The country directory returned an unusable response",
					Suggestions: []string{"Check the configured endpoint", "Run with --verbose for more details"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"country not found"},
			getInfo: func(code string, verbose bool) ErrorInfo {
				if code != "" {
					return ErrorInfo{
						Message:     "Country '" + code + "' not found",
						Suggestions: []string{"Use a three-letter code such as SWE", "Use 'atlas list --search' to find the code"},
						ShowDetails: verbose,
					}
				}

				return ErrorInfo{
					Message:     "Country not found",
					Suggestions: []string{"Use 'atlas list' to see available countries"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"invalid sort order", "invalid page"},
			getInfo: func(_ string, verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Invalid arguments",
					Suggestions: []string{"Sort order is asc or desc, pages start at 1"},
					ShowDetails: verbose,
				}
			},
		},
	}
}

// GetErrorInfo analyzes an error and returns user-friendly information.
// subject is the country code the operation concerned, if any.
func GetErrorInfo(err error, subject string, verbose bool) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	errStr := strings.ToLower(err.Error())

	for _, matcher := range getErrorMatchers() {
		for _, pattern := range matcher.patterns {
			if strings.Contains(errStr, pattern) {
				return matcher.getInfo(subject, verbose)
			}
		}
	}

	// Generic error - show details in verbose mode
	return ErrorInfo{
		Message:     "Operation failed",
		Suggestions: []string{"Run with --verbose for more details"},
		ShowDetails: verbose,
	}
}

// FormatErrorMessage formats an error for display.
func FormatErrorMessage(err error, subject string, verbose bool) string {
	info := GetErrorInfo(err, subject, verbose)

	var result strings.Builder

	result.WriteString("✗ ")
	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	switch {
	case len(info.Suggestions) > 0 && !verbose:
		// In non-verbose mode, just show the first suggestion inline
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	case len(info.Suggestions) > 0:
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}

// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/janderssonse/atlas/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestExitErrorFormatting tests that ExitError properly formats messages.
func TestExitErrorFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		exitError       *domain.ExitError
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "exit error with underlying error",
			exitError: domain.NewExitError(5, "Lookup failed",
				domain.ErrCountryNotFound),
			expectedCode:    5,
			expectedMessage: "Lookup failed: country not found",
		},
		{
			name:            "exit error without underlying error",
			exitError:       domain.NewExitError(2, "Invalid configuration", nil),
			expectedCode:    2,
			expectedMessage: "Invalid configuration",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expectedMessage, tc.exitError.Error())
			assert.Equal(t, tc.expectedCode, tc.exitError.Code)
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("show: %w", domain.NewExitError(5, "not found", domain.ErrCountryNotFound))

	assert.ErrorIs(t, err, domain.ErrCountryNotFound)

	var exitErr *domain.ExitError
	assert.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 5, exitErr.Code)
}

// TestFormatErrorMessage tests user-friendly error formatting.
func TestFormatErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		err              error
		subject          string
		verbose          bool
		shouldContain    []string
		shouldNotContain []string
	}{
		{
			name:          "network failure",
			err:           fmt.Errorf("%w: dial tcp: lookup restcountries.com: no such host", domain.ErrFetchFailure),
			shouldContain: []string{"Network connection failed", "Check your internet connection"},
		},
		{
			name:             "bad response without verbose",
			err:              fmt.Errorf("%w: unexpected status 503", domain.ErrFetchFailure),
			shouldContain:    []string{"unusable response"},
			shouldNotContain: []string{"Technical details"},
		},
		{
			name:          "bad response verbose",
			err:           fmt.Errorf("%w: unexpected status 503", domain.ErrFetchFailure),
			verbose:       true,
			shouldContain: []string{"Technical details", "unexpected status 503", "Suggestions:"},
		},
		{
			name:          "country not found with code",
			err:           domain.ErrCountryNotFound,
			subject:       "XYZ",
			shouldContain: []string{"Country 'XYZ' not found"},
		},
		{
			name:          "generic error",
			err:           errors.New("something odd"),
			shouldContain: []string{"Operation failed", "--verbose"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			message := domain.FormatErrorMessage(tc.err, tc.subject, tc.verbose)

			for _, want := range tc.shouldContain {
				assert.True(t, strings.Contains(message, want), "expected %q in %q", want, message)
			}

			for _, unwanted := range tc.shouldNotContain {
				assert.NotContains(t, message, unwanted)
			}
		})
	}
}

func TestGetErrorInfo_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.ErrorInfo{}, domain.GetErrorInfo(nil, "", false))
}

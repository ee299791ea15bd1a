// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	cliAdapter "github.com/janderssonse/atlas/internal/adapters/cli"
	"github.com/janderssonse/atlas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseHandlerPicksFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		json, yaml, plain bool
		want              cliAdapter.OutputFormat
	}{
		{"text by default", false, false, false, cliAdapter.TextFormat},
		{"json", true, false, false, cliAdapter.JSONFormat},
		{"yaml", false, true, false, cliAdapter.YAMLFormat},
		{"plain", false, false, true, cliAdapter.PlainFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewBaseHandler(&bytes.Buffer{}, false, tt.json, tt.yaml, tt.plain, false)
			assert.Equal(t, tt.want, handler.GetOutput().Format())
		})
	}
}

func TestBaseHandlerFail(t *testing.T) {
	t.Parallel()

	handler := NewBaseHandler(&bytes.Buffer{}, false, false, false, false, false)

	err := handler.Fail(5, domain.ErrCountryNotFound, "XYZ")

	var exitErr *domain.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 5, exitErr.Code)
	assert.Contains(t, exitErr.Message, "Country 'XYZ' not found")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestBaseHandlerFailVerboseShowsDetails(t *testing.T) {
	t.Parallel()

	handler := NewBaseHandler(&bytes.Buffer{}, true, false, false, false, false)
	cause := fmt.Errorf("%w: dial tcp: connection refused", domain.ErrFetchFailure)

	err := handler.Fail(11, cause, "")

	var exitErr *domain.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, exitErr.Message, "Network connection failed")
	assert.Contains(t, exitErr.Message, "connection refused")
}

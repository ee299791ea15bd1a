// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputStateSetMode(t *testing.T) {
	t.Parallel()

	o := &OutputState{}

	o.SetMode(true, false, true)

	assert.True(t, o.Verbose)
	assert.False(t, o.JSON)
	assert.True(t, o.Plain)
}

func TestOutputState_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		state    OutputState
		write    func(o *OutputState)
		expected string
	}{
		{
			name:     "progress hidden without verbose",
			write:    func(o *OutputState) { o.Progressf("Fetching %s", "directory") },
			expected: "",
		},
		{
			name:     "progress shown with verbose",
			state:    OutputState{Verbose: true},
			write:    func(o *OutputState) { o.Progressf("Fetching %s", "directory") },
			expected: "Fetching directory\n",
		},
		{
			name:     "progress hidden in JSON mode",
			state:    OutputState{Verbose: true, JSON: true},
			write:    func(o *OutputState) { o.Progressf("Fetching") },
			expected: "",
		},
		{
			name:     "success with symbol",
			write:    func(o *OutputState) { o.Successf("Loaded %d countries", 250) },
			expected: "✓ Loaded 250 countries\n",
		},
		{
			name:     "warning in plain mode",
			state:    OutputState{Plain: true},
			write:    func(o *OutputState) { o.Warningf("no matches") },
			expected: "warning: no matches\n",
		},
		{
			name:     "error with symbol",
			write:    func(o *OutputState) { o.Errorf("country %s not found", "XYZ") },
			expected: "✗ country XYZ not found\n",
		},
		{
			name:     "error in plain mode",
			state:    OutputState{Plain: true},
			write:    func(o *OutputState) { o.Errorf("boom") },
			expected: "error: boom\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			state := testCase.state
			state.Err = &buf

			testCase.write(&state)

			assert.Equal(t, testCase.expected, buf.String())
		})
	}
}

// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/janderssonse/atlas/internal/adapters/restcountries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, restcountries.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
endpoint = "http://localhost:8080/all"
page_size = 10
locale = "sv"
timeout = "5s"
log_level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/all", cfg.Endpoint)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "debug", cfg.LogLevel)

	tag, err := cfg.Language()
	require.NoError(t, err)
	assert.Equal(t, "sv", tag.String())

	timeout, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", `page_size = `},
		{"negative page size", `page_size = -1`},
		{"bad locale", `locale = "not a locale tag"`},
		{"bad timeout", `timeout = "soon"`},
		{"negative timeout", `timeout = "-1s"`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, testCase.content))
			require.Error(t, err)
		})
	}
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.PageSize = 40

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size = 40")

	loaded, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPathUtils_GetXDGConfigHome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/custom/config", GetXDGConfigHomeWithEnv("/custom/config"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config"), GetXDGConfigHomeWithEnv(""))
}

func TestPathUtils_GetXDGStateHome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/custom/state", GetXDGStateHomeWithEnv("/custom/state"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "state"), GetXDGStateHomeWithEnv(""))
}

func TestDefaultPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "config.toml", filepath.Base(DefaultConfigPath()))
	assert.Equal(t, "atlas.log", filepath.Base(DefaultLogPath()))
	assert.Equal(t, "atlas", filepath.Base(filepath.Dir(DefaultLogPath())))
}

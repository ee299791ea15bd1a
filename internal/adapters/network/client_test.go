// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient(30*time.Second, "atlas-test")

	assert.NotNil(t, client)
	assert.Equal(t, 30*time.Second, client.client.Timeout)

	// Verify transport is configured
	transport, ok := client.client.Transport.(*http.Transport)
	assert.True(t, ok)
	assert.NotNil(t, transport.Proxy)
}

func TestGetJSON(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   bool
		wantNames []string
	}{
		{
			name:      "valid array",
			status:    http.StatusOK,
			body:      `[{"name":"a"},{"name":"b"}]`,
			wantNames: []string{"a", "b"},
		},
		{
			name:    "server error",
			status:  http.StatusServiceUnavailable,
			body:    `{"message":"down"}`,
			wantErr: true,
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `[{"name":`,
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.Equal(t, "atlas-test", r.Header.Get("User-Agent"))
				w.WriteHeader(testCase.status)
				_, _ = w.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := NewHTTPClientWith(server.Client(), "atlas-test")
			defer client.CloseIdleConnections()

			var got []struct {
				Name string `json:"name"`
			}

			err := client.GetJSON(context.Background(), server.URL, &got)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, item := range got {
				names = append(names, item.Name)
			}

			assert.Equal(t, testCase.wantNames, names)
		})
	}
}

func TestGetJSON_UnexpectedStatusIsWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPClientWith(server.Client(), "")
	defer client.CloseIdleConnections()

	var target []any

	err := client.GetJSON(context.Background(), server.URL, &target)
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "404")
}

func TestGetJSON_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewHTTPClientWith(server.Client(), "")
	defer client.CloseIdleConnections()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var target []any

	err := client.GetJSON(ctx, server.URL, &target)
	require.ErrorIs(t, err, context.Canceled)
}

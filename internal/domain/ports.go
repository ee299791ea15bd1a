// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"context"
)

// CountrySource defines the interface for loading the country directory.
// Implemented by adapters for the remote directory service.
type CountrySource interface {
	// FetchAll returns every country record the directory publishes.
	// Failures wrap ErrFetchFailure.
	FetchAll(ctx context.Context) ([]Country, error)
}

// NetworkClient defines the interface for network operations.
type NetworkClient interface {
	// GetJSON issues a GET request and decodes the JSON body into target.
	GetJSON(ctx context.Context, url string, target any) error
}

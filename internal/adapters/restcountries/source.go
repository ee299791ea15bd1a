// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package restcountries adapts the REST Countries directory to domain.CountrySource.
package restcountries

import (
	"context"
	"fmt"

	"github.com/janderssonse/atlas/internal/domain"
)

// DefaultEndpoint lists every country with only the fields the catalog consumes.
// The "all" endpoint rejects requests without a fields filter.
const DefaultEndpoint = "https://restcountries.com/v3.1/all?fields=" +
	"name,cca2,cca3,altSpellings,idd,flags,capital,population,region,subregion"

// Source implements domain.CountrySource.
type Source struct {
	client   domain.NetworkClient
	endpoint string
}

// NewSource creates a Source reading from endpoint; an empty endpoint means DefaultEndpoint.
func NewSource(client domain.NetworkClient, endpoint string) *Source {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Source{client: client, endpoint: endpoint}
}

// Endpoint returns the URL the source fetches.
func (s *Source) Endpoint() string {
	return s.endpoint
}

// FetchAll performs a single GET and decodes the JSON array of countries.
func (s *Source) FetchAll(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country

	if err := s.client.GetJSON(ctx, s.endpoint, &countries); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailure, err)
	}

	return countries, nil
}

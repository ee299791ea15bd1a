// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package application wires the domain ports into the operations the CLI and TUI use.
package application

import (
	"context"
	"sync"
	"time"

	"github.com/janderssonse/atlas/internal/domain"
	"go.uber.org/zap"
)

// CatalogService owns the single fetch of the country directory.
type CatalogService struct {
	source domain.CountrySource
	logger *zap.Logger

	once      sync.Once
	countries []domain.Country
	err       error
}

// NewCatalogService creates a catalog service. A nil logger discards logs.
func NewCatalogService(source domain.CountrySource, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CatalogService{
		source: source,
		logger: logger,
	}
}

// Load fetches the directory on the first call and returns the memoized
// records afterwards. A failed fetch is logged and yields an empty list;
// it is neither retried nor reported to the caller.
func (s *CatalogService) Load(ctx context.Context) []domain.Country {
	s.once.Do(func() {
		started := time.Now()

		countries, err := s.source.FetchAll(ctx)
		if err != nil {
			s.logger.Error("Failed to load country directory",
				zap.Error(err),
				zap.Duration("elapsed", time.Since(started)))

			s.countries = []domain.Country{}
			s.err = err

			return
		}

		s.logger.Info("Loaded country directory",
			zap.Int("countries", len(countries)),
			zap.Duration("elapsed", time.Since(started)))

		s.countries = countries
	})

	return s.countries
}

// Err returns why the fetch failed, or nil. It is meaningful once Load has
// returned. The interactive catalog ignores it; command line callers use it
// to pick an exit code.
func (s *CatalogService) Err() error {
	return s.err
}

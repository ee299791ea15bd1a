// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/janderssonse/atlas/internal/catalog"
	"github.com/janderssonse/atlas/internal/domain"
	"github.com/janderssonse/atlas/internal/tui/styles"
	"golang.org/x/text/language"
)

// StaticLoader serves a fixed list of countries without network access.
type StaticLoader struct {
	Countries []domain.Country
	calls     atomic.Int32
}

// Load returns the fixed list.
func (l *StaticLoader) Load(_ context.Context) []domain.Country {
	l.calls.Add(1)

	return l.Countries
}

// Calls returns how many times Load ran.
func (l *StaticLoader) Calls() int {
	return int(l.calls.Load())
}

// TestCountries builds count records named "Country 001", "Country 002", ...
// with three-letter codes C001, C002, ...
func TestCountries(count int) []domain.Country {
	countries := make([]domain.Country, 0, count)

	for i := 1; i <= count; i++ {
		countries = append(countries, domain.Country{
			OfficialName:     fmt.Sprintf("Country %03d", i),
			ThreeLetterCode:  fmt.Sprintf("C%03d", i),
			TwoLetterCode:    "ZZ",
			AlternativeNames: []string{fmt.Sprintf("C%d", i)},
			CallingCodeRoot:  "+9",
		})
	}

	return countries
}

// NewTestCatalog creates a sized catalog backed by a StaticLoader that has
// already delivered its countries.
func NewTestCatalog(countries []domain.Country) (*Catalog, *StaticLoader) {
	loader := &StaticLoader{Countries: countries}
	model := NewCatalog(context.Background(), styles.New(), loader,
		catalog.NewPipeline(catalog.DefaultPageSize, language.English), language.English)

	model.Update(loaderResult(loader))

	return model, loader
}

func loaderResult(loader *StaticLoader) CountriesLoadedMsg {
	return CountriesLoadedMsg{Countries: loader.Load(context.Background())}
}

// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog derives the displayed page of countries from the fetched
// records and the view state: filter, sort, paginate.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/janderssonse/atlas/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize is the number of rows on one page.
const DefaultPageSize = 25

// View is one derived page.
type View struct {
	Rows       []domain.Country
	Page       int // clamped to [1, max(TotalPages, 1)]
	TotalPages int
	Matches    int
	PageSize   int
	Order      SortOrder
}

// Empty reports whether the page has no rows.
func (v View) Empty() bool {
	return len(v.Rows) == 0
}

// Pipeline filters, sorts and paginates country records.
// The input slice is never reordered or modified.
type Pipeline struct {
	pageSize int
	language language.Tag
}

// NewPipeline creates a pipeline. A non-positive pageSize falls back to DefaultPageSize.
func NewPipeline(pageSize int, lang language.Tag) *Pipeline {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Pipeline{pageSize: pageSize, language: lang}
}

// PageSize returns the configured page size.
func (p *Pipeline) PageSize() int {
	return p.pageSize
}

// Derive computes the page described by state.
func (p *Pipeline) Derive(records []domain.Country, state ViewState) View {
	filtered := p.Filter(records, state.SearchTerm)
	sorted := p.Sort(filtered, state.Order)
	rows, page, total := p.Paginate(sorted, state.Page)

	return View{
		Rows:       rows,
		Page:       page,
		TotalPages: total,
		Matches:    len(sorted),
		PageSize:   p.pageSize,
		Order:      state.Order,
	}
}

// Filter keeps the records whose case-folded official name contains the
// case-folded term. An empty term keeps everything. The result is a new slice.
func (p *Pipeline) Filter(records []domain.Country, term string) []domain.Country {
	folder := cases.Fold()
	needle := folder.String(term)

	matches := make([]domain.Country, 0, len(records))

	for _, record := range records {
		if needle == "" || strings.Contains(folder.String(record.OfficialName), needle) {
			matches = append(matches, record)
		}
	}

	return matches
}

// Sort returns a sorted copy ordered by collated, case-folded official name.
// Equal names fall back to the three-letter code. Descending is the reversed
// ascending order, so records equal on both keys also swap places.
func (p *Pipeline) Sort(records []domain.Country, order SortOrder) []domain.Country {
	collator := collate.New(p.language)
	folder := cases.Fold()

	keyed := make([]sortKey, len(records))
	for i, record := range records {
		keyed[i] = sortKey{name: folder.String(record.OfficialName), record: record}
	}

	slices.SortStableFunc(keyed, func(a, b sortKey) int {
		if result := collator.CompareString(a.name, b.name); result != 0 {
			return result
		}

		return cmp.Compare(a.record.ThreeLetterCode, b.record.ThreeLetterCode)
	})

	if order == Descending {
		slices.Reverse(keyed)
	}

	sorted := make([]domain.Country, len(keyed))
	for i, key := range keyed {
		sorted[i] = key.record
	}

	return sorted
}

// Paginate returns the rows of page together with the clamped page number
// and the page count. The page count is ceil(len(records)/pageSize).
func (p *Pipeline) Paginate(records []domain.Country, page int) ([]domain.Country, int, int) {
	total := p.TotalPages(len(records))
	page = min(max(page, 1), max(total, 1))

	start := (page - 1) * p.pageSize
	end := min(start+p.pageSize, len(records))

	if start >= end {
		return []domain.Country{}, page, total
	}

	return slices.Clone(records[start:end]), page, total
}

// TotalPages returns the page count for count matching records.
func (p *Pipeline) TotalPages(count int) int {
	return (count + p.pageSize - 1) / p.pageSize
}

// FindByCode returns the first record whose two- or three-letter code equals code,
// compared case-insensitively.
func FindByCode(records []domain.Country, code string) (domain.Country, bool) {
	if code == "" {
		return domain.Country{}, false
	}

	for _, record := range records {
		if strings.EqualFold(record.ThreeLetterCode, code) || strings.EqualFold(record.TwoLetterCode, code) {
			return record, true
		}
	}

	return domain.Country{}, false
}

type sortKey struct {
	name   string
	record domain.Country
}

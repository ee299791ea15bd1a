// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"fmt"
	"strings"

	"github.com/janderssonse/atlas/internal/domain"
)

// SortOrder is the direction of the official-name sort.
type SortOrder int

// Sort orders.
const (
	Ascending SortOrder = iota
	Descending
)

// String returns "asc" or "desc".
func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}

	return "asc"
}

// Indicator returns the arrow shown next to the sortable column.
func (o SortOrder) Indicator() string {
	if o == Descending {
		return "▼"
	}

	return "▲"
}

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == Descending {
		return Ascending
	}

	return Descending
}

// ParseSortOrder accepts asc/ascending and desc/descending, case-insensitively.
func ParseSortOrder(value string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", domain.ErrInvalidSortOrder, value)
	}
}

// ViewState is the UI-only state: what the user typed, picked and opened.
// It never holds the fetched records themselves.
type ViewState struct {
	SearchTerm    string
	Order         SortOrder
	Page          int // 1-indexed
	Selected      *domain.Country
	DetailVisible bool
}

// NewViewState returns the initial state: no search, ascending, first page, overlay closed.
func NewViewState() ViewState {
	return ViewState{
		Order: Ascending,
		Page:  1,
	}
}

// SetSearchTerm replaces the search term and always returns to page 1.
func (s *ViewState) SetSearchTerm(term string) {
	s.SearchTerm = term
	s.Page = 1
}

// ToggleSort flips the sort order. The page is kept.
func (s *ViewState) ToggleSort() {
	s.Order = s.Order.Toggle()
}

// SetPage moves to page; values below 1 become 1.
func (s *ViewState) SetPage(page int) {
	s.Page = max(page, 1)
}

// NextPage advances one page unless already on the last of totalPages.
func (s *ViewState) NextPage(totalPages int) {
	if s.Page < totalPages {
		s.Page++
	}
}

// PrevPage goes back one page, stopping at page 1.
func (s *ViewState) PrevPage() {
	if s.Page > 1 {
		s.Page--
	}
}

// Select opens the detail overlay for country.
func (s *ViewState) Select(country domain.Country) {
	s.Selected = &country
	s.DetailVisible = true
}

// CloseDetail hides the overlay. The selection is kept.
func (s *ViewState) CloseDetail() {
	s.DetailVisible = false
}

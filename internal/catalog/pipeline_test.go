// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/janderssonse/atlas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func country(official, cca3 string) domain.Country {
	return domain.Country{OfficialName: official, ThreeLetterCode: cca3}
}

func names(records []domain.Country) []string {
	result := make([]string, 0, len(records))
	for _, record := range records {
		result = append(result, record.OfficialName)
	}

	return result
}

// generated returns n records named "Generated Territory 000" and onwards.
func generated(n int) []domain.Country {
	records := make([]domain.Country, 0, n)
	for i := range n {
		records = append(records, country(fmt.Sprintf("Generated Territory %03d", i), fmt.Sprintf("G%02d", i%100)))
	}

	return records
}

func sampleRecords() []domain.Country {
	return []domain.Country{
		country("Kingdom of Sweden", "SWE"),
		country("French Republic", "FRA"),
		country("Republic of Finland", "FIN"),
		country("Åland Islands", "ALA"),
		country("Kingdom of Norway", "NOR"),
		country("Republic of Iceland", "ISL"),
		country("Kingdom of Denmark", "DNK"),
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)
	records := sampleRecords()

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{"empty term matches all", "", names(records)},
		{"case insensitive", "KINGDOM", []string{"Kingdom of Sweden", "Kingdom of Norway", "Kingdom of Denmark"}},
		{"substring in middle", "public of", []string{"Republic of Finland", "Republic of Iceland"}},
		{"non-ascii folding", "åLAND", []string{"Åland Islands"}},
		{"no match", "atlantis", []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := names(pipeline.Filter(records, testCase.term))
			if diff := cmp.Diff(testCase.expected, got); diff != "" {
				t.Errorf("Filter(%q) mismatch (-want +got):\n%s", testCase.term, diff)
			}
		})
	}
}

func TestFilter_EveryResultContainsTerm(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)
	records := append(sampleRecords(), generated(60)...)

	for _, term := range []string{"of", "REP", "territory 01", "k", "x", "Den"} {
		for _, record := range pipeline.Filter(records, term) {
			assert.True(t, strings.Contains(strings.ToLower(record.OfficialName), strings.ToLower(term)),
				"%q should contain %q", record.OfficialName, term)
		}
	}
}

func TestSort_LocaleAware(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)
	records := []domain.Country{
		country("Zambia", "ZMB"),
		country("Åland Islands", "ALA"),
		country("argentine Republic", "ARG"),
		country("Bolivarian Republic of Venezuela", "VEN"),
	}

	got := names(pipeline.Sort(records, Ascending))
	expected := []string{"Åland Islands", "argentine Republic", "Bolivarian Republic of Venezuela", "Zambia"}

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ascending sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_DescendingIsExactReverse(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)
	records := append(sampleRecords(), country("Kingdom of Sweden", "SWX"), country("kingdom of sweden", "SWA"))

	ascending := pipeline.Sort(records, Ascending)
	descending := pipeline.Sort(records, Descending)

	reversed := slices.Clone(descending)
	slices.Reverse(reversed)

	if diff := cmp.Diff(ascending, reversed, cmp.AllowUnexported(domain.Country{})); diff != "" {
		t.Errorf("descending is not the reverse of ascending (-asc +reversed desc):\n%s", diff)
	}
}

func TestSort_DescendingReversesFullTies(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)

	records := []domain.Country{
		{OfficialName: "Same", ThreeLetterCode: "AAA", Capitals: []string{"first"}},
		{OfficialName: "same", ThreeLetterCode: "AAA", Capitals: []string{"second"}},
		{OfficialName: "Same", ThreeLetterCode: "AAA", Capitals: []string{"third"}},
	}

	capitals := func(sorted []domain.Country) []string {
		result := make([]string, 0, len(sorted))
		for _, record := range sorted {
			result = append(result, record.Capital())
		}

		return result
	}

	assert.Equal(t, []string{"first", "second", "third"}, capitals(pipeline.Sort(records, Ascending)))
	assert.Equal(t, []string{"third", "second", "first"}, capitals(pipeline.Sort(records, Descending)))
}

func TestSort_ToggleTwiceRestoresOrder(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)
	records := sampleRecords()
	state := NewViewState()

	before := names(pipeline.Derive(records, state).Rows)

	state.ToggleSort()
	toggled := names(pipeline.Derive(records, state).Rows)

	state.ToggleSort()
	after := names(pipeline.Derive(records, state).Rows)

	assert.Equal(t, before, after)
	assert.NotEqual(t, before, toggled)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)
	records := sampleRecords()
	original := names(records)

	_ = pipeline.Derive(records, ViewState{Order: Descending, Page: 1, SearchTerm: "of"})
	_ = pipeline.Sort(records, Ascending)

	assert.Equal(t, original, names(records))
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)
	records := generated(60)

	tests := []struct {
		name         string
		page         int
		expectedPage int
		expectedRows int
		firstName    string
	}{
		{"first page", 1, 1, 25, "Generated Territory 000"},
		{"second page", 2, 2, 25, "Generated Territory 025"},
		{"last partial page", 3, 3, 10, "Generated Territory 050"},
		{"beyond last is clamped", 9, 3, 10, "Generated Territory 050"},
		{"below first is clamped", 0, 1, 25, "Generated Territory 000"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			rows, page, total := pipeline.Paginate(records, testCase.page)

			assert.Equal(t, 3, total)
			assert.Equal(t, testCase.expectedPage, page)
			require.Len(t, rows, testCase.expectedRows)
			assert.Equal(t, testCase.firstName, rows[0].OfficialName)
		})
	}
}

func TestPaginate_RowCountIsMinOfPageSizeAndRemaining(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)

	for _, count := range []int{0, 1, 24, 25, 26, 49, 50, 51, 250, 251} {
		records := generated(count)
		total := pipeline.TotalPages(count)

		assert.Equal(t, (count+24)/25, total, "page count for %d records", count)

		for page := 1; page <= total; page++ {
			rows, _, _ := pipeline.Paginate(records, page)
			remaining := count - (page-1)*25
			assert.Len(t, rows, min(25, remaining), "page %d of %d records", page, count)
		}
	}
}

func TestPaginate_Empty(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)

	rows, page, total := pipeline.Paginate(nil, 4)

	assert.Empty(t, rows)
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, total)
}

func TestNewPipeline_PageSizeFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultPageSize, NewPipeline(0, language.English).PageSize())
	assert.Equal(t, DefaultPageSize, NewPipeline(-3, language.English).PageSize())
	assert.Equal(t, 10, NewPipeline(10, language.English).PageSize())
}

func TestDerive_Scenarios(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(DefaultPageSize, language.English)
	records := append(generated(247),
		country("Plurinational State of Bolivia", "BOL"),
		country("Republic of Bolivia Test", "BOT"),
		country("Bolivian Highlands", "BOH"),
	)
	require.Len(t, records, 250)

	t.Run("empty search shows ten pages of 25", func(t *testing.T) {
		t.Parallel()

		view := pipeline.Derive(records, NewViewState())

		assert.Equal(t, 10, view.TotalPages)
		assert.Equal(t, 250, view.Matches)
		assert.Len(t, view.Rows, 25)
		assert.Equal(t, 1, view.Page)
	})

	t.Run("search matching three records shows one page", func(t *testing.T) {
		t.Parallel()

		state := NewViewState()
		state.SetSearchTerm("bolivia")

		view := pipeline.Derive(records, state)

		assert.Equal(t, 1, view.TotalPages)
		assert.Equal(t, 3, view.Matches)
		assert.Len(t, view.Rows, 3)
	})

	t.Run("shrinking filter clamps page", func(t *testing.T) {
		t.Parallel()

		state := NewViewState()
		state.SetPage(7)
		state.SearchTerm = "bolivia" // bypasses the page reset on purpose

		view := pipeline.Derive(records, state)

		assert.Equal(t, 1, view.Page)
		assert.Len(t, view.Rows, 3)
	})

	t.Run("no records", func(t *testing.T) {
		t.Parallel()

		view := pipeline.Derive(nil, NewViewState())

		assert.True(t, view.Empty())
		assert.Equal(t, 0, view.TotalPages)
		assert.Equal(t, 0, view.Matches)
	})
}

func TestFindByCode(t *testing.T) {
	t.Parallel()

	records := []domain.Country{
		{OfficialName: "Kingdom of Sweden", TwoLetterCode: "SE", ThreeLetterCode: "SWE"},
		{OfficialName: "French Republic", TwoLetterCode: "FR", ThreeLetterCode: "FRA"},
	}

	found, ok := FindByCode(records, "swe")
	require.True(t, ok)
	assert.Equal(t, "Kingdom of Sweden", found.OfficialName)

	found, ok = FindByCode(records, "FR")
	require.True(t, ok)
	assert.Equal(t, "French Republic", found.OfficialName)

	_, ok = FindByCode(records, "XYZ")
	assert.False(t, ok)

	_, ok = FindByCode(records, "")
	assert.False(t, ok)
}

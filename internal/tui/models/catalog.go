// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/atlas/internal/catalog"
	"github.com/janderssonse/atlas/internal/domain"
	"github.com/janderssonse/atlas/internal/tui/styles"
	"golang.org/x/text/language"
)

// CatalogTitle is shown above the search box.
const CatalogTitle = "Country Catalog"

// SearchPlaceholder is shown in the empty search box.
const SearchPlaceholder = "Search by Country Name"

// Column titles of the catalog table.
const (
	ColumnFlag         = "Flag"
	ColumnName         = "Country Name"
	ColumnTwoLetter    = "2 character Country Code"
	ColumnThreeLetter  = "3 character Country Code"
	ColumnNativeName   = "Native Country Name"
	ColumnAlternatives = "Alternative Country Name"
	ColumnCallingCodes = "Country Calling Codes"
)

// Vertical space taken by everything around the table.
const chromeHeight = 12

// CountryLoader provides the country directory. Failures yield an empty list.
type CountryLoader interface {
	Load(ctx context.Context) []domain.Country
}

// Catalog is the country table screen.
//
//nolint:containedctx // the fetch runs under the program context
type Catalog struct {
	ctx      context.Context
	styles   *styles.Styles
	loader   CountryLoader
	pipeline *catalog.Pipeline
	keyMap   CatalogKeyMap

	records []domain.Country
	state   catalog.ViewState
	view    catalog.View
	loading bool

	search    textinput.Model
	table     table.Model
	spinner   spinner.Model
	detail    *DetailOverlay
	helpModal *HelpModal

	width  int
	height int
}

// NewCatalog creates the catalog screen. Nothing is fetched until Init.
func NewCatalog(ctx context.Context, styleConfig *styles.Styles, loader CountryLoader, pipeline *catalog.Pipeline, lang language.Tag) *Catalog {
	if ctx == nil {
		ctx = context.Background()
	}

	search := textinput.New()
	search.Placeholder = SearchPlaceholder
	search.Prompt = "🔍 "
	search.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleConfig.PrimaryText

	tbl := table.New(
		table.WithFocused(true),
		table.WithHeight(pipeline.PageSize()+1),
	)
	tbl.SetStyles(styleConfig.Table())

	model := &Catalog{
		ctx:       ctx,
		styles:    styleConfig,
		loader:    loader,
		pipeline:  pipeline,
		keyMap:    DefaultCatalogKeyMap(),
		state:     catalog.NewViewState(),
		loading:   true,
		search:    search,
		table:     tbl,
		spinner:   spin,
		detail:    NewDetailOverlay(styleConfig, lang),
		helpModal: NewHelpModal(styleConfig),
	}

	model.table.SetColumns(model.columns())

	return model
}

// Init starts the spinner and the one directory fetch.
func (m *Catalog) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCountries())
}

// Update handles messages for the catalog screen.
func (m *Catalog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CountriesLoadedMsg:
		m.records = msg.Countries
		m.loading = false
		m.refresh()

		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View renders the catalog, or the open overlay on top of it.
func (m *Catalog) View() string {
	if m.helpModal.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.helpModal.View())
	}

	if m.detail.IsVisible() {
		return m.detail.Place(m.width, m.height)
	}

	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render(CatalogTitle))
	builder.WriteString("\n")
	builder.WriteString(m.renderSearch())
	builder.WriteString("\n\n")

	switch {
	case m.loading:
		builder.WriteString(m.spinner.View() + " " + m.styles.MutedText.Render(LoadingMessage))
	case m.view.Empty():
		builder.WriteString(m.styles.MutedText.Render(EmptyMessage))
	default:
		builder.WriteString(m.table.View())
	}

	builder.WriteString("\n\n")
	builder.WriteString(m.renderPageSelector())
	builder.WriteString("\n")
	builder.WriteString(m.renderStatus())
	builder.WriteString("\n")
	builder.WriteString(m.renderFooter())

	return m.styles.Container.Render(builder.String())
}

// CapturesInput reports whether plain keys belong to this screen right now,
// so the application must not treat them as global shortcuts.
func (m *Catalog) CapturesInput() bool {
	return m.search.Focused() || m.detail.IsVisible() || m.helpModal.IsVisible()
}

// State returns the current view state.
func (m *Catalog) State() catalog.ViewState {
	return m.state
}

// CurrentView returns the derived page shown in the table.
func (m *Catalog) CurrentView() catalog.View {
	return m.view
}

// Loading reports whether the directory fetch is outstanding.
func (m *Catalog) Loading() bool {
	return m.loading
}

// Detail returns the detail overlay.
func (m *Catalog) Detail() *DetailOverlay {
	return m.detail
}

// GetNavigationHints returns the key hints shown in the footer.
func (m *Catalog) GetNavigationHints() []string {
	if m.search.Focused() {
		return []string{"[Esc] Done", "[Enter] Done"}
	}

	return []string{"[/] Search", "[s] Sort", "[←→] Page", "[Enter] Details", "[H] Docs", "[q] Quit"}
}

func (m *Catalog) loadCountries() tea.Cmd {
	ctx := m.ctx
	loader := m.loader

	return func() tea.Msg {
		countries := loader.Load(ctx)
		if ctx.Err() != nil {
			return nil
		}

		return CountriesLoadedMsg{Countries: countries}
	}
}

func (m *Catalog) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.helpModal.IsVisible() {
		return m, m.helpModal.Update(msg)
	}

	if m.detail.IsVisible() {
		if key.Matches(msg, m.keyMap.Close) {
			m.closeDetail()
		}

		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Search):
		m.search.Focus()

		return m, textinput.Blink
	case key.Matches(msg, m.keyMap.Sort):
		m.state.ToggleSort()
		m.table.SetColumns(m.columns())
		m.refresh()
	case key.Matches(msg, m.keyMap.PrevPage):
		m.state.PrevPage()
		m.refresh()
	case key.Matches(msg, m.keyMap.NextPage):
		m.state.NextPage(m.view.TotalPages)
		m.refresh()
	case key.Matches(msg, m.keyMap.FirstPage):
		m.state.SetPage(1)
		m.refresh()
	case key.Matches(msg, m.keyMap.LastPage):
		m.state.SetPage(m.view.TotalPages)
		m.refresh()
	case key.Matches(msg, m.keyMap.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keyMap.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keyMap.Open):
		m.openDetail()
	case key.Matches(msg, m.keyMap.Help):
		m.helpModal.Show()
	case key.Matches(msg, m.keyMap.Docs):
		return m, func() tea.Msg {
			return NavigateMsg{Screen: HelpScreen}
		}
	default:
		m.jumpToPage(msg.String())
	}

	return m, nil
}

func (m *Catalog) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc, KeyEnter:
		m.search.Blur()

		return m, nil
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)

	if value := m.search.Value(); value != m.state.SearchTerm {
		m.state.SetSearchTerm(value)
		m.refresh()
	}

	return m, cmd
}

// jumpToPage handles the digit keys 1-9.
func (m *Catalog) jumpToPage(keyName string) {
	page, err := strconv.Atoi(keyName)
	if err != nil || page < 1 || page > m.view.TotalPages {
		return
	}

	m.state.SetPage(page)
	m.refresh()
}

func (m *Catalog) openDetail() {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.view.Rows) {
		return
	}

	country := m.view.Rows[cursor]
	m.state.Select(country)
	m.detail.Show(country)
}

func (m *Catalog) closeDetail() {
	m.state.CloseDetail()
	m.detail.Hide()
}

// refresh derives the page from the records and writes the clamped page back.
func (m *Catalog) refresh() {
	m.view = m.pipeline.Derive(m.records, m.state)
	m.state.Page = m.view.Page

	rows := make([]table.Row, 0, len(m.view.Rows))
	for _, country := range m.view.Rows {
		rows = append(rows, CountryRow(country))
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// CountryRow builds the table cells for one record.
func CountryRow(country domain.Country) table.Row {
	return table.Row{
		country.FlagSymbol(),
		country.Lookup("name.official"),
		country.Lookup("cca2"),
		country.Lookup("cca3"),
		country.NativeName(domain.NativeNameLanguage),
		country.AlternativeNamesText(),
		country.CallingCode(),
	}
}

func (m *Catalog) columns() []table.Column {
	widths := columnWidths(m.width)

	return []table.Column{
		{Title: ColumnFlag, Width: widths[0]},
		{Title: ColumnName + " " + m.state.Order.Indicator(), Width: widths[1]},
		{Title: ColumnTwoLetter, Width: widths[2]},
		{Title: ColumnThreeLetter, Width: widths[3]},
		{Title: ColumnNativeName, Width: widths[4]},
		{Title: ColumnAlternatives, Width: widths[5]},
		{Title: ColumnCallingCodes, Width: widths[6]},
	}
}

// columnWidths spreads any width beyond the minimum over the name columns.
func columnWidths(width int) [7]int {
	widths := [7]int{4, 30, 10, 10, 22, 26, 12}

	used := 0
	for _, w := range widths {
		used += w + 2 // cell padding
	}

	if extra := width - used - 4; extra > 0 {
		widths[1] += extra / 2
		widths[5] += extra - extra/2
	}

	return widths
}

func (m *Catalog) resize() {
	m.table.SetColumns(m.columns())

	if m.width > 0 {
		m.table.SetWidth(m.width - 4)
		m.search.Width = min(m.width-8, 60)
	}

	if m.height > 0 {
		m.table.SetHeight(max(min(m.height-chromeHeight, m.pipeline.PageSize()+1), 3))
	}
}

func (m *Catalog) renderSearch() string {
	if m.search.Focused() {
		return m.styles.SearchBoxFocused.Render(m.search.View())
	}

	return m.styles.SearchBox.Render(m.search.View())
}

// renderPageSelector shows one control per page, the current one highlighted.
func (m *Catalog) renderPageSelector() string {
	if m.view.TotalPages == 0 {
		return ""
	}

	controls := make([]string, 0, m.view.TotalPages)

	for page := 1; page <= m.view.TotalPages; page++ {
		label := strconv.Itoa(page)
		if page == m.view.Page {
			controls = append(controls, m.styles.PageCurrent.Render(label))
		} else {
			controls = append(controls, m.styles.PageOther.Render(label))
		}
	}

	selector := strings.Join(controls, " ")
	if m.width > 0 {
		selector = lipgloss.NewStyle().Width(m.width - 4).Render(selector)
	}

	return selector
}

func (m *Catalog) renderStatus() string {
	if m.loading {
		return ""
	}

	status := fmt.Sprintf("Page %d of %d · %d matches · %s", m.view.Page, max(m.view.TotalPages, 1), m.view.Matches, m.state.Order)
	if m.state.SearchTerm != "" {
		status += fmt.Sprintf(" · search %q", m.state.SearchTerm)
	}

	return m.styles.MutedText.Render(status)
}

func (m *Catalog) renderFooter() string {
	hints := m.GetNavigationHints()
	actions := make([]FooterAction, 0, len(hints))

	for _, hint := range hints {
		keyName, action, _ := strings.Cut(strings.TrimPrefix(hint, "["), "] ")
		actions = append(actions, FooterAction{Key: keyName, Action: action})
	}

	return RenderFooter(m.styles, m.width, actions, !m.search.Focused())
}

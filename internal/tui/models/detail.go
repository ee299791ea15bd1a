// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/atlas/internal/domain"
	"github.com/janderssonse/atlas/internal/tui/styles"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DetailOverlay shows one country on top of the catalog until closed.
type DetailOverlay struct {
	styles  *styles.Styles
	printer *message.Printer
	country *domain.Country
	visible bool
}

// NewDetailOverlay creates a hidden overlay. Numbers are formatted for lang.
func NewDetailOverlay(styleConfig *styles.Styles, lang language.Tag) *DetailOverlay {
	return &DetailOverlay{
		styles:  styleConfig,
		printer: message.NewPrinter(lang),
	}
}

// Show binds the overlay to country and makes it visible.
func (d *DetailOverlay) Show(country domain.Country) {
	d.country = &country
	d.visible = true
}

// Hide closes the overlay. The bound country is kept.
func (d *DetailOverlay) Hide() {
	d.visible = false
}

// IsVisible returns whether the overlay is shown.
func (d *DetailOverlay) IsVisible() bool {
	return d.visible
}

// Country returns the bound country, if any.
func (d *DetailOverlay) Country() *domain.Country {
	return d.country
}

// Fields returns the label/value pairs the overlay displays.
func (d *DetailOverlay) Fields() [][2]string {
	if d.country == nil {
		return nil
	}

	country := d.country

	population := domain.Placeholder
	if value, ok := country.PopulationValue(); ok {
		population = d.printer.Sprintf("%d", value)
	}

	return [][2]string{
		{"Capital", country.Capital()},
		{"Population", population},
		{"Region", country.RegionName()},
		{"Subregion", country.SubregionName()},
		{"Codes", country.Lookup("cca2") + " / " + country.Lookup("cca3")},
		{"Calling", strings.Join(orPlaceholderList(country.CallingCodes()), ", ")},
	}
}

// View renders the overlay card, or "" when hidden.
func (d *DetailOverlay) View() string {
	if !d.visible || d.country == nil {
		return ""
	}

	var content strings.Builder

	title := d.country.FlagSymbol() + "  " + d.country.Lookup("name.official")

	content.WriteString(d.styles.Title.Render(title))
	content.WriteString("\n")

	for _, field := range d.Fields() {
		content.WriteString(d.styles.OverlayLabel.Render(field[0]))
		content.WriteString(field[1])
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(d.styles.MutedText.Render("Press Esc or Enter to close"))

	return d.styles.Overlay.Render(content.String())
}

// Place centers the overlay in a width x height area.
func (d *DetailOverlay) Place(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, d.View())
}

func orPlaceholderList(values []string) []string {
	if len(values) == 0 {
		return []string{domain.Placeholder}
	}

	return values
}

// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "fmt"

// OutputPort defines the interface for presenting command results.
// This is a domain port that adapters implement for different output formats.
type OutputPort interface {
	// Success outputs a success message with optional structured data
	Success(message string, data any) error

	// Error outputs an error message
	Error(message string) error

	// Info outputs an informational message
	Info(message string) error

	// Table outputs tabular data
	Table(headers []string, rows [][]string) error

	// IsQuiet returns true if output should be suppressed
	IsQuiet() bool
}

// PageResult is the structured result of listing one catalog page.
type PageResult struct {
	Search     string           `json:"search"     yaml:"search"`
	Order      string           `json:"order"      yaml:"order"`
	Page       int              `json:"page"       yaml:"page"`
	TotalPages int              `json:"totalPages" yaml:"totalPages"`
	Matches    int              `json:"matches"    yaml:"matches"`
	Countries  []CountrySummary `json:"countries"  yaml:"countries"`
}

// CountrySummary is the table row of one country.
type CountrySummary struct {
	OfficialName     string `json:"officialName"     yaml:"officialName"`
	TwoLetterCode    string `json:"cca2"             yaml:"cca2"`
	ThreeLetterCode  string `json:"cca3"             yaml:"cca3"`
	NativeName       string `json:"nativeName"       yaml:"nativeName"`
	AlternativeNames string `json:"alternativeNames" yaml:"alternativeNames"`
	CallingCode      string `json:"callingCode"      yaml:"callingCode"`
	Flag             string `json:"flag"             yaml:"flag"`
}

// CountryDetail is the detail view of one country.
type CountryDetail struct {
	OfficialName string   `json:"officialName" yaml:"officialName"`
	CommonName   string   `json:"commonName"   yaml:"commonName"`
	Capital      string   `json:"capital"      yaml:"capital"`
	Population   *int64   `json:"population"   yaml:"population"`
	Region       string   `json:"region"       yaml:"region"`
	Subregion    string   `json:"subregion"    yaml:"subregion"`
	CallingCodes []string `json:"callingCodes" yaml:"callingCodes"`
	FlagImageURL string   `json:"flagImageUrl" yaml:"flagImageUrl"`
}

// Summary builds the table row for c.
func (c Country) Summary() CountrySummary {
	return CountrySummary{
		OfficialName:     c.Lookup("name.official"),
		TwoLetterCode:    orPlaceholder(c.TwoLetterCode),
		ThreeLetterCode:  orPlaceholder(c.ThreeLetterCode),
		NativeName:       c.NativeName(NativeNameLanguage),
		AlternativeNames: c.AlternativeNamesText(),
		CallingCode:      c.CallingCode(),
		Flag:             c.FlagSymbol(),
	}
}

// Detail builds the detail view for c. Population is nil when unknown.
func (c Country) Detail() CountryDetail {
	var population *int64
	if value, ok := c.PopulationValue(); ok {
		population = &value
	}

	return CountryDetail{
		OfficialName: c.Lookup("name.official"),
		CommonName:   orPlaceholder(c.CommonName),
		Capital:      c.Capital(),
		Population:   population,
		Region:       c.RegionName(),
		Subregion:    c.SubregionName(),
		CallingCodes: c.CallingCodes(),
		FlagImageURL: orPlaceholder(c.FlagImageURL),
	}
}

// ExitError provides specific exit codes for different failure modes.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain contains the country record and the ports adapters implement.
package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Placeholder is shown for any value missing from a record.
const Placeholder = "NF"

// NativeNameLanguage is the language whose native name the catalog table shows.
const NativeNameLanguage = "fra"

const regionalIndicatorA = '\U0001F1E6'

// NativeName is a country name in one of its native languages.
type NativeName struct {
	Official string `json:"official"`
	Common   string `json:"common"`
}

// Country is one record of the country directory.
// Records are treated as immutable once decoded.
type Country struct {
	OfficialName     string
	CommonName       string
	NativeNames      map[string]NativeName
	TwoLetterCode    string
	ThreeLetterCode  string
	AlternativeNames []string
	CallingCodeRoot  string
	CallingSuffixes  []string
	FlagImageURL     string
	FlagEmoji        string
	Capitals         []string
	Population       int64
	Region           string
	Subregion        string

	raw map[string]any
}

// wireCountry mirrors the REST Countries v3.1 schema for the consumed fields.
type wireCountry struct {
	Name struct {
		Official   string                `json:"official"`
		Common     string                `json:"common"`
		NativeName map[string]NativeName `json:"nativeName"`
	} `json:"name"`
	CCA2         string   `json:"cca2"`
	CCA3         string   `json:"cca3"`
	AltSpellings []string `json:"altSpellings"`
	IDD          struct {
		Root     string   `json:"root"`
		Suffixes []string `json:"suffixes"`
	} `json:"idd"`
	Flags struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
	Flag       string   `json:"flag"`
	Capital    []string `json:"capital"`
	Population int64    `json:"population"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
}

// UnmarshalJSON decodes a directory record and keeps the raw document for Lookup.
func (c *Country) UnmarshalJSON(data []byte) error {
	var wire wireCountry
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode country: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode country: %w", err)
	}

	*c = Country{
		OfficialName:     wire.Name.Official,
		CommonName:       wire.Name.Common,
		NativeNames:      wire.Name.NativeName,
		TwoLetterCode:    wire.CCA2,
		ThreeLetterCode:  wire.CCA3,
		AlternativeNames: wire.AltSpellings,
		CallingCodeRoot:  wire.IDD.Root,
		CallingSuffixes:  wire.IDD.Suffixes,
		FlagImageURL:     wire.Flags.PNG,
		FlagEmoji:        wire.Flag,
		Capitals:         wire.Capital,
		Population:       wire.Population,
		Region:           wire.Region,
		Subregion:        wire.Subregion,
		raw:              raw,
	}

	return nil
}

// MarshalJSON writes the record back in the directory schema.
func (c Country) MarshalJSON() ([]byte, error) {
	if c.raw != nil {
		data, err := json.Marshal(c.raw)
		if err != nil {
			return nil, fmt.Errorf("failed to encode country: %w", err)
		}

		return data, nil
	}

	var wire wireCountry
	wire.Name.Official = c.OfficialName
	wire.Name.Common = c.CommonName
	wire.Name.NativeName = c.NativeNames
	wire.CCA2 = c.TwoLetterCode
	wire.CCA3 = c.ThreeLetterCode
	wire.AltSpellings = c.AlternativeNames
	wire.IDD.Root = c.CallingCodeRoot
	wire.IDD.Suffixes = c.CallingSuffixes
	wire.Flags.PNG = c.FlagImageURL
	wire.Flag = c.FlagEmoji
	wire.Capital = c.Capitals
	wire.Population = c.Population
	wire.Region = c.Region
	wire.Subregion = c.Subregion

	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to encode country: %w", err)
	}

	return data, nil
}

// Lookup resolves a dotted path such as "name.nativeName.fra.common" in the
// raw record. Missing segments, nulls and empty values yield Placeholder.
// Arrays are joined with ", ".
func (c Country) Lookup(path string) string {
	if c.raw == nil {
		return c.lookupTyped(path)
	}

	var node any = c.raw

	for segment := range strings.SplitSeq(path, ".") {
		obj, ok := node.(map[string]any)
		if !ok {
			return Placeholder
		}

		node, ok = obj[segment]
		if !ok {
			return Placeholder
		}
	}

	return formatValue(node)
}

// lookupTyped serves records built in code rather than decoded from JSON.
func (c Country) lookupTyped(path string) string {
	switch path {
	case "name.official":
		return orPlaceholder(c.OfficialName)
	case "name.common":
		return orPlaceholder(c.CommonName)
	case "cca2":
		return orPlaceholder(c.TwoLetterCode)
	case "cca3":
		return orPlaceholder(c.ThreeLetterCode)
	case "altSpellings":
		return orPlaceholder(strings.Join(c.AlternativeNames, ", "))
	case "idd.root":
		return orPlaceholder(c.CallingCodeRoot)
	case "flags.png":
		return orPlaceholder(c.FlagImageURL)
	case "flag":
		return orPlaceholder(c.FlagEmoji)
	case "capital":
		return orPlaceholder(strings.Join(c.Capitals, ", "))
	case "population":
		if c.Population == 0 {
			return Placeholder
		}

		return strconv.FormatInt(c.Population, 10)
	case "region":
		return orPlaceholder(c.Region)
	case "subregion":
		return orPlaceholder(c.Subregion)
	}

	if rest, ok := strings.CutPrefix(path, "name.nativeName."); ok {
		lang, field, _ := strings.Cut(rest, ".")

		name, found := c.NativeNames[lang]
		if !found {
			return Placeholder
		}

		switch field {
		case "official":
			return orPlaceholder(name.Official)
		case "common":
			return orPlaceholder(name.Common)
		}
	}

	return Placeholder
}

// NativeName returns the common native name in lang, or Placeholder.
func (c Country) NativeName(lang string) string {
	return c.Lookup("name.nativeName." + lang + ".common")
}

// Capital returns the capital cities joined with ", ", or Placeholder.
func (c Country) Capital() string {
	return orPlaceholder(strings.Join(c.Capitals, ", "))
}

// AlternativeNamesText returns the alternative spellings joined with ", ".
func (c Country) AlternativeNamesText() string {
	return orPlaceholder(strings.Join(c.AlternativeNames, ", "))
}

// CallingCode returns the calling code root, or Placeholder.
func (c Country) CallingCode() string {
	return orPlaceholder(c.CallingCodeRoot)
}

// CallingCodes expands the root with each suffix (e.g. "+1" with "201", "202").
func (c Country) CallingCodes() []string {
	if c.CallingCodeRoot == "" {
		return nil
	}

	if len(c.CallingSuffixes) == 0 {
		return []string{c.CallingCodeRoot}
	}

	codes := make([]string, 0, len(c.CallingSuffixes))
	for _, suffix := range c.CallingSuffixes {
		codes = append(codes, c.CallingCodeRoot+suffix)
	}

	return codes
}

// PopulationValue returns the population and whether the record has one.
// Decoded records report presence from the document; records built in code
// treat zero as missing.
func (c Country) PopulationValue() (int64, bool) {
	if c.raw == nil {
		return c.Population, c.Population != 0
	}

	if _, ok := c.raw["population"].(float64); !ok {
		return 0, false
	}

	return c.Population, true
}

// RegionName returns the region, or Placeholder.
func (c Country) RegionName() string {
	return orPlaceholder(c.Region)
}

// SubregionName returns the subregion, or Placeholder.
func (c Country) SubregionName() string {
	return orPlaceholder(c.Subregion)
}

// FlagSymbol returns the flag emoji. When the record has none it is built
// from the two-letter code as a pair of regional indicator symbols.
func (c Country) FlagSymbol() string {
	if c.FlagEmoji != "" {
		return c.FlagEmoji
	}

	code := strings.ToUpper(c.TwoLetterCode)
	if len(code) != 2 {
		return Placeholder
	}

	var flag strings.Builder

	for _, letter := range code {
		if letter < 'A' || letter > 'Z' {
			return Placeholder
		}

		flag.WriteRune(regionalIndicatorA + letter - 'A')
	}

	return flag.String()
}

// Key identifies the record for display purposes. Not guaranteed unique.
func (c Country) Key() string {
	return c.ThreeLetterCode
}

func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}

	return value
}

func formatValue(node any) string {
	switch value := node.(type) {
	case nil:
		return Placeholder
	case string:
		return orPlaceholder(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case []any:
		parts := make([]string, 0, len(value))

		for _, item := range value {
			if text := formatValue(item); text != Placeholder {
				parts = append(parts, text)
			}
		}

		return orPlaceholder(strings.Join(parts, ", "))
	case map[string]any:
		data, err := json.Marshal(value)
		if err != nil {
			return Placeholder
		}

		return string(data)
	default:
		return orPlaceholder(fmt.Sprint(value))
	}
}

// Package output handles output formatting.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hightemp/iso3166/internal/registry"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	// FormatText prints one tab-separated line per entry.
	FormatText Format = "text"
	// FormatJSON prints an indented JSON document.
	FormatJSON Format = "json"
	// FormatYAML prints a YAML document.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s (use text, json, or yaml)", ErrUnknownFormat, s)
	}
}

// missing is printed in text output for absent fields.
const missing = "-"

// WriteNames writes a code to name mapping.
func WriteNames(w io.Writer, f Format, names *registry.Names) error {
	return write(w, f, names, func() []string {
		lines := make([]string, 0, names.Len())
		names.Each(func(code, name string) {
			lines = append(lines, code+"\t"+name)
		})
		return lines
	})
}

// WriteCountries writes country records.
func WriteCountries(w io.Writer, f Format, countries *registry.Map[*registry.Country]) error {
	return write(w, f, countries, func() []string {
		lines := make([]string, 0, countries.Len())
		countries.Each(func(_ string, c *registry.Country) {
			lines = append(lines, FormatCountry(c))
		})
		return lines
	})
}

// WriteSubdivisions writes the subdivision records of one or more countries.
// With nested set, JSON and YAML output is keyed by country code; otherwise
// the first country is written as a flat mapping.
func WriteSubdivisions(w io.Writer, f Format, byCountry *registry.Map[*registry.Map[*registry.Subdivision]], nested bool) error {
	var v interface{} = byCountry
	if !nested && byCountry.Len() > 0 {
		v, _ = byCountry.Get(byCountry.Keys()[0])
	}
	return write(w, f, v, func() []string {
		var lines []string
		byCountry.Each(func(_ string, subs *registry.Map[*registry.Subdivision]) {
			subs.Each(func(_ string, s *registry.Subdivision) {
				lines = append(lines, FormatSubdivision(s))
			})
		})
		return lines
	})
}

// WriteSubdivisionNames writes the subdivision names of one or more countries,
// shaped like WriteSubdivisions.
func WriteSubdivisionNames(w io.Writer, f Format, byCountry *registry.Map[*registry.Names], nested bool) error {
	var v interface{} = byCountry
	if !nested && byCountry.Len() > 0 {
		v, _ = byCountry.Get(byCountry.Keys()[0])
	}
	return write(w, f, v, func() []string {
		var lines []string
		byCountry.Each(func(_ string, names *registry.Names) {
			names.Each(func(code, name string) {
				lines = append(lines, code+"\t"+name)
			})
		})
		return lines
	})
}

// WriteLocales writes a locale list.
func WriteLocales(w io.Writer, f Format, locales []string) error {
	if locales == nil {
		locales = []string{}
	}
	return write(w, f, locales, func() []string {
		return locales
	})
}

// FormatCountry formats a country as tab-separated text.
func FormatCountry(c *registry.Country) string {
	return strings.Join([]string{c.Alpha2, c.Alpha3, c.Numeric, orMissingPtr(c.Name)}, "\t")
}

// FormatSubdivision formats a subdivision as tab-separated text.
func FormatSubdivision(s *registry.Subdivision) string {
	return strings.Join([]string{s.Code, orMissing(s.Type), orMissingPtr(s.Name)}, "\t")
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func orMissingPtr(s *string) string {
	if s == nil {
		return missing
	}
	return orMissing(*s)
}

func write(w io.Writer, f Format, v interface{}, text func() []string) error {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		for _, line := range text() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

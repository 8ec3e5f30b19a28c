// Package registry resolves ISO 3166 country and subdivision records and their
// localized names from a static JSON data directory.
//
// The data directory is laid out as:
//
//	<dir>/3166-1/meta.json         country code -> {alpha_2, alpha_3, numeric}
//	<dir>/3166-1/<locale>.json     country code -> name
//	<dir>/3166-2/<A2>/meta.json    subdivision code -> {code, type}
//	<dir>/3166-2/<A2>/<locale>.json subdivision code -> name
//
// Every call reads the files it needs; nothing is cached between calls.
package registry

import (
	"fmt"
	"io"

	"github.com/hightemp/iso3166/internal/config"
	"github.com/hightemp/iso3166/internal/countries"
	"github.com/sirupsen/logrus"
)

// Registry looks up records in a single data directory. It holds no mutable
// state and is safe for concurrent use.
type Registry struct {
	dataDir string
	log     logrus.FieldLogger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report skipped locale files.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a registry reading from dataDir.
func New(dataDir string, opts ...Option) *Registry {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Registry{
		dataDir: dataDir,
		log:     discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DataDir returns the data directory the registry reads from.
func (r *Registry) DataDir() string {
	return r.dataDir
}

// CountryNames returns the localized name of every country, taking each name
// from the first locale in locales which defines it. Countries no locale
// defines are left out. The result is sorted by code.
func (r *Registry) CountryNames(locales []string) (*Names, error) {
	if len(locales) == 0 {
		return NewMap[string](), nil
	}
	return r.resolveNames(config.CountryDir(r.dataDir), locales)
}

// Countries returns every country record in meta file order, with Name set
// from the first locale in locales which defines it.
func (r *Registry) Countries(locales []string) (*Map[*Country], error) {
	if len(locales) == 0 {
		return NewMap[*Country](), nil
	}
	return resolveRecords(r, config.CountryDir(r.dataDir), locales,
		func(*Country) bool { return false },
		func(c *Country, name string) { c.Name = &name },
	)
}

// SubdivisionNames is CountryNames for the subdivisions of one country.
func (r *Registry) SubdivisionNames(countryCode string, locales []string) (*Names, error) {
	if len(locales) == 0 {
		return NewMap[string](), nil
	}
	dir, err := r.subdivisionDir(countryCode)
	if err != nil {
		return nil, err
	}
	return r.resolveNames(dir, locales)
}

// Subdivisions is Countries for the subdivisions of one country, except that
// a record whose meta entry already carries a name keeps it.
func (r *Registry) Subdivisions(countryCode string, locales []string) (*Map[*Subdivision], error) {
	if len(locales) == 0 {
		return NewMap[*Subdivision](), nil
	}
	dir, err := r.subdivisionDir(countryCode)
	if err != nil {
		return nil, err
	}
	return resolveRecords(r, dir, locales,
		func(s *Subdivision) bool { return s.Name != nil },
		func(s *Subdivision, name string) { s.Name = &name },
	)
}

// CountryLocales returns the sorted locales which have a country name file.
func (r *Registry) CountryLocales() ([]string, error) {
	return listLocales(config.CountryDir(r.dataDir))
}

// SubdivisionLocales returns the sorted locales which have a subdivision name
// file for the given country.
func (r *Registry) SubdivisionLocales(countryCode string) ([]string, error) {
	dir, err := r.subdivisionDir(countryCode)
	if err != nil {
		return nil, err
	}
	return listLocales(dir)
}

func (r *Registry) subdivisionDir(countryCode string) (string, error) {
	a2 := countries.Normalize(countryCode)
	if !countries.IsAlpha2(a2) {
		return "", fmt.Errorf("country code %q: %w", countryCode, ErrNotFound)
	}
	return config.SubdivisionDir(r.dataDir, a2), nil
}

func (r *Registry) resolveNames(dir string, locales []string) (*Names, error) {
	codes, err := readKeys(config.FilePath(dir, config.MetaFileName))
	if err != nil {
		return nil, fmt.Errorf("load meta: %w", err)
	}
	names := fallbackMerge(codes, locales, r.loader(dir))
	names.SortKeys()
	return names, nil
}

// resolveRecords loads the meta records in dir and attaches names to every
// record named reports as unresolved.
func resolveRecords[T any](r *Registry, dir string, locales []string, named func(*T) bool, attach func(*T, string)) (*Map[*T], error) {
	records, err := readRecords[T](config.FilePath(dir, config.MetaFileName))
	if err != nil {
		return nil, fmt.Errorf("load meta: %w", err)
	}
	var unnamed []string
	records.Each(func(code string, rec *T) {
		if !named(rec) {
			unnamed = append(unnamed, code)
		}
	})
	names := fallbackMerge(unnamed, locales, r.loader(dir))
	names.Each(func(code, name string) {
		if rec, ok := records.Get(code); ok {
			attach(rec, name)
		}
	})
	return records, nil
}

// loader returns a function reading the names of one locale in dir. Missing
// or broken locale files yield no names.
func (r *Registry) loader(dir string) func(locale string) *Names {
	return func(locale string) *Names {
		log := r.log.WithField("locale", locale)
		if !validLocale(locale) {
			log.Debug("Skipping invalid locale identifier")
			return NewMap[string]()
		}
		path := config.FilePath(dir, locale)
		names, err := readNames(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("No translations for locale")
			return NewMap[string]()
		}
		return names
	}
}

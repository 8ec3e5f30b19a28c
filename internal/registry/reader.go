package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hightemp/iso3166/internal/config"
	"github.com/tidwall/gjson"
)

var (
	// ErrNotFound is returned when a data file or directory does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidData is returned when a data file is not a JSON object.
	ErrInvalidData = errors.New("invalid data")
)

// readObject loads path and parses it as a JSON object.
func readObject(path string) (gjson.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gjson.Result{}, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return gjson.Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("%s: %w: malformed JSON", path, ErrInvalidData)
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return gjson.Result{}, fmt.Errorf("%s: %w: not a JSON object", path, ErrInvalidData)
	}
	return obj, nil
}

// readKeys returns the top-level keys of the object in path, in file order.
func readKeys(path string) ([]string, error) {
	obj, err := readObject(path)
	if err != nil {
		return nil, err
	}
	var keys []string
	obj.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys, nil
}

// readNames loads a locale file. Entries which are not strings are skipped.
func readNames(path string) (*Names, error) {
	obj, err := readObject(path)
	if err != nil {
		return nil, err
	}
	names := NewMap[string]()
	obj.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			names.Set(key.String(), value.String())
		}
		return true
	})
	return names, nil
}

// readRecords loads a meta file, decoding every entry into a T.
func readRecords[T any](path string) (*Map[*T], error) {
	obj, err := readObject(path)
	if err != nil {
		return nil, err
	}
	records := NewMap[*T]()
	var decodeErr error
	obj.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			decodeErr = fmt.Errorf("%s: %w: entry %q is not an object", path, ErrInvalidData, key.String())
			return false
		}
		rec := new(T)
		if err := json.Unmarshal([]byte(value.Raw), rec); err != nil {
			decodeErr = fmt.Errorf("%s: %w: entry %q: %v", path, ErrInvalidData, key.String(), err)
			return false
		}
		records.Set(key.String(), rec)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return records, nil
}

// listLocales returns the sorted locale identifiers of the locale files in dir.
func listLocales(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotFound)
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if filepath.Ext(name) != config.FileExt {
			continue
		}
		locale := strings.TrimSuffix(name, config.FileExt)
		if locale == config.MetaFileName {
			continue
		}
		locales = append(locales, locale)
	}

	sort.Strings(locales)
	return locales, nil
}

// validLocale reports whether locale can be used as a file name inside a
// scope directory.
func validLocale(locale string) bool {
	switch locale {
	case "", ".", "..", config.MetaFileName:
		return false
	}
	return !strings.ContainsAny(locale, `/\`)
}

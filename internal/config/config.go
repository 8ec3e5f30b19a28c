// Package config provides configuration and data directory path management.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	// AppName is the application name.
	AppName = "iso3166"

	// CountryPart is the data subdirectory for ISO 3166-1 country data.
	CountryPart = "3166-1"

	// SubdivisionPart is the data subdirectory for ISO 3166-2 subdivision data.
	SubdivisionPart = "3166-2"

	// MetaFileName is the base name of the locale-independent record file.
	MetaFileName = "meta"

	// FileExt is the extension of every data file.
	FileExt = ".json"

	// DefaultDataDir is the default data directory path.
	DefaultDataDir = "data"

	// DefaultLocale is the default locale priority list.
	DefaultLocale = "en"

	// DefaultLogLevel is the default minimum log level.
	DefaultLogLevel = "warn"

	// DefaultFormat is the default output format.
	DefaultFormat = "text"
)

// Environment variable names.
const (
	EnvDataDir  = "ISO3166_DATA_DIR"
	EnvLocales  = "ISO3166_LOCALES"
	EnvLogLevel = "ISO3166_LOG_LEVEL"
	EnvFormat   = "ISO3166_FORMAT"
)

// EnvFiles are the dotenv files LoadEnv reads, in order. A variable keeps the
// first value it gets, so the process environment wins over every file and
// .env.local wins over .env.
var EnvFiles = []string{".env.local", ".env"}

// Config holds runtime configuration.
type Config struct {
	DataDir  string
	Locales  []string
	LogLevel string
	Format   string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		Locales:  []string{DefaultLocale},
		LogLevel: DefaultLogLevel,
		Format:   DefaultFormat,
	}
}

// FromEnv returns the default configuration overridden by the environment.
func FromEnv() *Config {
	c := DefaultConfig()
	c.DataDir = GetEnv(EnvDataDir, c.DataDir)
	c.Locales = GetEnvList(EnvLocales, c.Locales)
	c.LogLevel = GetEnv(EnvLogLevel, c.LogLevel)
	c.Format = GetEnv(EnvFormat, c.Format)
	return c
}

// LoadEnv loads environment variables from the dotenv files which exist,
// without replacing variables already set.
func LoadEnv(logger logrus.FieldLogger) {
	loaded := make([]string, 0, len(EnvFiles))
	for _, file := range EnvFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			if logger != nil {
				logger.WithError(err).Warnf("Failed to load %s", file)
			}
			continue
		}
		loaded = append(loaded, file)
	}
	if logger == nil {
		return
	}
	if len(loaded) == 0 {
		logger.Debug("No env files loaded; relying on process environment")
	} else {
		logger.Debugf("Loaded env files: %s", strings.Join(loaded, ", "))
	}
}

// GetEnv gets an environment variable with a default value.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvList gets a comma-separated environment variable with a default
// value. Empty items are dropped.
func GetEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}

// CountryDir returns the country data directory.
func CountryDir(dataDir string) string {
	return filepath.Join(dataDir, CountryPart)
}

// SubdivisionDir returns the subdivision data directory for a country.
func SubdivisionDir(dataDir, alpha2 string) string {
	return filepath.Join(dataDir, SubdivisionPart, alpha2)
}

// FilePath returns the path of a data file (meta or locale) in dir.
func FilePath(dir, name string) string {
	return filepath.Join(dir, name+FileExt)
}

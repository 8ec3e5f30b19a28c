// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"os"

	"github.com/hightemp/iso3166/internal/config"
	"github.com/hightemp/iso3166/internal/logging"
	"github.com/hightemp/iso3166/internal/output"
	"github.com/hightemp/iso3166/internal/registry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 4
	ExitInvalidData  = 5
)

// app holds the flag values and the objects built from them for one run.
type app struct {
	dataDir  string
	locales  []string
	logLevel string
	format   string

	cfg    *config.Config
	log    *logrus.Logger
	reg    *registry.Registry
	outFmt output.Format
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "ISO 3166 country and subdivision lookups with localized names",
		Long: `iso3166 reads ISO 3166-1 country and ISO 3166-2 subdivision records
from a JSON data directory and attaches localized names.

Names are taken from the first locale in the priority list which defines them:
  iso3166 countries -l fr -l en
  iso3166 subdivision-names US -l de,en

Subdivision commands also read country codes from stdin:
  echo "US CA" | iso3166 subdivisions`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.dataDir, "data-dir", config.DefaultDataDir, "data directory path (env "+config.EnvDataDir+")")
	flags.StringSliceVarP(&a.locales, "locale", "l", []string{config.DefaultLocale}, "locale priority list, highest first (env "+config.EnvLocales+")")
	flags.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "minimum log level (env "+config.EnvLogLevel+")")
	flags.StringVar(&a.format, "format", config.DefaultFormat, "output format: text, json, or yaml (env "+config.EnvFormat+")")

	cmd.AddCommand(
		a.countryNamesCmd(),
		a.countriesCmd(),
		a.subdivisionNamesCmd(),
		a.subdivisionsCmd(),
		a.localesCmd(),
		versionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits with a code describing the failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// setup resolves the configuration (flags over environment over defaults)
// and builds the logger and registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	config.LoadEnv(logging.NewLogger(cmd.ErrOrStderr(), logrus.WarnLevel))

	cfg := config.FromEnv()
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("locale") {
		cfg.Locales = a.locales
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return &inputError{err}
	}
	outFmt, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return &inputError{err}
	}

	a.cfg = cfg
	a.outFmt = outFmt
	a.log = logging.NewLogger(cmd.ErrOrStderr(), level)
	a.reg = registry.New(cfg.DataDir, registry.WithLogger(a.log.WithField("component", "registry")))

	a.log.WithFields(logging.Fields{
		"data_dir": cfg.DataDir,
		"locales":  cfg.Locales,
	}).Debug("Configured registry")
	return nil
}

// inputError marks errors caused by invalid user input.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var ie *inputError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ie):
		return ExitInvalidInput
	case errors.Is(err, registry.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, registry.ErrInvalidData):
		return ExitInvalidData
	default:
		return ExitFailure
	}
}

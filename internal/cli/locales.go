package cli

import (
	"fmt"

	"github.com/hightemp/iso3166/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) localesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales [A2]",
		Short: "List available locales",
		Long: `Lists the locales which have a country name file, or with a country code,
the locales which have a subdivision name file for that country.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var locales []string
			var err error
			if len(args) == 1 {
				locales, err = a.reg.SubdivisionLocales(args[0])
			} else {
				locales, err = a.reg.CountryLocales()
			}
			if err != nil {
				return err
			}
			return output.WriteLocales(cmd.OutOrStdout(), a.outFmt, locales)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skips the root setup: version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "iso3166 %s (commit %s, built %s)\n", Version, Commit, BuildTime)
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hightemp/iso3166/internal/countries"
	"github.com/hightemp/iso3166/internal/output"
	"github.com/hightemp/iso3166/internal/registry"
	"github.com/spf13/cobra"
)

func (a *app) countryNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "country-names",
		Short: "List localized country names, sorted by code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.reg.CountryNames(a.cfg.Locales)
			if err != nil {
				return err
			}
			return output.WriteNames(cmd.OutOrStdout(), a.outFmt, names)
		},
	}
}

func (a *app) countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List country records with localized names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.reg.Countries(a.cfg.Locales)
			if err != nil {
				return err
			}
			return output.WriteCountries(cmd.OutOrStdout(), a.outFmt, records)
		},
	}
}

func (a *app) subdivisionNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subdivision-names [A2...]",
		Short: "List localized subdivision names of countries, sorted by code",
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := countryCodes(cmd, args)
			if err != nil {
				return err
			}
			if len(codes) == 0 {
				return cmd.Help()
			}

			byCountry := registry.NewMap[*registry.Names]()
			for _, code := range codes {
				names, err := a.reg.SubdivisionNames(code, a.cfg.Locales)
				if err != nil {
					return err
				}
				byCountry.Set(code, names)
			}
			return output.WriteSubdivisionNames(cmd.OutOrStdout(), a.outFmt, byCountry, len(codes) > 1)
		},
	}
}

func (a *app) subdivisionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subdivisions [A2...]",
		Short: "List subdivision records of countries with localized names",
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := countryCodes(cmd, args)
			if err != nil {
				return err
			}
			if len(codes) == 0 {
				return cmd.Help()
			}

			byCountry := registry.NewMap[*registry.Map[*registry.Subdivision]]()
			for _, code := range codes {
				subs, err := a.reg.Subdivisions(code, a.cfg.Locales)
				if err != nil {
					return err
				}
				byCountry.Set(code, subs)
			}
			return output.WriteSubdivisions(cmd.OutOrStdout(), a.outFmt, byCountry, len(codes) > 1)
		},
	}
}

// countryCodes returns the normalized country codes given as arguments, or
// read from stdin when there are none and stdin is not a terminal.
func countryCodes(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		codes := make([]string, len(args))
		for i, arg := range args {
			codes[i] = countries.Normalize(arg)
		}
		return codes, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
			return nil, nil
		}
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read country codes: %w", err)
	}
	codes, invalid, err := countries.ParseList(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse country codes: %w", err)
	}
	if len(invalid) > 0 {
		return nil, &inputError{fmt.Errorf("invalid country codes: %s", strings.Join(invalid, ", "))}
	}
	return codes, nil
}

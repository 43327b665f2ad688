package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/andreiashu/tzcity"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options holds the persistent flag values.
type options struct {
	dataFile string
	json     bool
	verbose  bool
}

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tzcity",
		Short: "Resolve city names to time zones",
		Long: `tzcity maps informal city and country names to canonical time-zone names
(e.g. "port au prince" -> "America/Port-au-Prince") and capitalizes place
names ("rio de janeiro" -> "Rio de Janeiro").`,
		Version:       tzcity.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("tzcity version {{.Version}}\n")
	root.PersistentFlags().StringVar(&opts.dataFile, "data", "", "YAML time-zone table to use instead of the built-in one")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print results as JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	build := func() (*tzcity.TZCity, error) {
		log := logger
		if opts.verbose {
			log = log.Level(zerolog.DebugLevel)
		}
		tzOpts := []tzcity.Option{tzcity.WithLogger(log)}
		if opts.dataFile != "" {
			tzOpts = append(tzOpts, tzcity.WithDataFile(opts.dataFile))
		}
		return tzcity.New(tzOpts...)
	}

	root.AddCommand(
		newFindCmd(opts, build),
		newCapCmd(opts, build),
		newListCmd(opts, build),
		newValidateCmd(build),
	)
	return root
}

type builder func() (*tzcity.TZCity, error)

// findResult is the JSON form of a find or cap result.
type findResult struct {
	Query   string `json:"query"`
	Zone    string `json:"zone,omitempty"`
	Display string `json:"display"`
}

func newFindCmd(opts *options, build builder) *cobra.Command {
	return &cobra.Command{
		Use:   "find <city or country>",
		Short: "Find the time zone of a city or country",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tz, err := build()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			key, err := tz.Resolve(query)
			if err != nil {
				return err
			}
			display, err := tz.Normalize(key)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts, findResult{Query: query, Zone: key, Display: display})
		},
	}
}

func newCapCmd(opts *options, build builder) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "cap <name or time zone>",
		Short: "Capitalize a place name or time-zone name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tz, err := build()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			var display string
			if plain {
				display, err = tz.Capitalize(query)
			} else {
				display, err = tz.Normalize(query)
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts, findResult{Query: query, Display: display})
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Treat the input as a plain name even if it is a time-zone name")
	return cmd
}

// zoneEntry is the JSON form of a listed zone.
type zoneEntry struct {
	Zone    string   `json:"zone"`
	Display string   `json:"display"`
	Aliases []string `json:"aliases,omitempty"`
}

func newListCmd(opts *options, build builder) *cobra.Command {
	var aliases bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known time zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tz, err := build()
			if err != nil {
				return err
			}
			table := tz.Table()
			entries := make([]zoneEntry, 0, table.Len())
			for _, key := range table.Keys() {
				display, err := tz.Normalize(key)
				if err != nil {
					return err
				}
				e := zoneEntry{Zone: key, Display: display}
				if aliases {
					e.Aliases = table.Aliases(key)
				}
				entries = append(entries, e)
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, entries)
			}
			for _, e := range entries {
				if len(e.Aliases) > 0 {
					fmt.Fprintf(out, "%s\t%s\n", e.Display, strings.Join(e.Aliases, ", "))
				} else {
					fmt.Fprintln(out, e.Display)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&aliases, "aliases", false, "Also print the names that resolve to each zone")
	return cmd
}

func newValidateCmd(build builder) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the time-zone table and capitalization rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Validating time-zone data...")
			tz, err := build()
			if err != nil {
				return err
			}
			if err := tz.Validate(out); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintln(out, "Validation passed.")
			return nil
		},
	}
}

func printResult(w io.Writer, opts *options, r findResult) error {
	if opts.json {
		return writeJSON(w, r)
	}
	_, err := fmt.Fprintln(w, r.Display)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

// app carries the global flags and the lazily loaded catalog.
type app struct {
	dataFile string
	verbose  bool
	jsonOut  bool

	catalog *travel.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Query the travel atlas catalog from the command line",
		Long: `atlas runs the same filters as the atlas server against the built-in
dataset or a YAML dataset file, and can seed a PostgreSQL database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().StringVar(&a.dataFile, "data", os.Getenv("DATASET_FILE"), "YAML dataset file (default: built-in dataset)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Output in JSON format")

	cmd.AddCommand(
		newVisibleCmd(a),
		newSearchCmd(a),
		newIndexCmd(a),
		newJourneysCmd(a),
		newJourneyCmd(a),
		newYearsCmd(a),
		newSeedCmd(a),
	)

	return cmd
}

// loadCatalog reads --data when set and falls back to the built-in dataset.
func (a *app) loadCatalog() (*travel.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	if a.dataFile == "" {
		slog.Debug("using built-in dataset")
		a.catalog = travel.Reference()
		return a.catalog, nil
	}

	c, err := travel.LoadFile(a.dataFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("dataset loaded", "file", a.dataFile, "destinations", len(c.Destinations()))
	a.catalog = c
	return c, nil
}

// render writes v as indented JSON with --json, otherwise calls text.
func (a *app) render(w io.Writer, v any, text func(w io.Writer) error) error {
	if a.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := text(tw); err != nil {
		return err
	}
	return tw.Flush()
}

func writeDestinations(w io.Writer, dests []travel.Destination) error {
	if len(dests) == 0 {
		_, err := fmt.Fprintln(w, "no destinations")
		return err
	}
	for _, d := range dests {
		if _, err := fmt.Fprintf(w, "%s\t%s, %s\t%s to %s\t%s\n",
			d.ID, d.City, d.Country, d.StartDate, d.EndDate, d.Category); err != nil {
			return err
		}
	}
	return nil
}

func writeJourney(w io.Writer, j travel.JourneyDetail) error {
	stops := make([]string, len(j.Destinations))
	for i, d := range j.Destinations {
		stops[i] = d.City
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%.0f%%\t%s\n",
		j.ID, j.Name, j.Year, j.Position, strings.Join(stops, " > "))
	return err
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

func newYearsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "years [year]",
		Short: "Show the year range, or the destinations that start in one year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				r := c.YearRange()
				return a.render(cmd.OutOrStdout(), r, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%d\t%d\n", r.Min, r.Max)
					return err
				})
			}

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be an integer: %q", args[0])
			}

			dests := travel.InYear(c.Destinations(), year)
			return a.render(cmd.OutOrStdout(), dests, func(w io.Writer) error {
				return writeDestinations(w, dests)
			})
		},
	}
}

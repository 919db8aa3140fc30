package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find destinations by city or country",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			dests := travel.Search(c.Destinations(), strings.Join(args, " "))
			return a.render(cmd.OutOrStdout(), dests, func(w io.Writer) error {
				return writeDestinations(w, dests)
			})
		},
	}
}

func newIndexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "List every destination in chronological order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			dests := travel.SortedByStartDate(c.Destinations())
			return a.render(cmd.OutOrStdout(), dests, func(w io.Writer) error {
				return writeDestinations(w, dests)
			})
		},
	}
}

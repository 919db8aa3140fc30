package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

func newVisibleCmd(a *app) *cobra.Command {
	var (
		categories []string
		year       int
		journeyID  string
	)

	cmd := &cobra.Command{
		Use:   "visible",
		Short: "List the destinations a map would show",
		Long: `List the destinations visible for a set of active categories and a year
threshold. Without --category every category is active; --category ""
activates none. Without --year the latest year is used. --journey shows
that journey's stops and ignores the other filters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			active := travel.Categories
			if cmd.Flags().Changed("category") {
				active = make([]travel.Category, 0, len(categories))
				for _, raw := range categories {
					if raw == "" {
						continue
					}
					cat, err := travel.ParseCategory(raw)
					if err != nil {
						return err
					}
					active = append(active, cat)
				}
			}

			threshold := c.YearRange().Max
			if cmd.Flags().Changed("year") {
				threshold = year
			}

			var focused *travel.Journey
			if journeyID != "" {
				j, ok := c.Journey(journeyID)
				if !ok {
					return fmt.Errorf("journey %q not found", journeyID)
				}
				focused = &j
			}

			dests := travel.VisibleSet(c.Destinations(), active, threshold, focused)
			return a.render(cmd.OutOrStdout(), dests, func(w io.Writer) error {
				return writeDestinations(w, dests)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&categories, "category", "c", nil, "Active category (repeatable): diplomatic, state-function, personal")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Show destinations starting in or before this year")
	cmd.Flags().StringVarP(&journeyID, "journey", "j", "", "Show only this journey's destinations")

	return cmd
}

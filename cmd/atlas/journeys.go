package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

func newJourneysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "journeys",
		Short: "List journeys with their place on the timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			journeys := c.Journeys()
			details := make([]travel.JourneyDetail, 0, len(journeys))
			for _, j := range journeys {
				details = append(details, c.Detail(j))
			}

			return a.render(cmd.OutOrStdout(), details, func(w io.Writer) error {
				for _, d := range details {
					if err := writeJourney(w, d); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newJourneyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "journey <id>",
		Short: "Show one journey with its stops, route and bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			j, ok := c.Journey(args[0])
			if !ok {
				return fmt.Errorf("journey %q not found", args[0])
			}
			detail := c.Detail(j)

			return a.render(cmd.OutOrStdout(), detail, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "%s (%d)\n%s\n\n", detail.Name, detail.Year, detail.Description); err != nil {
					return err
				}
				if err := writeDestinations(w, detail.Destinations); err != nil {
					return err
				}
				if detail.Bounds != nil {
					b := detail.Bounds
					_, err := fmt.Fprintf(w, "\nbounds\t%.4f,%.4f .. %.4f,%.4f\n", b.South, b.West, b.North, b.East)
					return err
				}
				return nil
			})
		},
	}
}

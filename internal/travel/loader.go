package travel

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Source supplies the raw records a Catalog is built from.
// storage.Repository and mirror.Client satisfy it.
type Source interface {
	ListDestinations(ctx context.Context) ([]Destination, error)
	ListJourneys(ctx context.Context) ([]Journey, error)
}

// Load reads destinations and journeys from src in parallel and builds a Catalog.
// Any failure aborts the load.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	g, gCtx := errgroup.WithContext(ctx)

	var destinations []Destination
	var journeys []Journey

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("destination load panicked", "recover", r)
				err = fmt.Errorf("destination load panicked: %v", r)
			}
		}()
		ds, loadErr := src.ListDestinations(gCtx)
		if loadErr != nil {
			return fmt.Errorf("listing destinations: %w", loadErr)
		}
		destinations = ds
		return nil
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("journey load panicked", "recover", r)
				err = fmt.Errorf("journey load panicked: %v", r)
			}
		}()
		js, loadErr := src.ListJourneys(gCtx)
		if loadErr != nil {
			return fmt.Errorf("listing journeys: %w", loadErr)
		}
		journeys = js
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	c, err := NewCatalog(destinations, journeys)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	slog.Debug("catalog loaded", "destinations", len(destinations), "journeys", len(journeys))
	return c, nil
}

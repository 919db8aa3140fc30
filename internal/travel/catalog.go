package travel

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidDataset is returned when a dataset violates the catalog invariants.
var ErrInvalidDataset = errors.New("invalid dataset")

// Catalog is the immutable set of destinations and journeys loaded at startup.
// It is safe for concurrent use since nothing mutates it after NewCatalog.
type Catalog struct {
	destinations []Destination
	journeys     []Journey
	byID         map[string]int
	journeyByID  map[string]int
	years        YearRange
}

// NewCatalog validates the records and builds a Catalog.
// Destination and journey ids must be unique and every category must be valid.
// Journeys may reference destination ids that do not exist.
func NewCatalog(destinations []Destination, journeys []Journey) (*Catalog, error) {
	c := &Catalog{
		destinations: slices.Clone(destinations),
		journeys:     slices.Clone(journeys),
		byID:         make(map[string]int, len(destinations)),
		journeyByID:  make(map[string]int, len(journeys)),
	}

	for i, d := range c.destinations {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: destination at index %d has no id", ErrInvalidDataset, i)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate destination id %q", ErrInvalidDataset, d.ID)
		}
		if !d.Category.Valid() {
			return nil, fmt.Errorf("%w: destination %q: %w: %q", ErrInvalidDataset, d.ID, ErrUnknownCategory, d.Category)
		}
		c.byID[d.ID] = i
	}

	for i, j := range c.journeys {
		if j.ID == "" {
			return nil, fmt.Errorf("%w: journey at index %d has no id", ErrInvalidDataset, i)
		}
		if _, dup := c.journeyByID[j.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate journey id %q", ErrInvalidDataset, j.ID)
		}
		c.journeyByID[j.ID] = i
	}

	c.years = YearRangeOf(c.destinations)
	return c, nil
}

// Destinations returns every destination in source order.
func (c *Catalog) Destinations() []Destination {
	return slices.Clone(c.destinations)
}

// Journeys returns every journey in source order.
func (c *Catalog) Journeys() []Journey {
	return slices.Clone(c.journeys)
}

// Destination looks up a destination by id.
func (c *Catalog) Destination(id string) (Destination, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Destination{}, false
	}
	return c.destinations[i], true
}

// Journey looks up a journey by id.
func (c *Catalog) Journey(id string) (Journey, bool) {
	i, ok := c.journeyByID[id]
	if !ok {
		return Journey{}, false
	}
	return c.journeys[i], true
}

// Resolve returns the journey's destinations in listed order, skipping ids
// that are not in the catalog.
func (c *Catalog) Resolve(j Journey) []Destination {
	out := make([]Destination, 0, len(j.DestinationIDs))
	for _, id := range j.DestinationIDs {
		if d, ok := c.Destination(id); ok {
			out = append(out, d)
		}
	}
	return out
}

// YearRange is the span of destination start years, computed once at load.
func (c *Catalog) YearRange() YearRange {
	return c.years
}

// JourneyDetail is a journey with its references resolved for display.
type JourneyDetail struct {
	Journey
	Destinations []Destination `json:"resolved"`
	Route        []Coordinates `json:"route,omitempty"`
	Bounds       *Bounds       `json:"bounds,omitempty"`
	Position     float64       `json:"timeline_position"`
}

// Detail resolves j against the catalog. A route is only drawn between two
// or more stops.
func (c *Catalog) Detail(j Journey) JourneyDetail {
	dests := c.Resolve(j)
	detail := JourneyDetail{
		Journey:      j,
		Destinations: dests,
		Position:     TimelinePosition(j.Year, c.years),
	}
	if len(dests) > 1 {
		detail.Route = Route(dests)
	}
	if b, ok := BoundsOf(dests); ok {
		detail.Bounds = &b
	}
	return detail
}

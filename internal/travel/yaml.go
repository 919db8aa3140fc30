package travel

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlDataset mirrors the on-disk dataset file. Dates and categories stay
// strings here so that parse errors name the offending record.
type yamlDataset struct {
	Destinations []yamlDestination `yaml:"destinations"`
	Journeys     []yamlJourney     `yaml:"journeys"`
}

type yamlDestination struct {
	ID           string     `yaml:"id"`
	Country      string     `yaml:"country"`
	City         string     `yaml:"city"`
	Coordinates  [2]float64 `yaml:"coordinates"`
	StartDate    string     `yaml:"start_date"`
	EndDate      string     `yaml:"end_date"`
	Category     string     `yaml:"category"`
	Summary      string     `yaml:"summary"`
	Significance string     `yaml:"significance"`
	Images       []string   `yaml:"images"`
	Meetings     []string   `yaml:"meetings"`
}

type yamlJourney struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Year         int      `yaml:"year"`
	Destinations []string `yaml:"destinations"`
}

func (y yamlDestination) toDestination() (Destination, error) {
	category, err := ParseCategory(y.Category)
	if err != nil {
		return Destination{}, fmt.Errorf("destination %q: %w", y.ID, err)
	}
	start, err := ParseDate(y.StartDate)
	if err != nil {
		return Destination{}, fmt.Errorf("destination %q start date: %w", y.ID, err)
	}
	end, err := ParseDate(y.EndDate)
	if err != nil {
		return Destination{}, fmt.Errorf("destination %q end date: %w", y.ID, err)
	}

	return Destination{
		ID:           y.ID,
		Country:      y.Country,
		City:         y.City,
		Coordinates:  Coordinates{Lat: y.Coordinates[0], Lng: y.Coordinates[1]},
		StartDate:    start,
		EndDate:      end,
		Category:     category,
		Summary:      y.Summary,
		Significance: y.Significance,
		Images:       y.Images,
		Meetings:     y.Meetings,
	}, nil
}

// DecodeYAML reads a dataset document and builds a Catalog.
// Coordinates are written as [lat, lng] pairs and dates as YYYY-MM-DD.
func DecodeYAML(r io.Reader) (*Catalog, error) {
	var doc yamlDataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decoding yaml: %w", ErrInvalidDataset, err)
	}

	destinations := make([]Destination, 0, len(doc.Destinations))
	for _, raw := range doc.Destinations {
		d, err := raw.toDestination()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		destinations = append(destinations, d)
	}

	journeys := make([]Journey, 0, len(doc.Journeys))
	for _, raw := range doc.Journeys {
		journeys = append(journeys, Journey{
			ID:             raw.ID,
			Name:           raw.Name,
			Description:    raw.Description,
			Year:           raw.Year,
			DestinationIDs: raw.Destinations,
		})
	}

	return NewCatalog(destinations, journeys)
}

// LoadFile decodes the YAML dataset at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	c, err := DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return c, nil
}

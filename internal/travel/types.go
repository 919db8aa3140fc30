package travel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownCategory is returned when a raw category string is not one of
// the enumerated categories.
var ErrUnknownCategory = errors.New("unknown category")

// Category classifies the purpose of a visit.
type Category string

const (
	Diplomatic    Category = "diplomatic"
	StateFunction Category = "state-function"
	Personal      Category = "personal"
)

// Categories lists every valid category in display order.
var Categories = []Category{Diplomatic, StateFunction, Personal}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case Diplomatic, StateFunction, Personal:
		return true
	}
	return false
}

// UnmarshalText rejects values outside the enumeration.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

const dateLayout = "2006-01-02"

// Date is a calendar day in UTC.
type Date struct {
	time.Time
}

// NewDate builds a Date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON overrides the embedded time.Time encoding.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON overrides the embedded time.Time decoding.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("decoding date: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

// Coordinates is a WGS 84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is a geographic bounding box.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Destination is a single visit: a place, a date range and what happened there.
type Destination struct {
	ID           string      `json:"id"`
	Country      string      `json:"country"`
	City         string      `json:"city"`
	Coordinates  Coordinates `json:"coordinates"`
	StartDate    Date        `json:"start_date"`
	EndDate      Date        `json:"end_date"`
	Category     Category    `json:"category"`
	Summary      string      `json:"summary"`
	Significance string      `json:"significance"`
	Images       []string    `json:"images"`
	Meetings     []string    `json:"meetings,omitempty"`
}

// Journey is a named multi-stop trip. DestinationIDs are weak references
// resolved against the catalog; ids that do not resolve are skipped.
type Journey struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Year           int      `json:"year"`
	DestinationIDs []string `json:"destinations"`
}

// YearRange is the inclusive span of start years in a catalog.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Clamp limits year to the range.
func (r YearRange) Clamp(year int) int {
	if year < r.Min {
		return r.Min
	}
	if year > r.Max {
		return r.Max
	}
	return year
}

package travel

import (
	"slices"
	"strings"
)

// VisibleSet computes the destinations eligible for display.
//
// With a focused journey the result is the journey's destinations in listed
// order and the category and year filters are ignored. Otherwise it is every
// destination whose category is active and whose start year is at most
// yearThreshold, in source order. An empty active set yields nothing.
func VisibleSet(all []Destination, active []Category, yearThreshold int, focused *Journey) []Destination {
	if focused != nil {
		return resolveIn(all, focused.DestinationIDs)
	}

	out := make([]Destination, 0, len(all))
	for _, d := range all {
		if !slices.Contains(active, d.Category) {
			continue
		}
		if YearOf(d) > yearThreshold {
			continue
		}
		out = append(out, d)
	}
	return out
}

func resolveIn(all []Destination, ids []string) []Destination {
	index := make(map[string]int, len(all))
	for i, d := range all {
		index[d.ID] = i
	}

	out := make([]Destination, 0, len(ids))
	for _, id := range ids {
		if i, ok := index[id]; ok {
			out = append(out, all[i])
		}
	}
	return out
}

// Search returns the destinations whose city or country contains query,
// ignoring case. A blank query matches nothing.
func Search(all []Destination, query string) []Destination {
	if strings.TrimSpace(query) == "" {
		return []Destination{}
	}

	q := strings.ToLower(query)
	out := make([]Destination, 0)
	for _, d := range all {
		if strings.Contains(strings.ToLower(d.City), q) || strings.Contains(strings.ToLower(d.Country), q) {
			out = append(out, d)
		}
	}
	return out
}

// YearOf is the calendar year of the destination's start date.
func YearOf(d Destination) int {
	return d.StartDate.Year()
}

// YearRangeOf returns the minimum and maximum start years. An empty input
// yields the zero range.
func YearRangeOf(all []Destination) YearRange {
	if len(all) == 0 {
		return YearRange{}
	}

	r := YearRange{Min: YearOf(all[0]), Max: YearOf(all[0])}
	for _, d := range all[1:] {
		y := YearOf(d)
		r.Min = min(r.Min, y)
		r.Max = max(r.Max, y)
	}
	return r
}

// InYear returns the destinations whose start year is exactly year.
func InYear(all []Destination, year int) []Destination {
	out := make([]Destination, 0)
	for _, d := range all {
		if YearOf(d) == year {
			out = append(out, d)
		}
	}
	return out
}

// ByCategory returns the destinations in category c.
func ByCategory(all []Destination, c Category) []Destination {
	out := make([]Destination, 0)
	for _, d := range all {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// SortedByStartDate returns a chronological copy; equal dates keep source order.
func SortedByStartDate(all []Destination) []Destination {
	out := slices.Clone(all)
	slices.SortStableFunc(out, func(a, b Destination) int {
		return a.StartDate.Compare(b.StartDate.Time)
	})
	return out
}

// Route returns the coordinates of dests in order, for drawing a journey line.
func Route(dests []Destination) []Coordinates {
	out := make([]Coordinates, 0, len(dests))
	for _, d := range dests {
		out = append(out, d.Coordinates)
	}
	return out
}

// BoundsOf returns the smallest box containing every destination.
// ok is false when dests is empty.
func BoundsOf(dests []Destination) (b Bounds, ok bool) {
	if len(dests) == 0 {
		return Bounds{}, false
	}

	first := dests[0].Coordinates
	b = Bounds{South: first.Lat, North: first.Lat, West: first.Lng, East: first.Lng}
	for _, d := range dests[1:] {
		b.South = min(b.South, d.Coordinates.Lat)
		b.North = max(b.North, d.Coordinates.Lat)
		b.West = min(b.West, d.Coordinates.Lng)
		b.East = max(b.East, d.Coordinates.Lng)
	}
	return b, true
}

// TimelinePosition places year on the slider as a percentage of r.
// A single-year range puts everything at 0.
func TimelinePosition(year int, r YearRange) float64 {
	span := r.Max - r.Min
	if span <= 0 {
		return 0
	}
	return float64(year-r.Min) / float64(span) * 100
}

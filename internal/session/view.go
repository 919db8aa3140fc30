package session

import (
	"github.com/neexbeast/travel-atlas/internal/travel"
)

// FocusView is the focused entity with its data resolved.
type FocusView struct {
	Kind        FocusKind             `json:"kind"`
	Destination *travel.Destination   `json:"destination,omitempty"`
	Journey     *travel.JourneyDetail `json:"journey,omitempty"`
}

// View is everything the map UI renders for a state.
type View struct {
	Visible       []travel.Destination `json:"visible"`
	Focus         FocusView            `json:"focus"`
	Years         travel.YearRange     `json:"years"`
	Year          int                  `json:"year"`
	Categories    []travel.Category    `json:"categories"`
	Search        string               `json:"search"`
	SearchResults []travel.Destination `json:"search_results"`
	SidebarOpen   bool                 `json:"sidebar_open"`
}

// Render derives the view for s. A focus whose id no longer resolves, for
// instance a stored session from an older dataset, renders as no focus.
func (m *Machine) Render(s State) View {
	s = s.clone()
	all := m.catalog.Destinations()

	v := View{
		Focus:         FocusView{Kind: FocusNone},
		Years:         m.catalog.YearRange(),
		Year:          s.Year,
		Categories:    s.Categories,
		Search:        s.Search,
		SearchResults: travel.Search(all, s.Search),
		SidebarOpen:   s.SidebarOpen,
	}

	var focused *travel.Journey
	switch s.Focus.Kind {
	case FocusDestination:
		if d, ok := m.catalog.Destination(s.Focus.ID); ok {
			v.Focus = FocusView{Kind: FocusDestination, Destination: &d}
		}
	case FocusJourney:
		if j, ok := m.catalog.Journey(s.Focus.ID); ok {
			detail := m.catalog.Detail(j)
			v.Focus = FocusView{Kind: FocusJourney, Journey: &detail}
			focused = &j
		}
	}

	v.Visible = travel.VisibleSet(all, s.Categories, s.Year, focused)
	return v
}

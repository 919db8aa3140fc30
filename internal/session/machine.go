package session

import (
	"github.com/neexbeast/travel-atlas/internal/travel"
)

// Machine applies selection transitions against an immutable catalog.
// Every transition is pure: the input State is never modified, and an id
// the catalog does not know leaves the state unchanged.
type Machine struct {
	catalog *travel.Catalog
}

// NewMachine constructs a Machine over catalog.
func NewMachine(catalog *travel.Catalog) *Machine {
	return &Machine{catalog: catalog}
}

// Catalog returns the catalog the machine resolves ids against.
func (m *Machine) Catalog() *travel.Catalog {
	return m.catalog
}

// New returns the initial state: every category active, the timeline at
// the latest year, nothing focused and the sidebar closed.
func (m *Machine) New() State {
	cats := make([]travel.Category, len(travel.Categories))
	copy(cats, travel.Categories)
	return State{
		Categories: cats,
		Year:       m.catalog.YearRange().Max,
		Focus:      NoFocus,
	}
}

// SelectDestination focuses a single destination, dropping any journey focus.
func (m *Machine) SelectDestination(s State, id string) State {
	if _, ok := m.catalog.Destination(id); !ok {
		return s
	}
	s = s.clone()
	s.Focus = Focus{Kind: FocusDestination, ID: id}
	return s
}

// SelectJourney focuses a journey. The visible set follows the journey
// until the focus is cleared.
func (m *Machine) SelectJourney(s State, id string) State {
	if _, ok := m.catalog.Journey(id); !ok {
		return s
	}
	s = s.clone()
	s.Focus = Focus{Kind: FocusJourney, ID: id}
	return s
}

// ClearFocus drops any focus. The visible set is derived from the active
// categories and year again.
func (m *Machine) ClearFocus(s State) State {
	s = s.clone()
	s.Focus = NoFocus
	return s
}

// SelectDestinationFromJourney drills into one stop of the focused journey.
// The journey focus is abandoned, not stacked.
func (m *Machine) SelectDestinationFromJourney(s State, id string) State {
	return m.SelectDestination(s, id)
}

// CloseDetail closes a destination detail; other focus is left alone.
func (m *Machine) CloseDetail(s State) State {
	if s.Focus.Kind != FocusDestination {
		return s
	}
	return m.ClearFocus(s)
}

// CloseJourney closes a journey detail; other focus is left alone.
func (m *Machine) CloseJourney(s State) State {
	if s.Focus.Kind != FocusJourney {
		return s
	}
	return m.ClearFocus(s)
}

// PickSearchResult focuses a destination chosen from the sidebar, clearing
// the search box and closing the sidebar.
func (m *Machine) PickSearchResult(s State, id string) State {
	if _, ok := m.catalog.Destination(id); !ok {
		return s
	}
	s = m.SelectDestination(s, id)
	s.Search = ""
	s.SidebarOpen = false
	return s
}

// ToggleCategory enables or disables c. Categories stay in canonical order.
func (m *Machine) ToggleCategory(s State, c travel.Category, enabled bool) State {
	if !c.Valid() {
		return s
	}

	next := make([]travel.Category, 0, len(travel.Categories))
	for _, cat := range travel.Categories {
		on := s.Active(cat)
		if cat == c {
			on = enabled
		}
		if on {
			next = append(next, cat)
		}
	}

	s = s.clone()
	s.Categories = next
	return s
}

// SetSearch records the search box contents.
func (m *Machine) SetSearch(s State, text string) State {
	s = s.clone()
	s.Search = text
	return s
}

// SetYear moves the timeline threshold, clamped to the catalog's years.
func (m *Machine) SetYear(s State, year int) State {
	s = s.clone()
	s.Year = m.catalog.YearRange().Clamp(year)
	return s
}

// ToggleSidebar flips the sidebar flag.
func (m *Machine) ToggleSidebar(s State) State {
	s = s.clone()
	s.SidebarOpen = !s.SidebarOpen
	return s
}

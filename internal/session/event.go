package session

import (
	"errors"
	"fmt"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

// ErrUnknownEvent is returned by Apply for an event type it does not handle.
var ErrUnknownEvent = errors.New("unknown event")

// EventType names a user interaction coming from the map UI.
type EventType string

const (
	EventCategoryToggle             EventType = "category_toggle"
	EventSearchInput                EventType = "search_input"
	EventSearchPick                 EventType = "search_pick"
	EventYearDrag                   EventType = "year_drag"
	EventMarkerActivate             EventType = "marker_activate"
	EventJourneyActivate            EventType = "journey_activate"
	EventJourneyDestinationActivate EventType = "journey_destination_activate"
	EventCloseDetail                EventType = "close_detail"
	EventCloseJourney               EventType = "close_journey"
	EventSidebarToggle              EventType = "sidebar_toggle"
)

// Event is one interaction. Only the fields its Type uses are read.
type Event struct {
	Type     EventType `json:"type"`
	Category string    `json:"category,omitempty"`
	Enabled  bool      `json:"enabled,omitempty"`
	Text     string    `json:"text,omitempty"`
	Year     int       `json:"year,omitempty"`
	ID       string    `json:"id,omitempty"`
}

// Apply dispatches ev to the matching transition. Errors describe a
// malformed event; unknown destination or journey ids are not errors.
func (m *Machine) Apply(s State, ev Event) (State, error) {
	switch ev.Type {
	case EventCategoryToggle:
		c, err := travel.ParseCategory(ev.Category)
		if err != nil {
			return s, fmt.Errorf("applying %s: %w", ev.Type, err)
		}
		return m.ToggleCategory(s, c, ev.Enabled), nil
	case EventSearchInput:
		return m.SetSearch(s, ev.Text), nil
	case EventSearchPick:
		return m.PickSearchResult(s, ev.ID), nil
	case EventYearDrag:
		return m.SetYear(s, ev.Year), nil
	case EventMarkerActivate:
		return m.SelectDestination(s, ev.ID), nil
	case EventJourneyActivate:
		return m.SelectJourney(s, ev.ID), nil
	case EventJourneyDestinationActivate:
		return m.SelectDestinationFromJourney(s, ev.ID), nil
	case EventCloseDetail:
		return m.CloseDetail(s), nil
	case EventCloseJourney:
		return m.CloseJourney(s), nil
	case EventSidebarToggle:
		return m.ToggleSidebar(s), nil
	}
	return s, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
}

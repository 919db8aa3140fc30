// Package session holds the per-viewer selection state of the atlas: which
// categories are active, the timeline threshold, the search box and the
// single focused destination or journey.
//
// State is a plain value. Transitions take a State and return a new one; a
// Machine binds them to the catalog so unknown ids can be ignored.
package session

import (
	"slices"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

// FocusKind tags what, if anything, is expanded for detail viewing.
type FocusKind string

const (
	FocusNone        FocusKind = "none"
	FocusDestination FocusKind = "destination"
	FocusJourney     FocusKind = "journey"
)

// Focus is at most one destination or journey.
type Focus struct {
	Kind FocusKind `json:"kind"`
	ID   string    `json:"id,omitempty"`
}

// NoFocus is the empty focus.
var NoFocus = Focus{Kind: FocusNone}

// State is the serializable session value.
type State struct {
	Categories  []travel.Category `json:"categories"`
	Search      string            `json:"search"`
	Year        int               `json:"year"`
	Focus       Focus             `json:"focus"`
	SidebarOpen bool              `json:"sidebar_open"`
}

// Active reports whether category c is enabled.
func (s State) Active(c travel.Category) bool {
	return slices.Contains(s.Categories, c)
}

// clone copies the category slice so transitions never share backing arrays.
func (s State) clone() State {
	s.Categories = slices.Clone(s.Categories)
	if s.Categories == nil {
		s.Categories = []travel.Category{}
	}
	if s.Focus.Kind == "" {
		s.Focus = NoFocus
	}
	return s
}

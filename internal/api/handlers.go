package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/travel-atlas/internal/session"
	"github.com/neexbeast/travel-atlas/internal/travel"
)

// maxEventBytes caps the body of a session event.
const maxEventBytes = 64 << 10

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	machine *session.Machine
	store   SessionStore
	log     *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(machine *session.Machine, store SessionStore, log *slog.Logger) *Handlers {
	return &Handlers{
		machine: machine,
		store:   store,
		log:     log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// visibleResponse is the body of GET /api/v1/destinations.
type visibleResponse struct {
	Destinations []travel.Destination `json:"destinations"`
	Categories   []travel.Category    `json:"categories"`
	Year         int                  `json:"year"`
	Journey      string               `json:"journey,omitempty"`
}

// ListDestinations handles GET /api/v1/destinations.
// Without a category parameter every category is active; category= with an
// empty value activates none. A missing year means the latest year.
func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	catalog := h.machine.Catalog()
	query := r.URL.Query()

	active := travel.Categories
	if raw, ok := query["category"]; ok {
		active = make([]travel.Category, 0, len(raw))
		for _, v := range raw {
			if v == "" {
				continue
			}
			c, err := travel.ParseCategory(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			active = append(active, c)
		}
	}

	year := catalog.YearRange().Max
	if raw := query.Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		year = y
	}

	var focused *travel.Journey
	journeyID := query.Get("journey")
	if journeyID != "" {
		j, ok := catalog.Journey(journeyID)
		if !ok {
			writeError(w, http.StatusNotFound, "journey not found")
			return
		}
		focused = &j
	}

	writeJSON(w, http.StatusOK, visibleResponse{
		Destinations: travel.VisibleSet(catalog.Destinations(), active, year, focused),
		Categories:   active,
		Year:         year,
		Journey:      journeyID,
	})
}

// DestinationIndex handles GET /api/v1/destinations/index.
func (h *Handlers) DestinationIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, travel.SortedByStartDate(h.machine.Catalog().Destinations()))
}

// SearchDestinations handles GET /api/v1/destinations/search?q=.
func (h *Handlers) SearchDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, travel.Search(h.machine.Catalog().Destinations(), q))
}

// GetDestination handles GET /api/v1/destinations/{id}.
func (h *Handlers) GetDestination(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, ok := h.machine.Catalog().Destination(id)
	if !ok {
		writeError(w, http.StatusNotFound, "destination not found")
		return
	}

	writeJSON(w, http.StatusOK, d)
}

// Years handles GET /api/v1/years.
func (h *Handlers) Years(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.machine.Catalog().YearRange())
}

// DestinationsInYear handles GET /api/v1/years/{year}.
func (h *Handlers) DestinationsInYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}

	writeJSON(w, http.StatusOK, travel.InYear(h.machine.Catalog().Destinations(), year))
}

// ListJourneys handles GET /api/v1/journeys.
func (h *Handlers) ListJourneys(w http.ResponseWriter, r *http.Request) {
	catalog := h.machine.Catalog()
	journeys := catalog.Journeys()

	out := make([]travel.JourneyDetail, 0, len(journeys))
	for _, j := range journeys {
		out = append(out, catalog.Detail(j))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetJourney handles GET /api/v1/journeys/{id}.
func (h *Handlers) GetJourney(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	j, ok := h.machine.Catalog().Journey(id)
	if !ok {
		writeError(w, http.StatusNotFound, "journey not found")
		return
	}

	writeJSON(w, http.StatusOK, h.machine.Catalog().Detail(j))
}

// sessionResponse is returned by every session route that renders.
type sessionResponse struct {
	ID   string       `json:"id"`
	View session.View `json:"view"`
}

// CreateSession handles POST /api/v1/sessions.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	state := h.machine.New()

	id, err := h.store.Create(r.Context(), state)
	if err != nil {
		h.log.Error("session create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.log.Debug("session created", "session", id)
	writeJSON(w, http.StatusCreated, sessionResponse{ID: id, View: h.machine.Render(state)})
}

// GetSession handles GET /api/v1/sessions/{id}.
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	state, ok := h.loadSession(w, r, id)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{ID: id, View: h.machine.Render(*state)})
}

// ApplyEvent handles POST /api/v1/sessions/{id}/events.
// The session is loaded, the event applied and the result saved; concurrent
// events on one session are last-writer-wins.
func (h *Handlers) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var ev session.Event
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid event body")
		return
	}

	state, ok := h.loadSession(w, r, id)
	if !ok {
		return
	}

	next, err := h.machine.Apply(*state, ev)
	if err != nil {
		if errors.Is(err, session.ErrUnknownEvent) || errors.Is(err, travel.ErrUnknownCategory) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("applying event failed", "session", id, "type", ev.Type, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.store.Save(r.Context(), id, next); err != nil {
		h.log.Error("session save failed", "session", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{ID: id, View: h.machine.Render(next)})
}

// DeleteSession handles DELETE /api/v1/sessions/{id}.
func (h *Handlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.log.Error("session delete failed", "session", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// loadSession writes the error response itself and reports false when the
// session cannot be used.
func (h *Handlers) loadSession(w http.ResponseWriter, r *http.Request, id string) (*session.State, bool) {
	state, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.log.Error("session get failed", "session", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	if state == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return state, true
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis connectivity.
// A nil db means the catalog is not backed by a database and reports "disabled".
func HealthHandlerFunc(db dbPinger, redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "disabled"
		redisStatus := "ok"

		if db != nil {
			dbStatus = "ok"
			if err := db.Ping(ctx); err != nil {
				log.Error("health check: db ping failed", "err", err)
				dbStatus = "error"
				status = http.StatusServiceUnavailable
			}
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}

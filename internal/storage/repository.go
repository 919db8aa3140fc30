package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for the catalog tables.
// It satisfies travel.Source.
type Repository struct {
	q Querier
}

var _ travel.Source = (*Repository)(nil)

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// destinationDetails is the JSONB payload for the list-valued fields.
type destinationDetails struct {
	Images   []string `json:"images"`
	Meetings []string `json:"meetings,omitempty"`
}

// ListDestinations returns every destination in catalog order.
func (r *Repository) ListDestinations(ctx context.Context) ([]travel.Destination, error) {
	const q = `
		SELECT id, country, city, lat, lng, start_date, end_date, category, summary, significance, details
		FROM destinations
		ORDER BY position, id
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	var results []travel.Destination
	for rows.Next() {
		var d travel.Destination
		var start, end time.Time
		var category string
		var detailsJSON []byte

		if err := rows.Scan(
			&d.ID,
			&d.Country,
			&d.City,
			&d.Coordinates.Lat,
			&d.Coordinates.Lng,
			&start,
			&end,
			&category,
			&d.Summary,
			&d.Significance,
			&detailsJSON,
		); err != nil {
			return nil, fmt.Errorf("scanning destination row: %w", err)
		}

		c, err := travel.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("destination %s: %w", d.ID, err)
		}
		d.Category = c
		d.StartDate = travel.Date{Time: start.UTC()}
		d.EndDate = travel.Date{Time: end.UTC()}

		var details destinationDetails
		if err := json.Unmarshal(detailsJSON, &details); err != nil {
			return nil, fmt.Errorf("unmarshaling details for destination %s: %w", d.ID, err)
		}
		d.Images = details.Images
		d.Meetings = details.Meetings

		results = append(results, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destination rows: %w", err)
	}

	return results, nil
}

// ListJourneys returns every journey in catalog order.
func (r *Repository) ListJourneys(ctx context.Context) ([]travel.Journey, error) {
	const q = `
		SELECT id, name, description, year, destination_ids
		FROM journeys
		ORDER BY position, id
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying journeys: %w", err)
	}
	defer rows.Close()

	var results []travel.Journey
	for rows.Next() {
		var j travel.Journey
		var idsJSON []byte

		if err := rows.Scan(&j.ID, &j.Name, &j.Description, &j.Year, &idsJSON); err != nil {
			return nil, fmt.Errorf("scanning journey row: %w", err)
		}

		if err := json.Unmarshal(idsJSON, &j.DestinationIDs); err != nil {
			return nil, fmt.Errorf("unmarshaling destination ids for journey %s: %w", j.ID, err)
		}

		results = append(results, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journey rows: %w", err)
	}

	return results, nil
}

// UpsertDestination inserts or updates a destination at the given catalog position.
func (r *Repository) UpsertDestination(ctx context.Context, position int, d travel.Destination) error {
	detailsJSON, err := json.Marshal(destinationDetails{Images: d.Images, Meetings: d.Meetings})
	if err != nil {
		return fmt.Errorf("marshaling details for destination %s: %w", d.ID, err)
	}

	const q = `
		INSERT INTO destinations (id, position, country, city, lat, lng, start_date, end_date,
		                          category, summary, significance, details, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (id) DO UPDATE
		SET position     = EXCLUDED.position,
		    country      = EXCLUDED.country,
		    city         = EXCLUDED.city,
		    lat          = EXCLUDED.lat,
		    lng          = EXCLUDED.lng,
		    start_date   = EXCLUDED.start_date,
		    end_date     = EXCLUDED.end_date,
		    category     = EXCLUDED.category,
		    summary      = EXCLUDED.summary,
		    significance = EXCLUDED.significance,
		    details      = EXCLUDED.details,
		    updated_at   = EXCLUDED.updated_at
	`

	if _, err := r.q.Exec(ctx, q,
		d.ID, position, d.Country, d.City, d.Coordinates.Lat, d.Coordinates.Lng,
		d.StartDate.Time, d.EndDate.Time, string(d.Category), d.Summary, d.Significance, detailsJSON,
	); err != nil {
		return fmt.Errorf("upserting destination %s: %w", d.ID, err)
	}

	return nil
}

// UpsertJourney inserts or updates a journey at the given catalog position.
func (r *Repository) UpsertJourney(ctx context.Context, position int, j travel.Journey) error {
	ids := j.DestinationIDs
	if ids == nil {
		ids = []string{}
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshaling destination ids for journey %s: %w", j.ID, err)
	}

	const q = `
		INSERT INTO journeys (id, position, name, description, year, destination_ids, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE
		SET position        = EXCLUDED.position,
		    name            = EXCLUDED.name,
		    description     = EXCLUDED.description,
		    year            = EXCLUDED.year,
		    destination_ids = EXCLUDED.destination_ids,
		    updated_at      = EXCLUDED.updated_at
	`

	if _, err := r.q.Exec(ctx, q, j.ID, position, j.Name, j.Description, j.Year, idsJSON); err != nil {
		return fmt.Errorf("upserting journey %s: %w", j.ID, err)
	}

	return nil
}

// Seed writes every record of c, keeping catalog order.
func (r *Repository) Seed(ctx context.Context, c *travel.Catalog) error {
	for i, d := range c.Destinations() {
		if err := r.UpsertDestination(ctx, i, d); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
	}
	for i, j := range c.Journeys() {
		if err := r.UpsertJourney(ctx, i, j); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
	}
	return nil
}

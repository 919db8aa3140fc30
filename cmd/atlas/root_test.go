package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/travel-atlas/internal/travel"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATASET_FILE", "")
	t.Setenv("DATABASE_URL", "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeIDs(t *testing.T, out string) []string {
	t.Helper()
	var dests []travel.Destination
	require.NoError(t, json.Unmarshal([]byte(out), &dests))
	ids := make([]string, len(dests))
	for i, d := range dests {
		ids[i] = d.ID
	}
	return ids
}

func TestVisible_Defaults(t *testing.T) {
	out, err := execute(t, "visible", "--json")
	require.NoError(t, err)
	assert.Len(t, decodeIDs(t, out), 12)
}

func TestVisible_CategoryAndYear(t *testing.T) {
	out, err := execute(t, "visible", "--json", "--category", "personal")
	require.NoError(t, err)
	assert.Equal(t, []string{"switzerland-1970"}, decodeIDs(t, out))

	out, err = execute(t, "visible", "--json", "--year", "1960")
	require.NoError(t, err)
	assert.Len(t, decodeIDs(t, out), 5)

	out, err = execute(t, "visible", "--json", "-c", "diplomatic", "-c", "state-function", "-y", "1963")
	require.NoError(t, err)
	assert.Contains(t, decodeIDs(t, out), "austria-1963")
	assert.NotContains(t, decodeIDs(t, out), "egypt-1964")
}

func TestVisible_EmptyCategoryMeansNone(t *testing.T) {
	out, err := execute(t, "visible", "--json", "--category", "")
	require.NoError(t, err)
	assert.Empty(t, decodeIDs(t, out))
}

func TestVisible_Journey(t *testing.T) {
	out, err := execute(t, "visible", "--json", "--journey", "journey-1956-58", "--year", "1949")
	require.NoError(t, err)
	assert.Equal(t, []string{"india-1956", "japan-1958"}, decodeIDs(t, out))

	_, err = execute(t, "visible", "--journey", "journey-2000")
	require.Error(t, err)
}

func TestVisible_BadCategory(t *testing.T) {
	_, err := execute(t, "visible", "--category", "leisure")
	require.ErrorIs(t, err, travel.ErrUnknownCategory)
}

func TestVisible_TextOutput(t *testing.T) {
	out, err := execute(t, "visible", "--category", "personal")
	require.NoError(t, err)
	assert.Contains(t, out, "switzerland-1970")
	assert.Contains(t, out, "Geneva, Switzerland")
	assert.Contains(t, out, "1970-08-12 to 1970-08-22")
}

func TestSearch(t *testing.T) {
	out, err := execute(t, "search", "--json", "united")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"usa-1949", "uk-1959"}, decodeIDs(t, out))

	out, err = execute(t, "search", "atlantis")
	require.NoError(t, err)
	assert.Contains(t, out, "no destinations")
}

func TestIndex(t *testing.T) {
	out, err := execute(t, "index", "--json")
	require.NoError(t, err)
	ids := decodeIDs(t, out)
	require.Len(t, ids, 12)
	assert.Equal(t, "usa-1949", ids[0])
	assert.Equal(t, "india-1956", ids[1])
}

func TestJourneys(t *testing.T) {
	out, err := execute(t, "journeys", "--json")
	require.NoError(t, err)

	var details []travel.JourneyDetail
	require.NoError(t, json.Unmarshal([]byte(out), &details))
	require.Len(t, details, 5)
	assert.InDelta(t, 100*float64(1969-1949)/float64(1970-1949), details[4].Position, 1e-9)

	out, err = execute(t, "journeys")
	require.NoError(t, err)
	assert.Contains(t, out, "London > Ottawa")
}

func TestJourney(t *testing.T) {
	out, err := execute(t, "journey", "--json", "journey-1959")
	require.NoError(t, err)

	var detail travel.JourneyDetail
	require.NoError(t, json.Unmarshal([]byte(out), &detail))
	assert.Len(t, detail.Route, 2)
	require.NotNil(t, detail.Bounds)

	_, err = execute(t, "journey", "nope")
	require.Error(t, err)
}

func TestYears(t *testing.T) {
	out, err := execute(t, "years", "--json")
	require.NoError(t, err)
	var r travel.YearRange
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, travel.YearRange{Min: 1949, Max: 1970}, r)

	out, err = execute(t, "years", "--json", "1959")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"uk-1959", "canada-1959"}, decodeIDs(t, out))

	_, err = execute(t, "years", "later")
	require.Error(t, err)
}

func TestDataFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "travels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`destinations:
  - id: lisbon-1962
    country: Portugal
    city: Lisbon
    coordinates: [38.7223, -9.1393]
    start_date: "1962-03-01"
    end_date: "1962-03-04"
    category: personal
    summary: Holiday.
    significance: None.
    images: []
journeys: []
`), 0o644))

	out, err := execute(t, "--data", path, "visible", "--json")
	require.NoError(t, err)
	assert.Equal(t, []string{"lisbon-1962"}, decodeIDs(t, out))

	_, err = execute(t, "--data", filepath.Join(dir, "missing.yaml"), "visible")
	require.Error(t, err)
}

func TestSeed_RequiresDatabaseURL(t *testing.T) {
	_, err := execute(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database-url")
}

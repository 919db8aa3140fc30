package storage_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/travel-atlas/internal/storage"
	"github.com/neexbeast/travel-atlas/internal/travel"
	"github.com/neexbeast/travel-atlas/migrations"
)

// ---- mock Querier ----

type mockQuerier struct {
	queryFn func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	execFn  func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (m *mockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return m.queryFn(ctx, sql, args...)
}
func (m *mockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return m.execFn(ctx, sql, args...)
}

// ---- mock pgx.Rows ----

type fakeRows struct {
	rows    [][]any
	idx     int
	rowErr  error
	scanErr error
}

func (f *fakeRows) Next() bool                                   { f.idx++; return f.idx <= len(f.rows) }
func (f *fakeRows) Err() error                                   { return f.rowErr }
func (f *fakeRows) Close()                                       {}
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	row := f.rows[f.idx-1]
	for i, d := range dest {
		if i >= len(row) {
			break
		}
		switch v := d.(type) {
		case *int:
			*v = row[i].(int)
		case *float64:
			*v = row[i].(float64)
		case *string:
			*v = row[i].(string)
		case *[]byte:
			*v = row[i].([]byte)
		case *time.Time:
			*v = row[i].(time.Time)
		}
	}
	return nil
}

// ---- mock MigrationPool ----

type mockMigrationPool struct {
	beginFn func(ctx context.Context) (pgx.Tx, error)
}

func (m *mockMigrationPool) Begin(ctx context.Context) (pgx.Tx, error) {
	return m.beginFn(ctx)
}

// mockTx is a minimal pgx.Tx implementation for testing migrations.
type mockTx struct {
	execFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	commitFn   func(ctx context.Context) error
	rollbackFn func(ctx context.Context) error
}

func (t *mockTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.execFn(ctx, sql, args...)
}
func (t *mockTx) Commit(ctx context.Context) error   { return t.commitFn(ctx) }
func (t *mockTx) Rollback(ctx context.Context) error { return t.rollbackFn(ctx) }

// pgx.Tx has many more methods; none are used by the migration runner.
func (t *mockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (t *mockTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *mockTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *mockTx) LargeObjects() pgx.LargeObjects                             { return pgx.LargeObjects{} }
func (t *mockTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *mockTx) Conn() *pgx.Conn { return nil }

func okTx() *mockTx {
	return &mockTx{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, nil
		},
		commitFn:   func(_ context.Context) error { return nil },
		rollbackFn: func(_ context.Context) error { return nil },
	}
}

// ---- helpers ----

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func londonRow() []any {
	return []any{
		"uk-1959", "United Kingdom", "London", 51.5074, -0.1278,
		date(1959, time.May, 5), date(1959, time.May, 15), "diplomatic",
		"State visit.", "Relations.",
		[]byte(`{"images":["a.jpg"],"meetings":["Queen Elizabeth II"]}`),
	}
}

// ---- ListDestinations ----

func TestListDestinations_Found(t *testing.T) {
	geneva := []any{
		"switzerland-1970", "Switzerland", "Geneva", 46.2044, 6.1432,
		date(1970, time.August, 12), date(1970, time.August, 22), "personal",
		"Vacation.", "Personal.", []byte(`{"images":[]}`),
	}
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rows: [][]any{londonRow(), geneva}}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	got, err := repo.ListDestinations(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "London", got[0].City)
	assert.Equal(t, travel.Diplomatic, got[0].Category)
	assert.Equal(t, travel.Coordinates{Lat: 51.5074, Lng: -0.1278}, got[0].Coordinates)
	assert.Equal(t, "1959-05-05", got[0].StartDate.String())
	assert.Equal(t, []string{"a.jpg"}, got[0].Images)
	assert.Equal(t, []string{"Queen Elizabeth II"}, got[0].Meetings)

	assert.Equal(t, travel.Personal, got[1].Category)
	assert.Empty(t, got[1].Meetings)
}

func TestListDestinations_Empty(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return &fakeRows{}, nil },
	}

	repo := storage.NewRepositoryWithQuerier(q)
	got, err := repo.ListDestinations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListDestinations_QueryError(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListDestinations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying destinations")
}

func TestListDestinations_ScanError(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rows: [][]any{londonRow()}, scanErr: fmt.Errorf("scan failed")}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListDestinations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning")
}

func TestListDestinations_UnknownCategory(t *testing.T) {
	row := londonRow()
	row[7] = "leisure"
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rows: [][]any{row}}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListDestinations(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, travel.ErrUnknownCategory))
}

func TestListDestinations_BadJSON(t *testing.T) {
	row := londonRow()
	row[10] = []byte("not-json")
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rows: [][]any{row}}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListDestinations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling")
}

func TestListDestinations_RowsErr(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rowErr: fmt.Errorf("rows iteration error")}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListDestinations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterating")
}

// ---- ListJourneys ----

func TestListJourneys_Found(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rows: [][]any{
				{"journey-1959", "Commonwealth Connection", "Tour.", 1959, []byte(`["uk-1959","canada-1959"]`)},
			}}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	got, err := repo.ListJourneys(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1959, got[0].Year)
	assert.Equal(t, []string{"uk-1959", "canada-1959"}, got[0].DestinationIDs)
}

func TestListJourneys_BadJSON(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rows: [][]any{{"j", "n", "d", 1959, []byte(`{`)}}}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListJourneys(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling")
}

func TestListJourneys_QueryError(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return nil, fmt.Errorf("query failed")
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListJourneys(context.Background())
	require.Error(t, err)
}

// ---- Load through travel.Source ----

func TestRepository_LoadsCatalog(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
			if strings.Contains(sql, "FROM journeys") {
				return &fakeRows{rows: [][]any{
					{"journey-1959", "Commonwealth", "Tour.", 1959, []byte(`["uk-1959","canada-1959"]`)},
				}}, nil
			}
			return &fakeRows{rows: [][]any{londonRow()}}, nil
		},
	}

	c, err := travel.Load(context.Background(), storage.NewRepositoryWithQuerier(q))
	require.NoError(t, err)

	j, ok := c.Journey("journey-1959")
	require.True(t, ok)
	require.Len(t, c.Resolve(j), 1, "canada-1959 is not stored and is skipped")
}

// ---- Upsert / Seed ----

func TestUpsertDestination_Success(t *testing.T) {
	var capturedArgs []any
	q := &mockQuerier{
		execFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			capturedArgs = args
			return pgconn.CommandTag{}, nil
		},
	}

	d, _ := travel.Reference().Destination("uk-1959")
	repo := storage.NewRepositoryWithQuerier(q)
	require.NoError(t, repo.UpsertDestination(context.Background(), 3, d))

	require.Len(t, capturedArgs, 12)
	assert.Equal(t, "uk-1959", capturedArgs[0])
	assert.Equal(t, 3, capturedArgs[1])
	assert.Equal(t, "diplomatic", capturedArgs[8])
	assert.JSONEq(t, `{"images":["https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800","https://images.unsplash.com/photo-1543832923-44667a44c804?w=800"],"meetings":["Queen Elizabeth II","Prime Minister Harold Macmillan"]}`,
		string(capturedArgs[11].([]byte)))
}

func TestUpsertDestination_DBError(t *testing.T) {
	q := &mockQuerier{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, fmt.Errorf("db error")
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	err := repo.UpsertDestination(context.Background(), 0, travel.Destination{ID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upserting destination")
}

func TestUpsertJourney_NilIDsStoredAsEmptyArray(t *testing.T) {
	var capturedArgs []any
	q := &mockQuerier{
		execFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			capturedArgs = args
			return pgconn.CommandTag{}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	require.NoError(t, repo.UpsertJourney(context.Background(), 0, travel.Journey{ID: "j", Year: 1960}))
	assert.Equal(t, "[]", string(capturedArgs[5].([]byte)))
}

func TestSeed_WritesEveryRecord(t *testing.T) {
	calls := 0
	q := &mockQuerier{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			calls++
			return pgconn.CommandTag{}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	require.NoError(t, repo.Seed(context.Background(), travel.Reference()))
	assert.Equal(t, 17, calls)
}

func TestSeed_StopsOnError(t *testing.T) {
	calls := 0
	q := &mockQuerier{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			calls++
			return pgconn.CommandTag{}, fmt.Errorf("disk full")
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	err := repo.Seed(context.Background(), travel.Reference())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

// ---- NewRepository ----

func TestNewRepository_NotNil(t *testing.T) {
	repo := storage.NewRepository(nil)
	assert.NotNil(t, repo)
}

// ---- RunMigrations tests ----

func TestRunMigrations_EmptyFS(t *testing.T) {
	err := storage.RunMigrations(context.Background(), nil, fstest.MapFS{})
	require.NoError(t, err)
}

func TestRunMigrations_EmbeddedFiles(t *testing.T) {
	var executed []string
	tx := okTx()
	tx.execFn = func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
		executed = append(executed, sql)
		return pgconn.CommandTag{}, nil
	}
	pool := &mockMigrationPool{
		beginFn: func(_ context.Context) (pgx.Tx, error) { return tx, nil },
	}

	require.NoError(t, storage.RunMigrations(context.Background(), pool, migrations.FS))
	require.NotEmpty(t, executed)
	assert.Contains(t, executed[0], "CREATE TABLE IF NOT EXISTS destinations")
}

func TestRunMigrations_LexicographicOrderSkipsNonSQL(t *testing.T) {
	fsys := fstest.MapFS{
		"002_second.sql": {Data: []byte("SELECT 2;")},
		"001_first.sql":  {Data: []byte("SELECT 1;")},
		"README.md":      {Data: []byte("not a migration")},
	}

	var executed []string
	tx := okTx()
	tx.execFn = func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
		executed = append(executed, sql)
		return pgconn.CommandTag{}, nil
	}
	pool := &mockMigrationPool{
		beginFn: func(_ context.Context) (pgx.Tx, error) { return tx, nil },
	}

	require.NoError(t, storage.RunMigrations(context.Background(), pool, fsys))
	assert.Equal(t, []string{"SELECT 1;", "SELECT 2;"}, executed)
}

func TestRunMigrations_BeginError(t *testing.T) {
	fsys := fstest.MapFS{"001_test.sql": {Data: []byte("SELECT 1;")}}
	pool := &mockMigrationPool{
		beginFn: func(_ context.Context) (pgx.Tx, error) { return nil, fmt.Errorf("begin failed") },
	}

	err := storage.RunMigrations(context.Background(), pool, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beginning transaction")
}

func TestRunMigrations_ExecErrorRollsBack(t *testing.T) {
	fsys := fstest.MapFS{"001_test.sql": {Data: []byte("SELEC 1;")}}

	rolledBack := false
	tx := okTx()
	tx.execFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, fmt.Errorf("syntax error")
	}
	tx.rollbackFn = func(_ context.Context) error {
		rolledBack = true
		return nil
	}
	pool := &mockMigrationPool{
		beginFn: func(_ context.Context) (pgx.Tx, error) { return tx, nil },
	}

	err := storage.RunMigrations(context.Background(), pool, fsys)
	require.Error(t, err)
	assert.True(t, rolledBack)
	assert.Contains(t, err.Error(), "001_test.sql")
}

func TestRunMigrations_CommitError(t *testing.T) {
	fsys := fstest.MapFS{"001_test.sql": {Data: []byte("SELECT 1;")}}

	tx := okTx()
	tx.commitFn = func(_ context.Context) error { return fmt.Errorf("commit failed") }
	pool := &mockMigrationPool{
		beginFn: func(_ context.Context) (pgx.Tx, error) { return tx, nil },
	}

	err := storage.RunMigrations(context.Background(), pool, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "committing")
}

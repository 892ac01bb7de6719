package content

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type widgetInput struct {
	ID    *int64
	Name  string
	Order int
}

func (w widgetInput) ItemID() *int64 { return w.ID }

func (w widgetInput) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":          w.Name,
		"display_order": w.Order,
	}
}

type widgetRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	DisplayOrder int    `db:"display_order"`
	Active       bool   `db:"active"`
}

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE widgets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0,
			active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	require.NoError(t, err)
	return db
}

func reconcileWidgets(t *testing.T, db *sqlx.DB, items []widgetInput) {
	t.Helper()
	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, ReconcileCollection(tx, "widgets", items))
	require.NoError(t, tx.Commit())
}

func selectWidgets(t *testing.T, db *sqlx.DB) []widgetRow {
	t.Helper()
	var rows []widgetRow
	require.NoError(t, db.Select(&rows,
		"SELECT id, name, display_order, active FROM widgets ORDER BY display_order ASC, id ASC"))
	return rows
}

func int64Ptr(v int64) *int64 { return &v }

func TestReconcileCollectionInsertsNewRows(t *testing.T) {
	db := newTestDB(t)

	reconcileWidgets(t, db, []widgetInput{
		{Name: "alpha", Order: 0},
		{Name: "beta", Order: 1},
	})

	rows := selectWidgets(t, db)
	require.Len(t, rows, 2)
	assert.Equal(t, "alpha", rows[0].Name)
	assert.Equal(t, "beta", rows[1].Name)
	assert.True(t, rows[0].Active)
	assert.True(t, rows[1].Active)
}

func TestReconcileCollectionUpdatesDeletesAndInserts(t *testing.T) {
	db := newTestDB(t)

	reconcileWidgets(t, db, []widgetInput{
		{Name: "alpha", Order: 0},
		{Name: "beta", Order: 1},
	})
	before := selectWidgets(t, db)
	require.Len(t, before, 2)

	// Keep alpha (renamed), drop beta, add gamma.
	reconcileWidgets(t, db, []widgetInput{
		{ID: int64Ptr(before[0].ID), Name: "alpha v2", Order: 0},
		{Name: "gamma", Order: 1},
	})

	after := selectWidgets(t, db)
	require.Len(t, after, 2)

	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, "alpha v2", after[0].Name)

	assert.Equal(t, "gamma", after[1].Name)
	assert.NotEqual(t, before[1].ID, after[1].ID)

	var betaCount int
	require.NoError(t, db.Get(&betaCount, "SELECT COUNT(*) FROM widgets WHERE id = ?", before[1].ID))
	assert.Zero(t, betaCount)
}

func TestReconcileCollectionEmptySubmissionClears(t *testing.T) {
	db := newTestDB(t)

	reconcileWidgets(t, db, []widgetInput{{Name: "alpha"}, {Name: "beta"}})
	reconcileWidgets(t, db, []widgetInput{})

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM widgets"))
	assert.Zero(t, count)
}

func TestReconcileCollectionIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	reconcileWidgets(t, db, []widgetInput{{Name: "alpha", Order: 0}, {Name: "beta", Order: 1}})
	first := selectWidgets(t, db)
	require.Len(t, first, 2)

	resubmit := []widgetInput{
		{ID: int64Ptr(first[0].ID), Name: first[0].Name, Order: 0},
		{ID: int64Ptr(first[1].ID), Name: first[1].Name, Order: 1},
	}
	reconcileWidgets(t, db, resubmit)
	reconcileWidgets(t, db, resubmit)

	second := selectWidgets(t, db)
	require.Len(t, second, 2)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)
}

func TestReconcileCollectionOrderFollowsSubmission(t *testing.T) {
	db := newTestDB(t)

	reconcileWidgets(t, db, []widgetInput{{Name: "alpha", Order: 0}, {Name: "beta", Order: 1}})
	rows := selectWidgets(t, db)
	require.Len(t, rows, 2)

	// Swap the two rows.
	reconcileWidgets(t, db, []widgetInput{
		{ID: int64Ptr(rows[1].ID), Name: rows[1].Name, Order: 0},
		{ID: int64Ptr(rows[0].ID), Name: rows[0].Name, Order: 1},
	})

	swapped := selectWidgets(t, db)
	require.Len(t, swapped, 2)
	assert.Equal(t, "beta", swapped[0].Name)
	assert.Equal(t, "alpha", swapped[1].Name)
}

func TestReconcileCollectionRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)

	reconcileWidgets(t, db, []widgetInput{{Name: "alpha"}, {Name: "beta"}})

	// A bad submission mid-way must leave the table untouched.
	tx, err := db.Beginx()
	require.NoError(t, err)
	err = ReconcileCollection(tx, "no_such_table", []widgetInput{{Name: "gamma"}})
	require.Error(t, err)
	require.NoError(t, tx.Rollback())

	rows := selectWidgets(t, db)
	assert.Len(t, rows, 2)
}

func TestUpsertSingletonInsertsThenUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)

	tx, err := db.Beginx()
	require.NoError(t, err)
	id, err := UpsertSingleton(tx, "widgets", map[string]interface{}{"name": "only", "display_order": 0})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NotZero(t, id)

	tx, err = db.Beginx()
	require.NoError(t, err)
	id2, err := UpsertSingleton(tx, "widgets", map[string]interface{}{"name": "only v2", "display_order": 0})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, id, id2)

	rows := selectWidgets(t, db)
	require.Len(t, rows, 1)
	assert.Equal(t, "only v2", rows[0].Name)
}

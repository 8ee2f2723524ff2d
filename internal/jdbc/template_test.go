package jdbc

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/transaction"
)

type item struct {
	ID   int64
	Name string
}

func scanItem(row Scanner) (item, error) {
	var it item
	err := row.Scan(&it.ID, &it.Name)
	return it, err
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jdbc.db")
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err, "create table")
	return db
}

func TestTemplate_InsertAndQueryForObject(t *testing.T) {
	ctx := context.Background()
	tmpl := NewTemplate(setupTestDB(t))

	id, err := tmpl.Insert(ctx, `INSERT INTO items (name) VALUES (?)`, "gugu")
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := QueryForObject(ctx, tmpl, scanItem, `SELECT id, name FROM items WHERE id = ?`, id)
	require.NoError(t, err)
	assert.Equal(t, item{ID: id, Name: "gugu"}, got)
}

func TestTemplate_QueryForObject_NoRows(t *testing.T) {
	tmpl := NewTemplate(setupTestDB(t))

	_, err := QueryForObject(context.Background(), tmpl, scanItem, `SELECT id, name FROM items WHERE id = ?`, 42)
	require.ErrorIs(t, err, ErrNoMatchingRecord)
}

func TestTemplate_QueryForObject_ManyRows(t *testing.T) {
	ctx := context.Background()
	tmpl := NewTemplate(setupTestDB(t))
	for _, name := range []string{"a", "b", "c"} {
		_, err := tmpl.Insert(ctx, `INSERT INTO items (name) VALUES (?)`, name)
		require.NoError(t, err)
	}

	_, err := QueryForObject(ctx, tmpl, scanItem, `SELECT id, name FROM items`)
	var ambiguous *AmbiguousRecordCountError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, 3, ambiguous.Count)
	assert.Contains(t, err.Error(), "3")
}

func TestTemplate_Query(t *testing.T) {
	ctx := context.Background()
	tmpl := NewTemplate(setupTestDB(t))

	got, err := Query(ctx, tmpl, scanItem, `SELECT id, name FROM items`)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = tmpl.Insert(ctx, `INSERT INTO items (name) VALUES (?)`, "a")
	require.NoError(t, err)
	_, err = tmpl.Insert(ctx, `INSERT INTO items (name) VALUES (?)`, "b")
	require.NoError(t, err)

	got, err = Query(ctx, tmpl, scanItem, `SELECT id, name FROM items ORDER BY name`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "b", got[1].Name)
}

func TestTemplate_Update(t *testing.T) {
	ctx := context.Background()
	tmpl := NewTemplate(setupTestDB(t))
	id, err := tmpl.Insert(ctx, `INSERT INTO items (name) VALUES (?)`, "a")
	require.NoError(t, err)

	n, err := tmpl.Update(ctx, `UPDATE items SET name = ? WHERE id = ?`, "z", id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = tmpl.Update(ctx, `UPDATE items SET name = ? WHERE id = ?`, "y", id+100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestTemplate_Duplicate(t *testing.T) {
	ctx := context.Background()
	tmpl := NewTemplate(setupTestDB(t))
	_, err := tmpl.Insert(ctx, `INSERT INTO items (name) VALUES (?)`, "a")
	require.NoError(t, err)

	_, err = tmpl.Insert(ctx, `INSERT INTO items (name) VALUES (?)`, "a")
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestTemplate_JoinsBoundTransaction(t *testing.T) {
	db := setupTestDB(t)
	tmpl := NewTemplate(db)
	tm := transaction.NewSQLManager(db)

	status, err := tm.Begin(context.Background(), transaction.Definition{})
	require.NoError(t, err)

	_, err = tmpl.Insert(status.Context(), `INSERT INTO items (name) VALUES (?)`, "in-tx")
	require.NoError(t, err)

	inTx, err := Query(status.Context(), tmpl, scanItem, `SELECT id, name FROM items`)
	require.NoError(t, err)
	assert.Len(t, inTx, 1, "insert should be visible inside the transaction")

	require.NoError(t, tm.Rollback(status))

	after, err := Query(context.Background(), tmpl, scanItem, `SELECT id, name FROM items`)
	require.NoError(t, err)
	assert.Empty(t, after, "rolled back insert should not be visible")
}

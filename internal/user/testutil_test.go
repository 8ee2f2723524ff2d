package user_test

import (
	"bytes"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/jdbc"
	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/migrations"
	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/user"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bufferLogger returns a logger writing to the returned buffer.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.db")
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err, "apply schema")
	return db
}

type testEnv struct {
	db      *sql.DB
	users   *user.Store
	history *user.HistoryStore
	hasher  *user.BcryptHasher
	app     *user.AppService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	tmpl := jdbc.NewTemplate(db)
	env := &testEnv{
		db:      db,
		users:   user.NewStore(tmpl),
		history: user.NewHistoryStore(tmpl),
		hasher:  user.NewBcryptHasher(4),
	}
	env.app = user.NewAppService(env.users, env.history, env.hasher, user.PasswordPolicy{MinLength: 8, MaxAccountSimilarity: 0.9})
	return env
}

package client

import (
	"context"
	"database/sql"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophauth/internal/client/repositories/cookies"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer db.Close()

	require.True(t, tableExists(t, db, "goose_db_version"))
	require.True(t, tableExists(t, db, "cookies"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
}

func TestSessionCookieSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	jar, err := NewPersistentJar(ctx, cookies.NewStore(db), nil)
	require.NoError(t, err)
	jar.SetCookies(mustURL(t, "http://localhost:3000/user/login"),
		[]*http.Cookie{{Name: "sid", Value: "abc", Path: "/", Expires: time.Now().Add(time.Hour)}})
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()
	jar, err = NewPersistentJar(ctx, cookies.NewStore(db), nil)
	require.NoError(t, err)

	got := jar.Cookies(mustURL(t, "http://localhost:3000/user/me"))
	require.Len(t, got, 1)
	require.Equal(t, "abc", got[0].Value)
}

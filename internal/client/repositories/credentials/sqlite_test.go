package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fittlens/fittlens-cli/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func insert(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO credentials(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

var profile = models.UserProfile{
	ID:          "u1",
	DisplayName: "A",
	Email:       "a@x.com",
	DeviceID:    "d1",
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "t1", profile))

	rec, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "t1", rec.Token)
	require.Equal(t, profile, rec.Profile)
}

func TestSave_OverwritesPrevious(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "t1", profile))

	next := profile
	next.ID = "u2"
	require.NoError(t, repo.Save(ctx, "t2", next))

	rec, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "t2", rec.Token)
	require.Equal(t, "u2", rec.Profile.ID)
}

func TestLoad_Empty(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	rec, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestLoad_TokenOnlyIsAbsent(t *testing.T) {
	db := setupDB(t)
	insert(t, db, "auth_token", []byte("t1"))

	rec, err := NewSQLiteRepository(db).Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestLoad_ProfileOnlyIsAbsent(t *testing.T) {
	db := setupDB(t)
	insert(t, db, "user_data", []byte(`{"id":"u1"}`))

	rec, err := NewSQLiteRepository(db).Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestLoad_MalformedProfileIsAbsent(t *testing.T) {
	db := setupDB(t)
	insert(t, db, "auth_token", []byte("t1"))
	insert(t, db, "user_data", []byte("{not-json"))

	rec, err := NewSQLiteRepository(db).Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestClear_RemovesBothKeys(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "t1", profile))
	require.NoError(t, repo.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM credentials`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestClear_AbsentIsNotAnError(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))
}

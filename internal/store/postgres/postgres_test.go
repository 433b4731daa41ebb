package postgres

import (
	"context"
	"os"
	"testing"

	"credgate/authd/internal/model"
	"credgate/authd/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a PostgreSQL store for testing. It skips tests if
// DATABASE_URL is not set, and resets the users table before each run.
func setupTestDB(t *testing.T) (*Store, func()) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set, skipping PostgreSQL tests")
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	require.NoError(t, err)

	_, err = pool.Exec(context.Background(), `
		drop table if exists public.users;

		create table public.users (
		id bigint generated always as identity primary key,
		username text not null unique,
		password_hash text not null,
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
		);
	`)
	require.NoError(t, err)
	pool.Close()

	st, err := NewStore(databaseURL)
	require.NoError(t, err)

	return st, st.Close
}

func TestCreateUser(t *testing.T) {
	st, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	u, err := st.CreateUser(ctx, model.User{Username: "alice", PasswordHash: "$2a$08$hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "$2a$08$hash", u.PasswordHash)
	assert.NotZero(t, u.CreatedAt)

	// Unique index rejects the duplicate.
	_, err = st.CreateUser(ctx, model.User{Username: "alice", PasswordHash: "$2a$08$other"})
	assert.ErrorIs(t, err, store.ErrConflict)

	// Different casing is a different username.
	u2, err := st.CreateUser(ctx, model.User{Username: "Alice", PasswordHash: "$2a$08$hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), u2.ID)
}

func TestGetUserByUsername(t *testing.T) {
	st, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	created, err := st.CreateUser(ctx, model.User{Username: "bob", PasswordHash: "$2a$08$hash"})
	require.NoError(t, err)

	got, err := st.GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "$2a$08$hash", got.PasswordHash)

	_, err = st.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListUsers(t *testing.T) {
	st, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := st.CreateUser(ctx, model.User{Username: "first", PasswordHash: "h1"})
	require.NoError(t, err)
	_, err = st.CreateUser(ctx, model.User{Username: "second", PasswordHash: "h2"})
	require.NoError(t, err)

	users, err := st.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Username)
	assert.Equal(t, "second", users[1].Username)
}

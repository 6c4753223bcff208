package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver(t *testing.T) {
	assert.Equal(t, "pgx", Driver("postgres"))
	assert.Equal(t, "sqlite", Driver("sqlite3"))
	assert.Equal(t, "sqlite", Driver("sqlite"))
	assert.Equal(t, "mysql", Driver("mysql"))
}

func TestMigrations_UpDownStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "site.db")
	database, err := Init("sqlite", path+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	defer Close(database)

	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, database.DB, "sqlite"))

	_, err = database.Exec(`INSERT INTO contact_messages (id, name, email, message, remote_addr, created_at)
		VALUES ('a', 'Ada', 'ada@example.com', 'hi', '127.0.0.1', CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	status, err := MigrationStatus(ctx, database.DB, "sqlite")
	require.NoError(t, err)
	require.NotEmpty(t, status)
	for _, s := range status {
		assert.Equal(t, goose.StateApplied, s.State)
	}

	require.NoError(t, MigrateDown(ctx, database.DB, "sqlite"))
	_, err = database.Exec(`SELECT count(*) FROM contact_messages`)
	assert.Error(t, err)

	// Re-applying after a rollback works.
	require.NoError(t, RunMigrations(ctx, database.DB, "sqlite"))
}

func TestMigrations_UnsupportedDriver(t *testing.T) {
	err := RunMigrations(context.Background(), nil, "oracle")
	assert.ErrorContains(t, err, "unsupported database driver")
}

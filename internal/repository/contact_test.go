package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Abhinay9346/portfolio/internal/db"
	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Init")
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.RunMigrations(context.Background(), database.DB, "sqlite"), "RunMigrations")
	return database
}

func TestContactRepository_CreateAndByID(t *testing.T) {
	repo := NewContactRepository(openTestDB(t))

	message := &model.ContactMessage{
		Name:       "Ada",
		Email:      "ada@example.com",
		Message:    "Hello!",
		RemoteAddr: "127.0.0.1",
	}
	require.NoError(t, repo.Create(message))
	assert.NotEmpty(t, message.ID)
	assert.False(t, message.CreatedAt.IsZero())

	got, err := repo.ByID(message.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "Hello!", got.Message)
	assert.Equal(t, "127.0.0.1", got.RemoteAddr)
}

func TestContactRepository_ByID_NotFound(t *testing.T) {
	repo := NewContactRepository(openTestDB(t))

	_, err := repo.ByID("missing")
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestContactRepository_Recent(t *testing.T) {
	repo := NewContactRepository(openTestDB(t))

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(&model.ContactMessage{
			Name:      name,
			Email:     name + "@example.com",
			Message:   "hi",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	messages, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "third", messages[0].Name)
	assert.Equal(t, "second", messages[1].Name)
}

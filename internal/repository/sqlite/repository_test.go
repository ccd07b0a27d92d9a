package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-arch/internal/model"
	"social-arch/internal/repository"
	pkgLog "social-arch/pkg/log"
)

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	repo, err := New(context.Background(), filepath.Join(t.TempDir(), "social.db"), pkgLog.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	s := model.DefaultSettings()
	require.NoError(t, repo.Save(ctx, repository.KeySettings, s))

	s.DailyReminderTime = "07:30"
	s.EnableDailyReminders = true
	require.NoError(t, repo.Save(ctx, repository.KeySettings, s))

	var got model.Settings
	require.NoError(t, repo.Load(ctx, repository.KeySettings, &got))
	assert.Equal(t, "07:30", got.DailyReminderTime)
	assert.True(t, got.EnableDailyReminders)
}

func TestRepository_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	var notes []model.Note
	err := repo.Load(context.Background(), repository.KeyNotes, &notes)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestRepository_InvalidKey(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Save(context.Background(), "", []string{})
	assert.ErrorIs(t, err, repository.ErrInvalidKey)
}

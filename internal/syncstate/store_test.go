package syncstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-arch/internal/repository/diskv"
	pkgLog "social-arch/pkg/log"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := diskv.New(dir, pkgLog.NewNop())
	require.NoError(t, err)
	st, err := Open(context.Background(), repo)
	require.NoError(t, err)
	return st, dir
}

func TestCursor_Monotonic(t *testing.T) {
	st, _ := openTemp(t)
	ctx := context.Background()

	require.NoError(t, st.SetCursor(ctx, "123", 10))
	require.NoError(t, st.SetCursor(ctx, "123", 7))
	assert.Equal(t, int64(10), st.Cursor("123"))

	require.NoError(t, st.SetCursor(ctx, "123", 11))
	assert.Equal(t, int64(11), st.Cursor("123"))
	assert.Equal(t, int64(0), st.Cursor("456"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	st, dir := openTemp(t)
	ctx := context.Background()

	require.NoError(t, st.SetCursor(ctx, "123", 42))
	require.NoError(t, st.SetLastReminderDate(ctx, "2026-03-01"))
	require.NoError(t, st.SetLastDailyReset(ctx, "2026-03-01"))

	repo, err := diskv.New(dir, pkgLog.NewNop())
	require.NoError(t, err)
	again, err := Open(ctx, repo)
	require.NoError(t, err)

	assert.Equal(t, int64(42), again.Cursor("123"))
	assert.Equal(t, "2026-03-01", again.LastReminderDate())
	assert.Equal(t, "2026-03-01", again.LastDailyReset())
}

func TestStore_FailedSaveLeavesStateUnchanged(t *testing.T) {
	st, _ := openTemp(t)
	require.NoError(t, st.SetCursor(context.Background(), "1", 5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, st.SetCursor(ctx, "1", 6))
	assert.Error(t, st.SetLastReminderDate(ctx, "2026-03-02"))
	assert.Equal(t, int64(5), st.Cursor("1"))
	assert.Equal(t, "", st.LastReminderDate())
}

func TestSnapshot_IsCopy(t *testing.T) {
	st, _ := openTemp(t)
	require.NoError(t, st.SetCursor(context.Background(), "1", 5))

	snap := st.Snapshot()
	snap.Cursors["1"] = 99
	assert.Equal(t, int64(5), st.Cursor("1"))
}

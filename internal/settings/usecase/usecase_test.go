package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-arch/internal/model"
	"social-arch/internal/repository"
	"social-arch/internal/settings"
	pkgLog "social-arch/pkg/log"
)

type memRepo struct {
	records  map[string][]byte
	failSave bool
}

func (r *memRepo) Load(ctx context.Context, key string, v any) error {
	raw, ok := r.records[key]
	if !ok {
		return repository.ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func (r *memRepo) Save(ctx context.Context, key string, v any) error {
	if r.failSave {
		return errors.New("read-only filesystem")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.records[key] = raw
	return nil
}

func (r *memRepo) Close() error { return nil }

func TestNew_SeedsDefaults(t *testing.T) {
	repo := &memRepo{records: map[string][]byte{}}
	uc, err := New(context.Background(), pkgLog.NewNop(), repo, settings.Seed{TelegramBotToken: "1:abc", TelegramChatID: "42"})
	require.NoError(t, err)

	s, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1:abc", s.TelegramBotToken)
	assert.Equal(t, "42", s.TelegramChatID)
	assert.Equal(t, "09:00", s.DailyReminderTime)
	assert.Equal(t, model.LLMSourceCloudGemini, s.LLMSource)
}

func TestNew_MergesStoredOverDefaults(t *testing.T) {
	repo := &memRepo{records: map[string][]byte{
		repository.KeySettings: []byte(`{"enableDailyReminders": true, "dailyReminderTime": "07:15"}`),
	}}
	uc, err := New(context.Background(), pkgLog.NewNop(), repo, settings.Seed{TelegramChatID: "42"})
	require.NoError(t, err)

	s, _ := uc.Get(context.Background())
	assert.True(t, s.EnableDailyReminders)
	assert.Equal(t, "07:15", s.DailyReminderTime)
	assert.Equal(t, "Russian", s.TargetLanguage, "missing field keeps default")
	assert.Equal(t, "42", s.TelegramChatID, "seed fills empty chat id")
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{records: map[string][]byte{}}
	uc, err := New(ctx, pkgLog.NewNop(), repo, settings.Seed{})
	require.NoError(t, err)

	s, _ := uc.Get(ctx)
	s.EnableDailyReminders = true
	s.DailyReminderTime = "08:30"
	s.LLMSource = model.LLMSourceLocal

	got, err := uc.Update(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "08:30", got.DailyReminderTime)

	var stored model.Settings
	require.NoError(t, repo.Load(ctx, repository.KeySettings, &stored))
	assert.Equal(t, model.LLMSourceLocal, stored.LLMSource)
}

func TestUpdate_Validation(t *testing.T) {
	ctx := context.Background()
	uc, err := New(ctx, pkgLog.NewNop(), &memRepo{records: map[string][]byte{}}, settings.Seed{})
	require.NoError(t, err)
	base, _ := uc.Get(ctx)

	bad := base
	bad.DailyReminderTime = "25:00"
	_, err = uc.Update(ctx, bad)
	assert.ErrorIs(t, err, settings.ErrInvalidReminderTime)

	bad = base
	bad.LLMSource = "Carrier Pigeon"
	_, err = uc.Update(ctx, bad)
	assert.ErrorIs(t, err, settings.ErrInvalidLLMSource)

	bad = base
	bad.TrendCategory = "Memes"
	_, err = uc.Update(ctx, bad)
	assert.ErrorIs(t, err, settings.ErrInvalidCategory)

	current, _ := uc.Get(ctx)
	assert.Equal(t, base, current, "rejected updates change nothing")
}

func TestUpdate_PersistenceFailure(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{records: map[string][]byte{}}
	uc, err := New(ctx, pkgLog.NewNop(), repo, settings.Seed{})
	require.NoError(t, err)
	before, _ := uc.Get(ctx)

	repo.failSave = true
	next := before
	next.AutoMonitor = true
	_, err = uc.Update(ctx, next)
	assert.ErrorIs(t, err, settings.ErrPersistence)

	after, _ := uc.Get(ctx)
	assert.False(t, after.AutoMonitor)
}

func TestUpdate_MaskedSecretsResolveAgainstLatest(t *testing.T) {
	ctx := context.Background()
	uc, err := New(ctx, pkgLog.NewNop(), &memRepo{records: map[string][]byte{}}, settings.Seed{TelegramBotToken: "1:old-token"})
	require.NoError(t, err)

	// A form loaded before the token was rotated still carries the old mask.
	stale, _ := uc.Get(ctx)
	stale.TelegramBotToken = settings.MaskSecret(stale.TelegramBotToken)
	stale.AutoMonitor = true

	rotated, _ := uc.Get(ctx)
	rotated.TelegramBotToken = "2:new-token"
	rotated.CustomAPIKey = "sk-live-9876"
	_, err = uc.Update(ctx, rotated)
	require.NoError(t, err)

	stale.CustomAPIKey = settings.MaskSecret("sk-live-9876")
	got, err := uc.Update(ctx, stale)
	require.NoError(t, err)
	assert.Equal(t, "2:new-token", got.TelegramBotToken)
	assert.Equal(t, "sk-live-9876", got.CustomAPIKey)
	assert.True(t, got.AutoMonitor)
}

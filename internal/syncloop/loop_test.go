package syncloop

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-arch/internal/command"
	"social-arch/internal/generation"
	"social-arch/internal/model"
	"social-arch/internal/organizer"
	tgDelivery "social-arch/internal/organizer/delivery/telegram"
	organizerUC "social-arch/internal/organizer/usecase"
	"social-arch/internal/repository"
	"social-arch/internal/repository/diskv"
	"social-arch/internal/syncstate"
	pkgLog "social-arch/pkg/log"
	pkgTelegram "social-arch/pkg/telegram"
)

const testToken = "123:abc"

// ── Fakes ──────────────────────────────────────────────────────────────────

type fakeSettings struct {
	mu sync.Mutex
	s  model.Settings
}

func (f *fakeSettings) Get(ctx context.Context) (model.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.s, nil
}

func (f *fakeSettings) Update(ctx context.Context, s model.Settings) (model.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s = s
	return s, nil
}

type fakeTrends struct{}

func (fakeTrends) Scan(ctx context.Context, c model.TrendCategory) (model.TrendSnapshot, error) {
	return model.TrendSnapshot{}, nil
}
func (fakeTrends) Current(ctx context.Context) model.TrendSnapshot { return model.TrendSnapshot{} }

type fakeGeneration struct{}

func (fakeGeneration) Generate(ctx context.Context, prompt, system string) (string, error) {
	return "", nil
}
func (fakeGeneration) GenerateIdea(ctx context.Context) (string, error) { return "idea", nil }
func (fakeGeneration) ScanTrends(ctx context.Context, c model.TrendCategory) ([]model.TrendItem, error) {
	return nil, nil
}
func (fakeGeneration) Configured(ctx context.Context) bool { return true }

// slowGeneration holds GenerateIdea until release is closed or ctx ends.
type slowGeneration struct {
	fakeGeneration
	release chan struct{}
}

func (g slowGeneration) GenerateIdea(ctx context.Context) (string, error) {
	select {
	case <-g.release:
		return "late idea", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// failingRepo fails every Save for failKey.
type failingRepo struct {
	repository.Repository
	failKey string
}

func (r *failingRepo) Save(ctx context.Context, key string, v any) error {
	if key == r.failKey {
		return errors.New("disk full")
	}
	return r.Repository.Save(ctx, key, v)
}

type panicHandler struct{}

func (panicHandler) Dispatch(ctx context.Context, sender tgDelivery.Sender, chatID string, cmd command.Command) {
	panic("boom")
}
func (panicHandler) Wait() {}

// ideaPanicHandler panics on /idea and passes every other command through.
type ideaPanicHandler struct {
	tgDelivery.Handler
}

func (h ideaPanicHandler) Dispatch(ctx context.Context, sender tgDelivery.Sender, chatID string, cmd command.Command) {
	if cmd.Kind == command.GetIdea {
		panic("idea backend exploded")
	}
	h.Handler.Dispatch(ctx, sender, chatID, cmd)
}

// fakeTelegram serves getUpdates from a queue and records everything sent.
type fakeTelegram struct {
	mu       sync.Mutex
	updates  []pkgTelegram.Update
	offsets  []int64
	sent     []pkgTelegram.SendMessageRequest
	conflict bool
	revoked  bool
	webhook  int
	polls    chan struct{}
	release  chan struct{}
}

func (f *fakeTelegram) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasSuffix(r.URL.Path, "/getUpdates"):
		var req pkgTelegram.GetUpdatesRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		if f.polls != nil {
			f.polls <- struct{}{}
		}
		if f.release != nil {
			<-f.release
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		f.offsets = append(f.offsets, req.Offset)
		if f.conflict {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"ok": false, "error_code": 409, "description": "Conflict: can't use getUpdates method while webhook is active"}`))
			return
		}
		if f.revoked {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"ok": false, "error_code": 401, "description": "Unauthorized"}`))
			return
		}
		var out []pkgTelegram.Update
		for _, u := range f.updates {
			if u.UpdateID >= req.Offset {
				out = append(out, u)
			}
		}
		writeResult(w, out)

	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		var req pkgTelegram.SendMessageRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.sent = append(f.sent, req)
		f.mu.Unlock()
		writeResult(w, map[string]int{"message_id": 1})

	case strings.HasSuffix(r.URL.Path, "/deleteWebhook"):
		f.mu.Lock()
		f.webhook++
		f.conflict = false
		f.mu.Unlock()
		writeResult(w, true)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeTelegram) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	for i, m := range f.sent {
		out[i] = m.Text
	}
	return out
}

func (f *fakeTelegram) chatIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	for i, m := range f.sent {
		out[i] = m.ChatID
	}
	return out
}

func (f *fakeTelegram) polledOffsets() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.offsets...)
}

func (f *fakeTelegram) webhookDeletes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.webhook
}

func writeResult(w http.ResponseWriter, result any) {
	raw, _ := json.Marshal(result)
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": json.RawMessage(raw)})
}

func textUpdate(id int64, chatID int64, text string) pkgTelegram.Update {
	return pkgTelegram.Update{
		UpdateID: id,
		Message: &pkgTelegram.Message{
			MessageID: id,
			From:      &pkgTelegram.User{ID: chatID, FirstName: "Artist"},
			Chat:      &pkgTelegram.Chat{ID: chatID, Type: "private"},
			Text:      text,
		},
	}
}

// ── Fixture ────────────────────────────────────────────────────────────────

type fixture struct {
	tg        *fakeTelegram
	settings  *fakeSettings
	organizer organizer.UseCase
	state     *syncstate.Store
	handler   tgDelivery.Handler
	loop      *Loop
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	stateRepo  func(repository.Repository) repository.Repository
	handler    tgDelivery.Handler
	wrap       func(tgDelivery.Handler) tgDelivery.Handler
	generation generation.UseCase
}

func withStateRepo(wrap func(repository.Repository) repository.Repository) fixtureOption {
	return func(c *fixtureConfig) { c.stateRepo = wrap }
}

func withHandler(h tgDelivery.Handler) fixtureOption {
	return func(c *fixtureConfig) { c.handler = h }
}

func withHandlerWrap(wrap func(tgDelivery.Handler) tgDelivery.Handler) fixtureOption {
	return func(c *fixtureConfig) { c.wrap = wrap }
}

func withGeneration(g generation.UseCase) fixtureOption {
	return func(c *fixtureConfig) { c.generation = g }
}

func newFixture(t *testing.T, tg *fakeTelegram, opts ...fixtureOption) *fixture {
	t.Helper()
	cfg := fixtureConfig{
		stateRepo:  func(r repository.Repository) repository.Repository { return r },
		generation: fakeGeneration{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ts := httptest.NewServer(tg)
	t.Cleanup(ts.Close)

	l := pkgLog.NewNop()
	repo, err := diskv.New(t.TempDir(), l)
	require.NoError(t, err)

	org, err := organizerUC.New(context.Background(), l, repo)
	require.NoError(t, err)

	state, err := syncstate.Open(context.Background(), cfg.stateRepo(repo))
	require.NoError(t, err)

	bots, err := pkgTelegram.NewClients(ts.URL, 2)
	require.NoError(t, err)

	s := model.DefaultSettings()
	s.TelegramBotToken = testToken
	s.TelegramChatID = "42"
	settingsUC := &fakeSettings{s: s}

	handler := cfg.handler
	if handler == nil {
		handler = tgDelivery.New(l, org, fakeTrends{}, cfg.generation, time.Now())
	}
	if cfg.wrap != nil {
		handler = cfg.wrap(handler)
	}

	lp := New(l, settingsUC, org, handler, bots, state, Options{
		Interval:    3 * time.Second,
		PollTimeout: 2 * time.Second,
		Location:    time.UTC,
	})
	lp.now = func() time.Time { return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC) }

	return &fixture{tg: tg, settings: settingsUC, organizer: org, state: state, handler: handler, loop: lp}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestTick_AddTaskCommand(t *testing.T) {
	tg := &fakeTelegram{updates: []pkgTelegram.Update{textUpdate(10, 42, "/task Buy clay")}}
	f := newFixture(t, tg)

	assert.True(t, f.loop.Tick(context.Background()))

	tasks := f.organizer.ListTasks(context.Background())
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy clay", tasks[0].Text)
	assert.Equal(t, []string{`✅ Задача добавлена: "Buy clay"`}, tg.texts())
	assert.Equal(t, "42", tg.chatIDs()[0])
	assert.Equal(t, int64(10), f.state.Cursor("123"))
}

func TestTick_BatchProcessedInOrder(t *testing.T) {
	tg := &fakeTelegram{updates: []pkgTelegram.Update{
		textUpdate(10, 42, "/task A"),
		textUpdate(11, 42, "/task B"),
		textUpdate(12, 42, "/done 1"),
	}}
	f := newFixture(t, tg)

	f.loop.Tick(context.Background())

	// Newest first, so position 1 is B once both adds ran.
	for _, task := range f.organizer.ListTasks(context.Background()) {
		assert.Equal(t, task.Text == "B", task.Completed, task.Text)
	}
	assert.Equal(t, []string{
		`✅ Задача добавлена: "A"`,
		`✅ Задача добавлена: "B"`,
		`👍 Задача "B" выполнена!`,
	}, tg.texts())
	assert.Equal(t, int64(12), f.state.Cursor("123"))
}

func TestTick_CursorIsMonotonic(t *testing.T) {
	tg := &fakeTelegram{updates: []pkgTelegram.Update{
		textUpdate(10, 42, "/task A"),
		textUpdate(11, 42, "/note n"),
	}}
	f := newFixture(t, tg)

	f.loop.Tick(context.Background())
	f.loop.Tick(context.Background())

	assert.Equal(t, []int64{1, 12}, tg.polledOffsets())
	assert.Len(t, f.organizer.ListTasks(context.Background()), 1, "second tick must not redispatch")
	assert.Len(t, tg.texts(), 2)
}

func TestTick_CursorPersistFailureAbortsBatch(t *testing.T) {
	tg := &fakeTelegram{updates: []pkgTelegram.Update{textUpdate(10, 42, "/task Buy clay")}}
	f := newFixture(t, tg, withStateRepo(func(r repository.Repository) repository.Repository {
		return &failingRepo{Repository: r, failKey: repository.KeySyncState}
	}))

	assert.True(t, f.loop.Tick(context.Background()))

	assert.Empty(t, f.organizer.ListTasks(context.Background()))
	assert.Empty(t, tg.texts())
	assert.Equal(t, int64(0), f.state.Cursor("123"))
}

func TestTick_OverlappingTickIsSkipped(t *testing.T) {
	tg := &fakeTelegram{polls: make(chan struct{}, 1), release: make(chan struct{})}
	f := newFixture(t, tg)

	done := make(chan bool)
	go func() { done <- f.loop.Tick(context.Background()) }()

	<-tg.polls
	assert.False(t, f.loop.Tick(context.Background()))
	close(tg.release)
	assert.True(t, <-done)

	st := f.loop.Status()
	assert.Equal(t, int64(1), st.TicksRun)
	assert.Equal(t, int64(1), st.TicksSkipped)
}

func TestTick_NoTokenSkipsCommandPhase(t *testing.T) {
	tg := &fakeTelegram{updates: []pkgTelegram.Update{textUpdate(10, 42, "/task A")}}
	f := newFixture(t, tg)
	f.settings.s.TelegramBotToken = ""

	assert.True(t, f.loop.Tick(context.Background()))
	assert.Empty(t, tg.polledOffsets())
	assert.Empty(t, f.organizer.ListTasks(context.Background()))
}

func TestTick_IgnoresNonCommandsAndBots(t *testing.T) {
	fromBot := textUpdate(11, 42, "/task spam")
	fromBot.Message.From.IsBot = true
	tg := &fakeTelegram{updates: []pkgTelegram.Update{
		textUpdate(10, 42, "hello"),
		fromBot,
		{UpdateID: 12},
	}}
	f := newFixture(t, tg)

	f.loop.Tick(context.Background())

	assert.Empty(t, f.organizer.ListTasks(context.Background()))
	assert.Empty(t, tg.texts())
	assert.Equal(t, int64(12), f.state.Cursor("123"))
}

func TestTick_ConflictDeletesWebhook(t *testing.T) {
	tg := &fakeTelegram{conflict: true, updates: []pkgTelegram.Update{textUpdate(10, 42, "/task A")}}
	f := newFixture(t, tg)

	f.loop.Tick(context.Background())
	assert.Equal(t, 1, tg.webhookDeletes())
	assert.Empty(t, f.organizer.ListTasks(context.Background()))

	f.loop.Tick(context.Background())
	assert.Len(t, f.organizer.ListTasks(context.Background()), 1)
}

func TestTick_RecoversFromPanic(t *testing.T) {
	tg := &fakeTelegram{updates: []pkgTelegram.Update{textUpdate(10, 42, "/task A")}}
	f := newFixture(t, tg, withHandler(panicHandler{}))

	assert.True(t, f.loop.Tick(context.Background()))
	// The lock was released, so the next tick runs.
	assert.True(t, f.loop.Tick(context.Background()))
	assert.Equal(t, int64(2), f.loop.Status().TicksRun)
}

func TestTick_PanicInOneUpdateKeepsBatchAndReminder(t *testing.T) {
	tg := &fakeTelegram{updates: []pkgTelegram.Update{
		textUpdate(10, 42, "/idea"),
		textUpdate(11, 42, "/task Buy clay"),
	}}
	f := newFixture(t, tg, withHandlerWrap(func(h tgDelivery.Handler) tgDelivery.Handler {
		return ideaPanicHandler{Handler: h}
	}))
	f.settings.s.EnableDailyReminders = true
	f.settings.s.DailyReminderTime = "12:00"

	assert.True(t, f.loop.Tick(context.Background()))

	assert.Equal(t, int64(11), f.state.Cursor("123"))
	tasks := f.organizer.ListTasks(context.Background())
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy clay", tasks[0].Text)
	assert.Equal(t, []string{
		`✅ Задача добавлена: "Buy clay"`,
		"🌅 *Доброе утро! Ваши задачи на сегодня:*\n\n▫️ Buy clay",
	}, tg.texts())
	assert.Equal(t, "2026-03-01", f.state.LastReminderDate())
}

func TestTick_SlowIdeaDoesNotHoldTheTick(t *testing.T) {
	gen := slowGeneration{release: make(chan struct{})}
	tg := &fakeTelegram{updates: []pkgTelegram.Update{textUpdate(10, 42, "/idea")}}
	f := newFixture(t, tg, withGeneration(gen))
	f.settings.s.EnableDailyReminders = true
	f.settings.s.DailyReminderTime = "09:00"

	clock := time.Date(2026, time.March, 1, 8, 59, 57, 0, time.UTC)
	f.loop.now = func() time.Time { return clock }

	done := make(chan bool)
	go func() { done <- f.loop.Tick(context.Background()) }()
	select {
	case ran := <-done:
		assert.True(t, ran)
	case <-time.After(3 * time.Second):
		close(gen.release)
		t.Fatal("tick waited for idea generation")
	}
	assert.Equal(t, []string{"💡 *Генерирую идею...*"}, tg.texts())

	clock = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	assert.True(t, f.loop.Tick(context.Background()), "next tick must not be skipped")
	assert.Equal(t, "2026-03-01", f.state.LastReminderDate())

	close(gen.release)
	f.handler.Wait()
	texts := tg.texts()
	require.Len(t, texts, 3)
	assert.Equal(t, "🌅 *Доброе утро!* У вас пока нет задач на сегодня.", texts[1])
	assert.Equal(t, "💎 *Идея для контента:*\n\nlate idea", texts[2])
}

func TestTick_DailyPhaseReadsClockAfterCommands(t *testing.T) {
	tg := &fakeTelegram{updates: []pkgTelegram.Update{textUpdate(10, 42, "/task Glaze")}}
	f := newFixture(t, tg)
	f.settings.s.EnableDailyReminders = true
	f.settings.s.DailyReminderTime = "09:00"

	// Tick start is 08:59:59; by the time commands are done it is 09:00.
	var calls int
	f.loop.now = func() time.Time {
		calls++
		if calls == 1 {
			return time.Date(2026, time.March, 1, 8, 59, 59, 0, time.UTC)
		}
		return time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	}

	f.loop.Tick(context.Background())

	assert.Equal(t, "2026-03-01", f.state.LastReminderDate())
	assert.Len(t, tg.texts(), 2)
}

func TestTick_RevokedTokenStillRunsDailyPhase(t *testing.T) {
	tg := &fakeTelegram{revoked: true, updates: []pkgTelegram.Update{textUpdate(10, 42, "/task A")}}
	f := newFixture(t, tg)
	f.settings.s.EnableDailyReminders = true
	f.settings.s.DailyReminderTime = "12:00"

	assert.True(t, f.loop.Tick(context.Background()))

	assert.Empty(t, f.organizer.ListTasks(context.Background()))
	assert.Equal(t, 0, tg.webhookDeletes())
	assert.Equal(t, int64(0), f.state.Cursor("123"))
	assert.Equal(t, "2026-03-01", f.state.LastReminderDate())
}

func TestTick_ReminderFiresOncePerDay(t *testing.T) {
	tg := &fakeTelegram{}
	f := newFixture(t, tg)
	f.settings.s.EnableDailyReminders = true
	f.settings.s.DailyReminderTime = "09:00"
	_, err := f.organizer.AddTask(context.Background(), organizer.AddTaskInput{Text: "Render scene"})
	require.NoError(t, err)

	clock := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	f.loop.now = func() time.Time { return clock }

	for i := 0; i < 20; i++ {
		f.loop.Tick(context.Background())
		clock = clock.Add(3 * time.Second)
	}

	want := "🌅 *Доброе утро! Ваши задачи на сегодня:*\n\n▫️ Render scene"
	assert.Equal(t, []string{want}, tg.texts())
	assert.Equal(t, "42", tg.chatIDs()[0])
	assert.Equal(t, "2026-03-01", f.loop.Status().LastReminderDate)

	clock = time.Date(2026, time.March, 2, 9, 0, 30, 0, time.UTC)
	f.loop.Tick(context.Background())
	assert.Len(t, tg.texts(), 2)
}

func TestTick_ReminderWithoutChatAdvancesWatermark(t *testing.T) {
	tg := &fakeTelegram{}
	f := newFixture(t, tg)
	f.settings.s.EnableDailyReminders = true
	f.settings.s.DailyReminderTime = "12:00"
	f.settings.s.TelegramChatID = ""

	f.loop.Tick(context.Background())

	assert.Empty(t, tg.texts())
	assert.Equal(t, "2026-03-01", f.state.LastReminderDate())
}

func TestTick_DailyTasksResetOnNewDate(t *testing.T) {
	tg := &fakeTelegram{}
	f := newFixture(t, tg)
	ctx := context.Background()

	task, err := f.organizer.AddTask(ctx, organizer.AddTaskInput{Text: "Sketch", IsDaily: true})
	require.NoError(t, err)

	// First tick only records the date.
	f.loop.Tick(ctx)
	require.NoError(t, f.organizer.ToggleTask(ctx, task.ID))

	f.loop.Tick(ctx)
	assert.True(t, f.organizer.ListTasks(ctx)[0].Completed, "same day keeps it done")

	f.loop.now = func() time.Time { return time.Date(2026, time.March, 2, 0, 0, 3, 0, time.UTC) }
	f.loop.Tick(ctx)
	assert.False(t, f.organizer.ListTasks(ctx)[0].Completed)
	assert.Equal(t, "2026-03-02", f.state.LastDailyReset())
}

func TestRun_StopsOnCancel(t *testing.T) {
	tg := &fakeTelegram{}
	f := newFixture(t, tg)
	f.loop.opts.Interval = 10 * time.Millisecond
	f.loop.opts.PollTimeout = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.loop.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return f.loop.Status().TicksRun > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.False(t, f.loop.Status().Running)
}

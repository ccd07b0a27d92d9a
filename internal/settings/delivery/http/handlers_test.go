package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-arch/internal/model"
	"social-arch/internal/settings"
	"social-arch/pkg/log"
	"social-arch/pkg/response"
)

type fakeUseCase struct {
	s   model.Settings
	err error
}

func (f *fakeUseCase) Get(ctx context.Context) (model.Settings, error) { return f.s, nil }

func (f *fakeUseCase) Update(ctx context.Context, s model.Settings) (model.Settings, error) {
	if f.err != nil {
		return model.Settings{}, f.err
	}
	f.s = s
	return s, nil
}

func newTestRouter(uc settings.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	return r
}

func doJSON(r *gin.Engine, method string, body any) (*httptest.ResponseRecorder, response.Resp) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, "/api/v1/settings", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestGet_MasksSecrets(t *testing.T) {
	s := model.DefaultSettings()
	s.TelegramBotToken = "123456:ABCDEFsecret"
	s.CustomAPIKey = "sk-1234"
	r := newTestRouter(&fakeUseCase{s: s})

	w, resp := doJSON(r, http.MethodGet, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	assert.Equal(t, settings.SecretMask+"cret", data["telegramBotToken"])
	assert.Equal(t, settings.SecretMask+"1234", data["customApiKey"])
	assert.Equal(t, "09:00", data["dailyReminderTime"])
}

func TestUpdate_ForwardsMaskedSecrets(t *testing.T) {
	s := model.DefaultSettings()
	s.TelegramBotToken = "123456:ABCDEFsecret"
	uc := &fakeUseCase{s: s}
	r := newTestRouter(uc)

	body := newSettingsResp(s)
	body.EnableDailyReminders = true
	body.DailyReminderTime = "07:30"
	body.TelegramChatID = " 42 "

	w, _ := doJSON(r, http.MethodPut, body)
	require.Equal(t, http.StatusOK, w.Code)
	// The usecase resolves masked values under its lock.
	assert.Equal(t, settings.MaskSecret("123456:ABCDEFsecret"), uc.s.TelegramBotToken)
	assert.Equal(t, "42", uc.s.TelegramChatID)
	assert.True(t, uc.s.EnableDailyReminders)
	assert.Equal(t, "07:30", uc.s.DailyReminderTime)
}

func TestUpdate_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid time", settings.ErrInvalidReminderTime, http.StatusBadRequest},
		{"invalid source", settings.ErrInvalidLLMSource, http.StatusBadRequest},
		{"persistence", settings.ErrPersistence, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeUseCase{s: model.DefaultSettings(), err: tt.err})
			w, _ := doJSON(r, http.MethodPut, newSettingsResp(model.DefaultSettings()))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

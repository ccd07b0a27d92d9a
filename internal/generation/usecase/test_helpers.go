package usecase

import (
	"context"
	"errors"
	"sync"

	"social-arch/internal/model"
	"social-arch/pkg/llmprovider"
	pkgLog "social-arch/pkg/log"
)

type fakeSettings struct {
	s model.Settings
}

func (f *fakeSettings) Get(ctx context.Context) (model.Settings, error) { return f.s, nil }

func (f *fakeSettings) Update(ctx context.Context, s model.Settings) (model.Settings, error) {
	f.s = s
	return s, nil
}

// fakeProvider records requests and answers from a queue of replies.
type fakeProvider struct {
	mu       sync.Mutex
	replies  []string
	err      error
	requests []*llmprovider.Request
	ready    bool
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		return nil, errors.New("no reply queued")
	}
	text := f.replies[0]
	f.replies = f.replies[1:]
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: text}}},
		Usage:   &llmprovider.Usage{},
	}, nil
}

func (f *fakeProvider) Name() string     { return "fake" }
func (f *fakeProvider) Model() string    { return "fake-model" }
func (f *fakeProvider) Configured() bool { return f.ready }

func newTestUseCase(s model.Settings, cloud Cloud, custom *fakeProvider) *implUseCase {
	uc := New(pkgLog.NewNop(), &fakeSettings{s: s}, cloud).(*implUseCase)
	if custom != nil {
		uc.newCustom = func(model.Settings) (llmprovider.Provider, error) { return custom, nil }
	}
	return uc
}

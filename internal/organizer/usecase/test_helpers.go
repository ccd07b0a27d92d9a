package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"social-arch/internal/repository"
)

var errDiskFull = errors.New("disk full")

// memRepo is an in-memory repository.Repository whose writes can be made to fail.
type memRepo struct {
	mu       sync.Mutex
	records  map[string][]byte
	failSave bool
	saves    int
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[string][]byte{}}
}

func (r *memRepo) Load(ctx context.Context, key string, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.records[key]
	if !ok {
		return repository.ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func (r *memRepo) Save(ctx context.Context, key string, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return fmt.Errorf("save %s: %w", key, errDiskFull)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.records[key] = raw
	r.saves++
	return nil
}

func (r *memRepo) Close() error { return nil }

func (r *memRepo) setFailSave(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failSave = fail
}

// sequentialIDs returns ids "t1", "t2", ... so assertions stay readable.
func sequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func fixedClock() func() time.Time {
	ts := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

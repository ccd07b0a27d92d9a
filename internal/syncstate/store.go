// Package syncstate persists the bookkeeping of the sync loop: the update
// cursor per bot and the daily watermarks.
package syncstate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"social-arch/internal/model"
	"social-arch/internal/repository"
)

// Store is a write-through view of the sync_state record.
// Every setter persists a copy first and only publishes it on success.
type Store struct {
	repo repository.Repository

	mu    sync.Mutex
	state model.SyncState
}

// Open loads the persisted state; a missing record starts empty.
func Open(ctx context.Context, repo repository.Repository) (*Store, error) {
	var st model.SyncState
	if err := repo.Load(ctx, repository.KeySyncState, &st); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load sync state: %w", err)
	}
	if st.Cursors == nil {
		st.Cursors = map[string]int64{}
	}
	return &Store{repo: repo, state: st}, nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() model.SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Cursor returns the last processed update id of botID.
func (s *Store) Cursor(botID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cursor(botID)
}

// SetCursor stores id for botID. Cursors never move backwards; a lower id is ignored.
func (s *Store) SetCursor(ctx context.Context, botID string, id int64) error {
	return s.update(ctx, func(st *model.SyncState) bool {
		if id <= st.Cursors[botID] {
			return false
		}
		st.Cursors[botID] = id
		return true
	})
}

func (s *Store) LastReminderDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LastReminderDate
}

func (s *Store) SetLastReminderDate(ctx context.Context, date string) error {
	return s.update(ctx, func(st *model.SyncState) bool {
		if st.LastReminderDate == date {
			return false
		}
		st.LastReminderDate = date
		return true
	})
}

func (s *Store) LastDailyReset() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LastDailyReset
}

func (s *Store) SetLastDailyReset(ctx context.Context, date string) error {
	return s.update(ctx, func(st *model.SyncState) bool {
		if st.LastDailyReset == date {
			return false
		}
		st.LastDailyReset = date
		return true
	})
}

// update applies mutate to a copy and persists it when mutate reports a change.
func (s *Store) update(ctx context.Context, mutate func(*model.SyncState) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneState(s.state)
	if !mutate(&next) {
		return nil
	}
	if err := s.repo.Save(ctx, repository.KeySyncState, next); err != nil {
		return fmt.Errorf("save sync state: %w", err)
	}
	s.state = next
	return nil
}

func cloneState(st model.SyncState) model.SyncState {
	out := st
	out.Cursors = make(map[string]int64, len(st.Cursors))
	for k, v := range st.Cursors {
		out.Cursors[k] = v
	}
	return out
}

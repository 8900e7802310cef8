package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// ActionStore is an in-memory port.ActionStore. It backs tests and the
// storage-free development mode; the compare-and-swap contract of
// Transition is the same one the postgres adapter provides.
type ActionStore struct {
	mu      sync.Mutex
	actions map[string]*domain.AutomationAction
}

// NewActionStore returns an empty store.
func NewActionStore() *ActionStore {
	return &ActionStore{actions: make(map[string]*domain.AutomationAction)}
}

var _ port.ActionStore = (*ActionStore)(nil)

// Create stores a copy of the action.
func (s *ActionStore) Create(_ context.Context, action *domain.AutomationAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *action
	s.actions[action.ID] = &cp
	return nil
}

// Get returns a copy of the action or ErrActionNotFound.
func (s *ActionStore) Get(_ context.Context, id string) (*domain.AutomationAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	act, ok := s.actions[id]
	if !ok {
		return nil, port.ErrActionNotFound
	}
	cp := *act
	return &cp, nil
}

// ListPending returns pending actions newest first.
func (s *ActionStore) ListPending(_ context.Context, campaignID *string) ([]domain.AutomationAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AutomationAction
	for _, act := range s.actions {
		if act.Status != domain.StatusPending {
			continue
		}
		if campaignID != nil && act.CampaignID != *campaignID {
			continue
		}
		out = append(out, *act)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Transition applies a status change under the store lock, so exactly
// one of two concurrent callers wins.
func (s *ActionStore) Transition(_ context.Context, id string, from, to domain.ActionStatus, upd port.TransitionUpdate) (*domain.AutomationAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	act, ok := s.actions[id]
	if !ok {
		return nil, port.ErrActionNotFound
	}
	if act.Status != from || !domain.CanTransition(from, to) {
		return nil, port.ErrInvalidTransition
	}
	act.Status = to
	if upd.Note != nil {
		act.Note = *upd.Note
	}
	if upd.ExecError != nil {
		act.ExecError = *upd.ExecError
	}
	act.UpdatedAt = time.Now().UTC()
	cp := *act
	return &cp, nil
}

// ExpirePending sweeps stale pending actions into the expired state.
func (s *ActionStore) ExpirePending(_ context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var swept int64
	for _, act := range s.actions {
		if act.Status == domain.StatusPending && act.CreatedAt.Before(olderThan) {
			act.Status = domain.StatusExpired
			act.UpdatedAt = time.Now().UTC()
			swept++
		}
	}
	return swept, nil
}

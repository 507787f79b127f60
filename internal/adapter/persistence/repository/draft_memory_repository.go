package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"fabar_drinks/internal/domain/entities"
	"fabar_drinks/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrDraftAlreadyExists = errors.New("draft already exists")

// DraftMemoryRepository keeps drafts in process memory. Drafts vanish on
// restart, which matches a visit-scoped form.
type DraftMemoryRepository struct {
	mu     sync.Mutex
	drafts map[string]entities.Session
	now    func() time.Time
	log    *zap.Logger
}

var _ interfaces.IDraftRepository = (*DraftMemoryRepository)(nil)

func NewDraftMemoryRepository(log *zap.Logger) *DraftMemoryRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &DraftMemoryRepository{
		drafts: make(map[string]entities.Session),
		now:    time.Now,
		log:    log,
	}
}

func (r *DraftMemoryRepository) Create(_ context.Context, s entities.Session) (entities.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.drafts[s.ID]; ok && !existing.Expired(r.now()) {
		return entities.Session{}, ErrDraftAlreadyExists
	}
	r.drafts[s.ID] = cloneSession(s)
	return cloneSession(s), nil
}

func (r *DraftMemoryRepository) GetByID(_ context.Context, id string) (entities.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.drafts[id]
	if !ok || s.Expired(r.now()) {
		return entities.Session{}, nil
	}
	return cloneSession(s), nil
}

func (r *DraftMemoryRepository) Update(_ context.Context, id string, fn func(s *entities.Session) error) (entities.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.drafts[id]
	if !ok || s.Expired(r.now()) {
		return entities.Session{}, nil
	}

	work := cloneSession(s)
	if err := fn(&work); err != nil {
		return entities.Session{}, err
	}
	r.drafts[id] = work
	return cloneSession(work), nil
}

// Sweep drops expired drafts and reports how many were removed.
func (r *DraftMemoryRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, s := range r.drafts {
		if s.Expired(now) {
			delete(r.drafts, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is cancelled.
func (r *DraftMemoryRepository) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.log.Info("draft janitor started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			r.log.Info("draft janitor stopped")
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.Debug("expired drafts removed", zap.Int("count", n))
			}
		}
	}
}

func cloneSession(s entities.Session) entities.Session {
	out := s
	out.Form = s.Form.Clone()
	return out
}

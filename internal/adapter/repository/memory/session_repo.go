package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
)

type sessionEntry struct {
	session   *entity.Session
	expiresAt time.Time
}

// SessionRepo is a process-local session store for single instance
// deployments and tests. Stored values are copies. Like the redis store, a
// session expires ttl after its last write.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

type Option func(*SessionRepo)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *SessionRepo) { r.now = now }
}

func NewSessionRepo(ttl time.Duration, opts ...Option) *SessionRepo {
	r := &SessionRepo{
		sessions: make(map[uuid.UUID]sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SessionRepo) entry(session *entity.Session) sessionEntry {
	return sessionEntry{session: session.Clone(), expiresAt: r.now().Add(r.ttl)}
}

// live returns the stored entry for id unless it is missing or expired.
// Callers hold mu.
func (r *SessionRepo) live(id uuid.UUID) (sessionEntry, bool) {
	e, ok := r.sessions[id]
	if !ok || !r.now().Before(e.expiresAt) {
		return sessionEntry{}, false
	}
	return e, true
}

func (r *SessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = r.entry(session)
	return nil
}

func (r *SessionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.live(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return e.session.Clone(), nil
}

func (r *SessionRepo) Update(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live(session.ID); !ok {
		return domain.ErrSessionNotFound
	}
	r.sessions[session.ID] = r.entry(session)
	return nil
}

func (r *SessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.live(id)
	delete(r.sessions, id)
	if !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Sweep drops expired sessions and reports how many were removed.
func (r *SessionRepo) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for id, e := range r.sessions {
		if !now.Before(e.expiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired ones included until
// the next sweep.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *SessionRepo) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

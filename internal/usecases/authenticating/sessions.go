package authenticating

import (
	"sync"
	"time"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/session"
)

// sessionRegistry guarda as sessões abertas em memória. Reiniciar o processo encerra todas.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	now      func() time.Time
}

type sessionEntry struct {
	identity  *domain.Identity
	expiresAt time.Time
	listeners map[int]session.ChangeFunc
	nextID    int
}

func (e *sessionEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func newSessionRegistry(now func() time.Time) *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*sessionEntry), now: now}
}

func (r *sessionRegistry) open(sessionID string, identity domain.Identity, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = &sessionEntry{
		identity:  &identity,
		expiresAt: expiresAt,
		listeners: make(map[int]session.ChangeFunc),
	}
}

// identity devolve nil para sessão encerrada ou vencida; a vencida só sai do mapa em expire
func (r *sessionRegistry) identity(sessionID string, now time.Time) *domain.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok || entry.identity == nil || entry.expired(now) {
		return nil
	}
	copied := *entry.identity
	return &copied
}

// close encerra a sessão e avisa os ouvintes com nil.
// Os callbacks rodam sob r.mu para que a ordem login/logout seja a mesma para todos;
// eles não podem chamar o registry.
func (r *sessionRegistry) close(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	delete(r.sessions, sessionID)

	for _, cb := range entry.listeners {
		cb(nil)
	}
	return true
}

// expire remove as sessões vencidas em now, avisando os ouvintes com nil, e devolve os IDs removidos
func (r *sessionRegistry) expire(now time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for sessionID, entry := range r.sessions {
		if !entry.expired(now) {
			continue
		}
		delete(r.sessions, sessionID)
		for _, cb := range entry.listeners {
			cb(nil)
		}
		removed = append(removed, sessionID)
	}
	return removed
}

func (r *sessionRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *sessionRegistry) onChange(sessionID string, cb session.ChangeFunc) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok || entry.expired(r.now()) {
		cb(nil)
		return func() {}
	}

	entry.nextID++
	id := entry.nextID
	entry.listeners[id] = cb

	current := *entry.identity
	cb(&current)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if entry, ok := r.sessions[sessionID]; ok {
			delete(entry.listeners, id)
		}
	}
}

// sessionProvider expõe uma sessão como session.Provider
type sessionProvider struct {
	registry  *sessionRegistry
	sessionID string
}

func (p *sessionProvider) OnChange(cb session.ChangeFunc) func() {
	return p.registry.onChange(p.sessionID, cb)
}

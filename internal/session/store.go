// Package session guarda a identidade autenticada de uma sessão, alimentada pelas
// notificações do provedor de autenticação.
package session

import (
	"sync"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

// ChangeFunc recebe a identidade atual, ou nil depois do logout
type ChangeFunc func(identity *domain.Identity)

//go:generate mockgen -source=store.go -destination=mocks/provider_mock.go -package=mocks
type Provider interface {
	// OnChange registra cb, que deve ser chamado imediatamente com a identidade atual
	// e a cada login/logout. Devolve a função que cancela o registro.
	OnChange(cb ChangeFunc) (unsubscribe func())
}

// Store é alimentado apenas pelo callback do provedor; os demais só leem
type Store struct {
	provider Provider

	mu          sync.RWMutex
	current     *domain.Identity
	unsubscribe func()
	listeners   map[int]ChangeFunc
	nextID      int
	closed      bool
}

func NewStore(provider Provider) *Store {
	return &Store{
		provider:  provider,
		listeners: make(map[int]ChangeFunc),
	}
}

// Subscribe registra o store no provedor. Chamadas repetidas não registram de novo.
func (s *Store) Subscribe() {
	s.mu.Lock()
	if s.unsubscribe != nil || s.closed {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	unsubscribe := s.provider.OnChange(s.set)

	s.mu.Lock()
	if s.closed || s.unsubscribe != nil {
		s.mu.Unlock()
		unsubscribe()
		return
	}
	s.unsubscribe = unsubscribe
	s.mu.Unlock()
}

func (s *Store) set(identity *domain.Identity) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	if identity != nil {
		copied := *identity
		identity = &copied
	}
	s.current = identity

	listeners := make([]ChangeFunc, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(identity)
	}
}

// CurrentUser devolve a última identidade conhecida; nil antes do primeiro callback ou após logout
func (s *Store) CurrentUser() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Listen avisa fn a cada mudança de identidade
func (s *Store) Listen(fn ChangeFunc) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Close cancela o registro no provedor. Idempotente.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.current = nil
	s.listeners = make(map[int]ChangeFunc)
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

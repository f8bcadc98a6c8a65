package realtime

import (
	"context"
	"errors"
	"sync"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

var ErrMirrorStarted = errors.New("realtime: mirror já iniciado")

// Mirror mantém o último snapshot decodificado de um documento, para leituras síncronas
type Mirror[T any] struct {
	bridge *Bridge
	ref    domain.DocumentRef

	mu     sync.RWMutex
	latest *T
	loaded bool
	sub    *Subscription
	ready  chan struct{}
	once   sync.Once
}

func NewMirror[T any](bridge *Bridge, ref domain.DocumentRef) *Mirror[T] {
	return &Mirror[T]{
		bridge: bridge,
		ref:    ref,
		ready:  make(chan struct{}),
	}
}

func (m *Mirror[T]) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sub != nil {
		return ErrMirrorStarted
	}

	sub, err := WatchDocument(ctx, m.bridge, m.ref, m.set)
	if err != nil {
		return err
	}
	m.sub = sub
	return nil
}

func (m *Mirror[T]) set(snapshot *T) {
	m.mu.Lock()
	m.latest = snapshot
	m.loaded = true
	m.mu.Unlock()

	m.once.Do(func() { close(m.ready) })
}

// Latest devolve o último snapshot (nil se o documento não existe) e se algum já chegou
func (m *Mirror[T]) Latest() (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest, m.loaded
}

// Ready é fechado quando o primeiro snapshot chega
func (m *Mirror[T]) Ready() <-chan struct{} {
	return m.ready
}

func (m *Mirror[T]) Document() domain.DocumentRef {
	return m.ref
}

func (m *Mirror[T]) Close() {
	m.mu.Lock()
	sub := m.sub
	m.mu.Unlock()

	if sub != nil {
		sub.Unwatch()
	}
}

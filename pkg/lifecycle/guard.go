// Package lifecycle evita atualizações tardias depois que a visão que as pediu terminou
package lifecycle

import (
	"context"
	"sync"
)

// Guard fica vivo até End ser chamado ou o contexto pai terminar
type Guard struct {
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	ended  bool
}

func NewGuard(parent context.Context) *Guard {
	ctx, cancel := context.WithCancel(parent)
	return &Guard{ctx: ctx, cancel: cancel}
}

// Context é cancelado quando o guard termina; use-o nas chamadas em andamento
func (g *Guard) Context() context.Context {
	return g.ctx
}

func (g *Guard) Alive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.aliveLocked()
}

func (g *Guard) aliveLocked() bool {
	return !g.ended && g.ctx.Err() == nil
}

// Apply executa fn apenas se o guard ainda estiver vivo. End espera fn terminar.
func (g *Guard) Apply(fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.aliveLocked() {
		return false
	}
	fn()
	return true
}

// End encerra o guard. Idempotente; nenhum Apply executa depois que End retorna.
func (g *Guard) End() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ended = true
	g.cancel()
}

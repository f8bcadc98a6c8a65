// Package workspace guarda o contexto de cada sessão autenticada: identidade,
// histórico de desfazer das notificações e alterações locais de pedidos.
package workspace

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/internal/session"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
)

var ErrRegistryClosed = errors.New("workspace: registro encerrado")

// ProviderFactory devolve o provedor de identidade de uma sessão
type ProviderFactory func(sessionID string) session.Provider

type Workspace struct {
	SessionID string
	Session   *session.Store
	History   *dispatching.NotificationHistory
	Orders    *dispatching.OrderOverlay
}

type Registry struct {
	providers ProviderFactory

	mu         sync.Mutex
	workspaces map[string]*Workspace
	closed     bool
}

func NewRegistry(providers ProviderFactory) *Registry {
	return &Registry{
		providers:  providers,
		workspaces: make(map[string]*Workspace),
	}
}

// Get devolve o workspace da sessão, criando e assinando o session store na primeira chamada
func (r *Registry) Get(sessionID string) (*Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRegistryClosed
	}
	if ws, ok := r.workspaces[sessionID]; ok {
		return ws, nil
	}

	ws := &Workspace{
		SessionID: sessionID,
		Session:   session.NewStore(r.providers(sessionID)),
		History:   dispatching.NewNotificationHistory(),
		Orders:    dispatching.NewOrderOverlay(),
	}
	ws.Session.Subscribe()
	r.workspaces[sessionID] = ws

	logrus.WithField("session_id", sessionID).Debug("Workspace criado")
	return ws, nil
}

// End descarta o workspace da sessão. Chamado depois do logout.
func (r *Registry) End(sessionID string) bool {
	r.mu.Lock()
	ws, ok := r.workspaces[sessionID]
	delete(r.workspaces, sessionID)
	r.mu.Unlock()

	if !ok {
		return false
	}
	ws.Session.Close()
	return true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Close encerra todos os workspaces; Get passa a falhar
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	workspaces := r.workspaces
	r.workspaces = make(map[string]*Workspace)
	r.mu.Unlock()

	for _, ws := range workspaces {
		ws.Session.Close()
	}
	logrus.WithField("count", len(workspaces)).Info("Workspaces encerrados")
}

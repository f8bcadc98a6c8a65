// Package realtime liga os documentos do document store aos consumidores do painel.
// A ponte não faz retry nem backoff; reconexão é responsabilidade do transporte.
package realtime

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

type Bridge struct {
	store docstore.Store
}

func NewBridge(store docstore.Store) *Bridge {
	return &Bridge{store: store}
}

// Subscription é uma assinatura viva de um documento
type Subscription struct {
	ref domain.DocumentRef
	// mu fica preso durante cada callback; Unwatch o usa para esperar a entrega em andamento
	mu          sync.Mutex
	stopped     bool
	once        sync.Once
	unsubscribe func()
}

// Watch abre a assinatura do documento. onSnapshot recebe o documento completo a cada
// alteração, ou nil quando ele não existe, na ordem em que o store aplicou as alterações.
func (b *Bridge) Watch(ctx context.Context, ref domain.DocumentRef, onSnapshot docstore.SnapshotFunc) (*Subscription, error) {
	sub := &Subscription{ref: ref}

	unsubscribe, err := b.store.OnSnapshot(ctx, ref.Collection, ref.ID, func(doc *docstore.Document) {
		sub.mu.Lock()
		defer sub.mu.Unlock()

		if sub.stopped {
			return
		}
		onSnapshot(doc)
	})
	if err != nil {
		return nil, err
	}
	sub.unsubscribe = unsubscribe

	logrus.WithField("document", ref.String()).Debug("Assinatura de documento aberta")
	return sub, nil
}

// Unwatch encerra a assinatura e espera o callback em andamento terminar; depois que
// retorna nenhum callback está rodando nem começa. Pode ser chamado várias vezes, mas
// não de dentro do próprio callback (isso trava).
func (s *Subscription) Unwatch() {
	s.once.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()

		if s.unsubscribe != nil {
			s.unsubscribe()
		}
		logrus.WithField("document", s.ref.String()).Debug("Assinatura de documento encerrada")
	})
}

func (s *Subscription) Document() domain.DocumentRef {
	return s.ref
}

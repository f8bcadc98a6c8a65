package dispatching

import (
	"sync"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

// OrderOverlay guarda edições e exclusões de pedidos feitas no painel.
// Nunca são gravadas no document store; valem só para a sessão que as fez.
// Pedidos com o mesmo ID recebem a mesma alteração.
type OrderOverlay struct {
	mu      sync.RWMutex
	edits   map[string]domain.Order
	deleted map[string]struct{}
}

func NewOrderOverlay() *OrderOverlay {
	return &OrderOverlay{
		edits:   make(map[string]domain.Order),
		deleted: make(map[string]struct{}),
	}
}

// Edit substitui o pedido pelo ID, que precisa existir em orders
func (o *OrderOverlay) Edit(orders []domain.Order, id string, updated domain.Order) error {
	if !o.visible(orders, id) {
		return NewDispatchError(ErrOrderNotFound, apiErrors.ErrOrderNotFound, id)
	}

	updated.ID = id

	o.mu.Lock()
	defer o.mu.Unlock()
	o.edits[id] = updated
	return nil
}

func (o *OrderOverlay) Delete(orders []domain.Order, id string) error {
	if !o.visible(orders, id) {
		return NewDispatchError(ErrOrderNotFound, apiErrors.ErrOrderNotFound, id)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.deleted[id] = struct{}{}
	delete(o.edits, id)
	return nil
}

// Current devolve o pedido como a sessão o vê, já com a edição local aplicada.
// A cópia não compartilha ponteiros com orders.
func (o *OrderOverlay) Current(orders []domain.Order, id string) (domain.Order, bool) {
	for _, order := range o.Apply(orders) {
		if order.ID != id {
			continue
		}
		if order.PredictedQuantitySold != nil {
			predicted := *order.PredictedQuantitySold
			order.PredictedQuantitySold = &predicted
		}
		return order, true
	}
	return domain.Order{}, false
}

// Apply devolve uma lista nova com as alterações locais aplicadas
func (o *OrderOverlay) Apply(orders []domain.Order) []domain.Order {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if _, gone := o.deleted[order.ID]; gone {
			continue
		}
		if edited, ok := o.edits[order.ID]; ok {
			order = edited
		}
		out = append(out, order)
	}
	return out
}

// Reset descarta as alterações locais
func (o *OrderOverlay) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.edits = make(map[string]domain.Order)
	o.deleted = make(map[string]struct{})
}

func (o *OrderOverlay) visible(orders []domain.Order, id string) bool {
	for _, order := range o.Apply(orders) {
		if order.ID == id {
			return true
		}
	}
	return false
}

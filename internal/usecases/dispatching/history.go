package dispatching

import (
	"sync"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

// NotificationHistory guarda um único nível de desfazer: a lista anterior à última exclusão ou limpeza
type NotificationHistory struct {
	mu       sync.Mutex
	previous []domain.Notification
	set      bool
}

func NewNotificationHistory() *NotificationHistory {
	return &NotificationHistory{}
}

// Remember substitui o nível guardado por uma cópia da lista
func (h *NotificationHistory) Remember(list []domain.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.previous = append([]domain.Notification{}, list...)
	h.set = true
}

// Take devolve e consome a lista guardada
func (h *NotificationHistory) Take() ([]domain.Notification, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.set {
		return nil, false
	}
	previous := h.previous
	h.previous = nil
	h.set = false
	return previous, true
}

func (h *NotificationHistory) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.set
}

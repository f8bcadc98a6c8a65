package views

import (
	"strings"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

// ReverseLatestFirst devolve uma lista nova em ordem inversa; a entrada não é alterada
func ReverseLatestFirst[T any](list []T) []T {
	out := make([]T, len(list))
	for i, item := range list {
		out[len(list)-1-i] = item
	}
	return out
}

// FilterNotifications busca o termo (sem diferenciar maiúsculas) em detalhes, usuário e data
func FilterNotifications(list []domain.Notification, search string) []domain.Notification {
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]domain.Notification, 0, len(list))
	for _, n := range list {
		if term == "" ||
			containsFold(n.Details, term) ||
			containsFold(n.User, term) ||
			containsFold(n.Date, term) {
			out = append(out, n)
		}
	}
	return out
}

// StorageIndex converte a posição exibida (mais recente primeiro) na posição armazenada
func StorageIndex(displayIndex, length int) (int, bool) {
	if displayIndex < 0 || displayIndex >= length {
		return 0, false
	}
	return length - 1 - displayIndex, true
}

package dispatching

import (
	"context"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dispatching_mock.go -package=mocks

// AlertSender entrega uma mensagem curta a um destinatário (telefone ou chat)
type AlertSender interface {
	SendAlert(ctx context.Context, target, message string) error
}

// Uploader envia um arquivo multipart a um endpoint do backend e devolve o corpo da resposta
type Uploader interface {
	Upload(ctx context.Context, endpoint, bearer string, file domain.UploadFile) ([]byte, error)
}

// InventoryNotifier pede ao backend a verificação de estoque com aviso ao telefone
type InventoryNotifier interface {
	CheckAndNotify(ctx context.Context, phone string) (map[string]any, error)
}

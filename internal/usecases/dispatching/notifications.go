package dispatching

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/realtime"
	"github.com/vfg2006/inventory-dashboard-api/internal/views"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

const notificationDateLayout = "2006-01-02"

// NotificationService grava na lista do documento notifications/main
type NotificationService struct {
	store docstore.Store
	now   func() time.Time
}

func NewNotificationService(store docstore.Store) *NotificationService {
	return &NotificationService{
		store: store,
		now:   time.Now,
	}
}

// NewEntry monta uma notificação assinada pelo usuário da sessão
func (s *NotificationService) NewEntry(identity *domain.Identity, details string) domain.Notification {
	entry := domain.Notification{
		Details: details,
		Date:    s.now().Format(notificationDateLayout),
	}
	if identity != nil {
		entry.User = identity.DisplayName
		entry.Avatar = identity.PhotoURL
	}
	return entry
}

// AppendNotification usa o append atômico do store; appends concorrentes são todos preservados
func (s *NotificationService) AppendNotification(ctx context.Context, entry domain.Notification) error {
	ref := domain.NotificationsDocument
	if err := s.store.ArrayAppend(ctx, ref.Collection, ref.ID, domain.NotificationsField, entry); err != nil {
		logrus.WithError(err).Error("Erro ao adicionar notificação")
		return NewDispatchError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

// ReplaceNotificationList troca a lista inteira. É leitura-modificação-escrita:
// duas limpezas simultâneas podem perder uma atualização.
func (s *NotificationService) ReplaceNotificationList(ctx context.Context, list []domain.Notification) error {
	if list == nil {
		list = []domain.Notification{}
	}

	ref := domain.NotificationsDocument
	patch := map[string]any{domain.NotificationsField: list}
	if err := s.store.UpdateDoc(ctx, ref.Collection, ref.ID, patch); err != nil {
		logrus.WithError(err).Error("Erro ao substituir a lista de notificações")
		return NewDispatchError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

// Current lê a lista em ordem de armazenamento; documento ausente é lista vazia
func (s *NotificationService) Current(ctx context.Context) ([]domain.Notification, error) {
	ref := domain.NotificationsDocument
	doc, err := s.store.GetDoc(ctx, ref.Collection, ref.ID)
	if err != nil {
		return nil, NewDispatchError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	snapshot := realtime.Decode[domain.NotificationsSnapshot](doc)
	if snapshot == nil {
		return []domain.Notification{}, nil
	}
	return snapshot.Notifications, nil
}

// DeleteNotification remove o item na posição exibida (mais recente primeiro)
func (s *NotificationService) DeleteNotification(ctx context.Context, history *NotificationHistory, displayIndex int) error {
	current, err := s.Current(ctx)
	if err != nil {
		return err
	}

	index, ok := views.StorageIndex(displayIndex, len(current))
	if !ok {
		return NewDispatchError(ErrNotificationIndex, apiErrors.ErrNotificationIndex, "")
	}

	updated := make([]domain.Notification, 0, len(current)-1)
	updated = append(updated, current[:index]...)
	updated = append(updated, current[index+1:]...)

	if err := s.ReplaceNotificationList(ctx, updated); err != nil {
		return err
	}
	history.Remember(current)
	return nil
}

// ClearNotifications esvazia a lista, guardando a anterior para desfazer
func (s *NotificationService) ClearNotifications(ctx context.Context, history *NotificationHistory) error {
	current, err := s.Current(ctx)
	if err != nil {
		return err
	}

	if err := s.ReplaceNotificationList(ctx, nil); err != nil {
		return err
	}
	history.Remember(current)
	return nil
}

// UndoNotifications restaura a lista guardada pela última exclusão ou limpeza
func (s *NotificationService) UndoNotifications(ctx context.Context, history *NotificationHistory) error {
	previous, ok := history.Take()
	if !ok {
		return NewDispatchError(ErrNothingToUndo, apiErrors.ErrNothingToUndo, "")
	}

	if err := s.ReplaceNotificationList(ctx, previous); err != nil {
		history.Remember(previous)
		return err
	}
	return nil
}

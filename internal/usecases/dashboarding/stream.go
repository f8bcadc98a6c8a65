package dashboarding

import (
	"context"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/realtime"
	"github.com/vfg2006/inventory-dashboard-api/internal/views"
)

// Watch abre uma assinatura própria da visão e chama emit com a visão remontada a cada snapshot.
// A assinatura pertence a quem chamou e deve ser encerrada com Unwatch quando a visão sai.
func (s *Service) Watch(ctx context.Context, area Area, params ViewParams, emit func(view any)) (*realtime.Subscription, error) {
	switch area {
	case AreaDashboard:
		threshold := s.threshold(params)
		return realtime.WatchDocument(ctx, s.bridge, domain.DashboardDocument, func(snapshot *domain.DashboardSnapshot) {
			emit(views.DashboardView(snapshot, threshold))
		})
	case AreaSales:
		return realtime.WatchDocument(ctx, s.bridge, domain.SalesDocument, func(snapshot *domain.SalesSnapshot) {
			emit(salesView(snapshot, params))
		})
	case AreaNotifications:
		return realtime.WatchDocument(ctx, s.bridge, domain.NotificationsDocument, func(snapshot *domain.NotificationsSnapshot) {
			emit(notificationsView(snapshot, params))
		})
	}
	return nil, ErrUnknownArea
}

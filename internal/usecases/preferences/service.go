package preferences

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMissingUser = errors.New("usuário não informado")

// Service guarda as preferências de interface no documento preferences/<uid>
type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

// Get devolve as preferências do usuário; documento ausente ou inválido vira o padrão
func (s *Service) Get(ctx context.Context, uid string) (domain.Preferences, error) {
	if uid == "" {
		return domain.Preferences{}, ErrMissingUser
	}

	doc, err := s.store.GetDoc(ctx, domain.PreferencesCollection, uid)
	if err != nil {
		return domain.Preferences{}, err
	}

	prefs := domain.DefaultPreferences()
	if doc == nil || len(doc.Data) == 0 {
		return prefs, nil
	}
	if err := json.Unmarshal(doc.Data, &prefs); err != nil {
		logrus.WithError(err).WithField("uid", uid).Warn("Preferências inválidas, usando padrão")
		return domain.DefaultPreferences(), nil
	}
	return prefs, nil
}

func (s *Service) Save(ctx context.Context, uid string, prefs domain.Preferences) error {
	if uid == "" {
		return ErrMissingUser
	}
	return s.store.UpdateDoc(ctx, domain.PreferencesCollection, uid, map[string]any{
		"sidebarOpen": prefs.SidebarOpen,
	})
}

// ToggleSidebar inverte o estado da barra lateral e grava o novo valor
func (s *Service) ToggleSidebar(ctx context.Context, uid string) (domain.Preferences, error) {
	prefs, err := s.Get(ctx, uid)
	if err != nil {
		return domain.Preferences{}, err
	}

	prefs.SidebarOpen = !prefs.SidebarOpen
	if err := s.Save(ctx, uid, prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

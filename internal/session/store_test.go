package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/session"
	"github.com/vfg2006/inventory-dashboard-api/internal/session/mocks"
	"go.uber.org/mock/gomock"
)

func TestStore_SubscribeReceivesIdentityChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	store := session.NewStore(provider)

	var callback session.ChangeFunc
	unsubscribed := 0

	provider.EXPECT().
		OnChange(gomock.Any()).
		DoAndReturn(func(cb session.ChangeFunc) func() {
			callback = cb
			// O provedor entrega a identidade atual imediatamente (nenhuma)
			cb(nil)
			return func() { unsubscribed++ }
		}).
		Times(1)

	assert.Nil(t, store.CurrentUser(), "nil antes do primeiro callback")

	store.Subscribe()
	store.Subscribe() // não registra de novo
	require.NotNil(t, callback)
	assert.Nil(t, store.CurrentUser())

	var seen []*domain.Identity
	stopListening := store.Listen(func(identity *domain.Identity) {
		seen = append(seen, identity)
	})

	callback(&domain.Identity{UID: "1", DisplayName: "Jane Carter", Email: "jane@example.com"})
	current := store.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "jane@example.com", current.Email)

	// Cópia: alterar o retorno não muda o store
	current.Email = "other@example.com"
	assert.Equal(t, "jane@example.com", store.CurrentUser().Email)

	callback(nil)
	assert.Nil(t, store.CurrentUser())

	stopListening()
	callback(&domain.Identity{UID: "1"})
	assert.Len(t, seen, 2)
	assert.Nil(t, seen[1])

	store.Close()
	store.Close()
	assert.Equal(t, 1, unsubscribed)
	assert.Nil(t, store.CurrentUser())

	// Callbacks atrasados depois do Close são ignorados
	callback(&domain.Identity{UID: "2"})
	assert.Nil(t, store.CurrentUser())
}

func TestStore_CloseBeforeSubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockProvider(ctrl)
	store := session.NewStore(provider)

	store.Close()
	store.Subscribe() // nenhuma chamada ao provedor é esperada
	assert.Nil(t, store.CurrentUser())
}

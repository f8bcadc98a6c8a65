package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/session"
	"github.com/vfg2006/inventory-dashboard-api/internal/session/mocks"
	"go.uber.org/mock/gomock"
)

func TestRegistry_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)

	unsubscribed := 0
	provider.EXPECT().
		OnChange(gomock.Any()).
		DoAndReturn(func(cb session.ChangeFunc) func() {
			cb(&domain.Identity{UID: "7", DisplayName: "Jane Carter"})
			return func() { unsubscribed++ }
		}).
		Times(2)

	var requested []string
	registry := NewRegistry(func(sessionID string) session.Provider {
		requested = append(requested, sessionID)
		return provider
	})

	first, err := registry.Get("s1")
	require.NoError(t, err)
	again, err := registry.Get("s1")
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, "Jane Carter", first.Session.CurrentUser().DisplayName)
	assert.NotNil(t, first.History)
	assert.NotNil(t, first.Orders)

	_, err = registry.Get("s2")
	require.NoError(t, err)
	assert.Equal(t, 2, registry.Len())
	assert.Equal(t, []string{"s1", "s2"}, requested)

	assert.True(t, registry.End("s1"))
	assert.False(t, registry.End("s1"))
	assert.Equal(t, 1, unsubscribed)
	assert.Nil(t, first.Session.CurrentUser())

	registry.Close()
	registry.Close()
	assert.Equal(t, 2, unsubscribed)
	assert.Equal(t, 0, registry.Len())

	_, err = registry.Get("s3")
	assert.ErrorIs(t, err, ErrRegistryClosed)
}

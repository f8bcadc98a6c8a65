package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/memstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/mocks"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_DefaultsAndToggle(t *testing.T) {
	store := memstore.New()
	defer store.Close()
	svc := NewService(store)
	ctx := context.Background()

	prefs, err := svc.Get(ctx, "7")
	require.NoError(t, err)
	assert.True(t, prefs.SidebarOpen)

	toggled, err := svc.ToggleSidebar(ctx, "7")
	require.NoError(t, err)
	assert.False(t, toggled.SidebarOpen)

	reloaded, err := svc.Get(ctx, "7")
	require.NoError(t, err)
	assert.False(t, reloaded.SidebarOpen)

	other, err := svc.Get(ctx, "8")
	require.NoError(t, err)
	assert.True(t, other.SidebarOpen)
}

func TestService_Get(t *testing.T) {
	tests := []struct {
		name    string
		doc     *docstore.Document
		err     error
		want    domain.Preferences
		wantErr bool
	}{
		{name: "campo ausente usa padrão", doc: &docstore.Document{Data: []byte(`{"theme":"dark"}`)}, want: domain.Preferences{SidebarOpen: true}},
		{name: "valor gravado", doc: &docstore.Document{Data: []byte(`{"sidebarOpen":false}`)}, want: domain.Preferences{SidebarOpen: false}},
		{name: "documento malformado", doc: &docstore.Document{Data: []byte(`{"sidebarOpen":`)}, want: domain.Preferences{SidebarOpen: true}},
		{name: "erro do store", err: errors.New("offline"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			store.EXPECT().GetDoc(gomock.Any(), domain.PreferencesCollection, "7").Return(tt.doc, tt.err)

			got, err := NewService(store).Get(context.Background(), "7")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_MissingUser(t *testing.T) {
	svc := NewService(memstore.New())

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingUser)
	assert.ErrorIs(t, svc.Save(context.Background(), "", domain.Preferences{}), ErrMissingUser)
}

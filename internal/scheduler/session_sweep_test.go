package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-dashboard-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func TestSessionSweepService_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockSessionExpirer(ctrl)
	workspaces := mocks.NewMockWorkspaceEnder(ctrl)

	sweepAt := time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)
	service := NewSessionSweepService(sessions, workspaces, time.Minute)
	service.now = func() time.Time { return sweepAt }

	gomock.InOrder(
		sessions.EXPECT().ExpireSessions().Return([]string{"s1", "s2"}),
		workspaces.EXPECT().End("s1").Return(true),
		workspaces.EXPECT().End("s2").Return(false),
	)
	assert.Equal(t, 2, service.Sweep())

	sessions.EXPECT().ExpireSessions().Return(nil)
	assert.Equal(t, 0, service.Sweep())

	status := service.GetStatus()
	assert.Equal(t, sweepAt, status["last_sweep_at"])
	assert.Equal(t, 0, status["last_expired"])
	assert.Equal(t, 2, status["total_expired"])
	assert.Equal(t, "1m0s", status["interval"])
}

func TestNewSessionSweepService_DefaultInterval(t *testing.T) {
	service := NewSessionSweepService(nil, nil, 0)
	assert.Equal(t, defaultSessionSweepInterval, service.interval)
}

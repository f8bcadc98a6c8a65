package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const defaultSessionSweepInterval = 5 * time.Minute

//go:generate mockgen -source=session_sweep.go -destination=mocks/session_sweep_mock.go -package=mocks

// SessionExpirer encerra as sessões vencidas e devolve os IDs
type SessionExpirer interface {
	ExpireSessions() []string
}

// WorkspaceEnder descarta o workspace de uma sessão
type WorkspaceEnder interface {
	End(sessionID string) bool
}

// SessionSweepService remove periodicamente as sessões cujo token venceu sem logout,
// junto com os workspaces delas
type SessionSweepService struct {
	scheduler  *gocron.Scheduler
	sessions   SessionExpirer
	workspaces WorkspaceEnder
	interval   time.Duration
	now        func() time.Time

	mu           sync.Mutex
	lastSweepAt  time.Time
	lastExpired  int
	totalExpired int
}

func NewSessionSweepService(sessions SessionExpirer, workspaces WorkspaceEnder, interval time.Duration) *SessionSweepService {
	if interval <= 0 {
		interval = defaultSessionSweepInterval
	}

	return &SessionSweepService{
		scheduler:  gocron.NewScheduler(time.Local),
		sessions:   sessions,
		workspaces: workspaces,
		interval:   interval,
		now:        time.Now,
	}
}

func (s *SessionSweepService) Start(ctx context.Context) error {
	logrus.WithField("interval", s.interval.String()).Info("Iniciando limpeza de sessões vencidas")

	_, err := s.scheduler.Every(s.interval).Do(func() {
		s.Sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep encerra as sessões vencidas e descarta os workspaces; devolve quantas saíram
func (s *SessionSweepService) Sweep() int {
	expired := s.sessions.ExpireSessions()
	for _, sessionID := range expired {
		s.workspaces.End(sessionID)
	}

	s.mu.Lock()
	s.lastSweepAt = s.now()
	s.lastExpired = len(expired)
	s.totalExpired += len(expired)
	s.mu.Unlock()

	if len(expired) > 0 {
		logrus.WithField("count", len(expired)).Debug("Workspaces de sessões vencidas descartados")
	}
	return len(expired)
}

func (s *SessionSweepService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"interval":      s.interval.String(),
		"last_sweep_at": s.lastSweepAt,
		"last_expired":  s.lastExpired,
		"total_expired": s.totalExpired,
	}
}

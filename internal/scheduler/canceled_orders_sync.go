package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager"
	"github.com/goretsky-band/dodo-reports/infrastructure/redisstore"
	"github.com/goretsky-band/dodo-reports/infrastructure/repository"
	"github.com/goretsky-band/dodo-reports/internal/config"
	"github.com/goretsky-band/dodo-reports/internal/usecases/notifying"
	"github.com/goretsky-band/dodo-reports/pkg/log"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// CanceledOrdersSyncService scans the shift-manager canceled orders listing
// and hands new entries to the notifier.
type CanceledOrdersSyncService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	tickTimeout  time.Duration
	enabled      bool

	resolver   *sessionResolver
	integrator officemanager.Integrator
	notifier   notifying.Notifier

	state jobState
}

func NewCanceledOrdersSyncService(
	departmentRepository repository.DepartmentRepository,
	credentials redisstore.CredentialStore,
	integrator officemanager.Integrator,
	notifier notifying.Notifier,
	cfg *config.Config,
) *CanceledOrdersSyncService {
	return &CanceledOrdersSyncService{
		scheduler:    gocron.NewScheduler(utils.Moscow()),
		cronSchedule: cfg.Sync.CanceledOrdersCron,
		tickTimeout:  cfg.Sync.TickTimeout,
		enabled:      cfg.Sync.Enabled,
		resolver: &sessionResolver{
			departmentRepository: departmentRepository,
			credentials:          credentials,
		},
		integrator: integrator,
		notifier:   notifier,
	}
}

func (s *CanceledOrdersSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("canceled orders sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(s.syncAll)
	if err != nil {
		return errors.Wrap(err, "scheduling canceled orders sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping canceled orders sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CanceledOrdersSyncService) syncAll() {
	if !s.state.tryStart() {
		log.L.Info("canceled orders sync already running, skipping tick")
		return
	}
	defer s.state.finish()

	ctx, cancel := tickContext(s.tickTimeout)
	defer cancel()

	logger := log.ForContext(ctx)

	sessions, err := s.resolver.resolve(ctx)
	if err != nil {
		logger.WithError(err).Error("resolving accounts for canceled orders sync")
		return
	}

	today := time.Now().In(utils.Moscow())
	for _, session := range sessions {
		summaries, err := s.integrator.CanceledOrders(ctx, session.cookies, today)
		if err != nil {
			logger.WithError(err).WithField("account_name", session.accountName).
				Error("fetching canceled orders")
			continue
		}

		if err := s.notifier.NotifyCanceledOrders(ctx, session.cookies, summaries); err != nil {
			logger.WithError(err).WithField("account_name", session.accountName).
				Error("publishing canceled orders")
		}
	}
}

func (s *CanceledOrdersSyncService) TriggerManualSync() {
	go s.syncAll()
}

func (s *CanceledOrdersSyncService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.snapshot()
	return map[string]any{
		"sync_enabled":           s.enabled,
		"sync_cron":              s.cronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}

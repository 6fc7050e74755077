package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager"
	"github.com/goretsky-band/dodo-reports/infrastructure/redisstore"
	"github.com/goretsky-band/dodo-reports/infrastructure/repository"
	"github.com/goretsky-band/dodo-reports/internal/config"
	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/internal/usecases/reconciling"
	"github.com/goretsky-band/dodo-reports/pkg/log"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// DetailedDeliverySyncService refreshes the per-department delivery timing
// breakdown from the Excel export. The export covers a whole account in one
// call, so the tick fans out per account under a concurrency cap.
type DetailedDeliverySyncService struct {
	scheduler             *gocron.Scheduler
	interval              time.Duration
	tickTimeout           time.Duration
	maxConcurrentAccounts int
	enabled               bool

	resolver   *sessionResolver
	integrator officemanager.Integrator
	reconciler reconciling.Reconciler

	state jobState
}

func NewDetailedDeliverySyncService(
	departmentRepository repository.DepartmentRepository,
	credentials redisstore.CredentialStore,
	integrator officemanager.Integrator,
	reconciler reconciling.Reconciler,
	cfg *config.Config,
) *DetailedDeliverySyncService {
	return &DetailedDeliverySyncService{
		scheduler:             gocron.NewScheduler(utils.Moscow()),
		interval:              cfg.Sync.DetailedDeliveryInterval,
		tickTimeout:           cfg.Sync.TickTimeout,
		maxConcurrentAccounts: cfg.Sync.MaxConcurrentAccounts,
		enabled:               cfg.Sync.Enabled,
		resolver: &sessionResolver{
			departmentRepository: departmentRepository,
			credentials:          credentials,
		},
		integrator: integrator,
		reconciler: reconciler,
	}
}

func (s *DetailedDeliverySyncService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("detailed delivery sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.syncAll)
	if err != nil {
		return errors.Wrap(err, "scheduling detailed delivery sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping detailed delivery sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DetailedDeliverySyncService) syncAll() {
	if !s.state.tryStart() {
		log.L.Info("detailed delivery sync already running, skipping tick")
		return
	}
	defer s.state.finish()

	ctx, cancel := tickContext(s.tickTimeout)
	defer cancel()

	logger := log.ForContext(ctx)

	sessions, err := s.resolver.resolve(ctx)
	if err != nil {
		logger.WithError(err).Error("resolving accounts for detailed delivery sync")
		return
	}

	semaphore := make(chan struct{}, s.maxConcurrentAccounts)
	var wg sync.WaitGroup

	for _, session := range sessions {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(session accountSession) {
			defer func() {
				<-semaphore
				wg.Done()
			}()
			s.syncAccount(ctx, session)
		}(session)
	}

	wg.Wait()
}

func (s *DetailedDeliverySyncService) syncAccount(ctx context.Context, session accountSession) {
	logger := log.ForContext(ctx).WithField("account_name", session.accountName)

	today := time.Now().In(utils.Moscow())
	rows, err := s.integrator.DetailedDeliveryStatistics(
		ctx, session.cookies, domain.DepartmentIDs(session.departments), today, today)
	if err != nil {
		logger.WithError(err).Error("fetching detailed delivery statistics")
		return
	}

	if err := s.reconciler.ApplyDetailedDeliveryRows(ctx, session.departments, rows); err != nil {
		logger.WithError(err).Error("saving detailed delivery statistics")
	}
}

func (s *DetailedDeliverySyncService) TriggerManualSync() {
	go s.syncAll()
}

func (s *DetailedDeliverySyncService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.snapshot()
	return map[string]any{
		"sync_enabled":           s.enabled,
		"sync_interval":          s.interval.String(),
		"sync_max_concurrent":    s.maxConcurrentAccounts,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}

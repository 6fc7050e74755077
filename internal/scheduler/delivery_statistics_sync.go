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
	"github.com/goretsky-band/dodo-reports/internal/usecases/reconciling"
	"github.com/goretsky-band/dodo-reports/pkg/log"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// DeliveryStatisticsSyncService refreshes the delivery panel snapshot of
// every department on a fixed interval.
type DeliveryStatisticsSyncService struct {
	scheduler   *gocron.Scheduler
	interval    time.Duration
	tickTimeout time.Duration
	enabled     bool

	resolver   *sessionResolver
	integrator officemanager.Integrator
	reconciler reconciling.Reconciler

	state jobState
}

func NewDeliveryStatisticsSyncService(
	departmentRepository repository.DepartmentRepository,
	credentials redisstore.CredentialStore,
	integrator officemanager.Integrator,
	reconciler reconciling.Reconciler,
	cfg *config.Config,
) *DeliveryStatisticsSyncService {
	return &DeliveryStatisticsSyncService{
		scheduler:   gocron.NewScheduler(utils.Moscow()),
		interval:    cfg.Sync.DeliveryInterval,
		tickTimeout: cfg.Sync.TickTimeout,
		enabled:     cfg.Sync.Enabled,
		resolver: &sessionResolver{
			departmentRepository: departmentRepository,
			credentials:          credentials,
		},
		integrator: integrator,
		reconciler: reconciler,
	}
}

func (s *DeliveryStatisticsSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("delivery statistics sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.syncAll)
	if err != nil {
		return errors.Wrap(err, "scheduling delivery statistics sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping delivery statistics sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DeliveryStatisticsSyncService) syncAll() {
	if !s.state.tryStart() {
		log.L.Info("delivery statistics sync already running, skipping tick")
		return
	}
	defer s.state.finish()

	ctx, cancel := tickContext(s.tickTimeout)
	defer cancel()

	logger := log.ForContext(ctx)

	sessions, err := s.resolver.resolve(ctx)
	if err != nil {
		logger.WithError(err).Error("resolving accounts for delivery statistics sync")
		return
	}

	for _, session := range sessions {
		for _, department := range session.departments {
			statistics, err := s.integrator.DeliveryStatistics(ctx, session.cookies, department.ID)
			if err != nil {
				logger.WithError(err).WithField("department_id", department.ID).
					Error("fetching delivery statistics")
				continue
			}
			if err := s.reconciler.ApplyDeliveryStatistics(ctx, department.ID, statistics); err != nil {
				logger.WithError(err).WithField("department_id", department.ID).
					Error("saving delivery statistics")
			}
		}
	}
}

func (s *DeliveryStatisticsSyncService) TriggerManualSync() {
	go s.syncAll()
}

func (s *DeliveryStatisticsSyncService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.snapshot()
	return map[string]any{
		"sync_enabled":           s.enabled,
		"sync_interval":          s.interval.String(),
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}

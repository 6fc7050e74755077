package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/publicapi"
	"github.com/goretsky-band/dodo-reports/infrastructure/repository"
	"github.com/goretsky-band/dodo-reports/internal/config"
	"github.com/goretsky-band/dodo-reports/internal/usecases/reconciling"
	"github.com/goretsky-band/dodo-reports/pkg/log"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// RevenueSyncService refreshes daily revenue figures from the public
// statistics API. No account session is needed here, the endpoint is open.
type RevenueSyncService struct {
	scheduler   *gocron.Scheduler
	interval    time.Duration
	tickTimeout time.Duration
	enabled     bool

	departmentRepository repository.DepartmentRepository
	integrator           publicapi.Integrator
	reconciler           reconciling.Reconciler

	state jobState
}

func NewRevenueSyncService(
	departmentRepository repository.DepartmentRepository,
	integrator publicapi.Integrator,
	reconciler reconciling.Reconciler,
	cfg *config.Config,
) *RevenueSyncService {
	return &RevenueSyncService{
		scheduler:            gocron.NewScheduler(utils.Moscow()),
		interval:             cfg.Sync.RevenueInterval,
		tickTimeout:          cfg.Sync.TickTimeout,
		enabled:              cfg.Sync.Enabled,
		departmentRepository: departmentRepository,
		integrator:           integrator,
		reconciler:           reconciler,
	}
}

func (s *RevenueSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("revenue sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.syncAll)
	if err != nil {
		return errors.Wrap(err, "scheduling revenue sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping revenue sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RevenueSyncService) syncAll() {
	if !s.state.tryStart() {
		log.L.Info("revenue sync already running, skipping tick")
		return
	}
	defer s.state.finish()

	ctx, cancel := tickContext(s.tickTimeout)
	defer cancel()

	logger := log.ForContext(ctx)

	departments, err := s.departmentRepository.List(ctx)
	if err != nil {
		logger.WithError(err).Error("listing departments for revenue sync")
		return
	}

	for _, department := range departments {
		statistics, err := s.integrator.OperationalStatistics(ctx, department.ID)
		if err != nil {
			logger.WithError(err).WithField("department_id", department.ID).
				Error("fetching operational statistics")
			continue
		}
		if err := s.reconciler.ApplyRevenue(ctx, department.ID, statistics); err != nil {
			logger.WithError(err).WithField("department_id", department.ID).
				Error("saving revenue statistics")
		}
	}
}

func (s *RevenueSyncService) TriggerManualSync() {
	go s.syncAll()
}

func (s *RevenueSyncService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.snapshot()
	return map[string]any{
		"sync_enabled":           s.enabled,
		"sync_interval":          s.interval.String(),
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}

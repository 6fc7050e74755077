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
	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/internal/usecases/reconciling"
	"github.com/goretsky-band/dodo-reports/pkg/log"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// OrdersStatisticsSyncService recomputes bonus program coverage from today's
// restaurant orders listing, account by account.
type OrdersStatisticsSyncService struct {
	scheduler   *gocron.Scheduler
	interval    time.Duration
	tickTimeout time.Duration
	enabled     bool

	resolver   *sessionResolver
	integrator officemanager.Integrator
	reconciler reconciling.Reconciler

	state jobState
}

func NewOrdersStatisticsSyncService(
	departmentRepository repository.DepartmentRepository,
	credentials redisstore.CredentialStore,
	integrator officemanager.Integrator,
	reconciler reconciling.Reconciler,
	cfg *config.Config,
) *OrdersStatisticsSyncService {
	return &OrdersStatisticsSyncService{
		scheduler:   gocron.NewScheduler(utils.Moscow()),
		interval:    cfg.Sync.OrdersInterval,
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

func (s *OrdersStatisticsSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("orders statistics sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.syncAll)
	if err != nil {
		return errors.Wrap(err, "scheduling orders statistics sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping orders statistics sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *OrdersStatisticsSyncService) syncAll() {
	if !s.state.tryStart() {
		log.L.Info("orders statistics sync already running, skipping tick")
		return
	}
	defer s.state.finish()

	ctx, cancel := tickContext(s.tickTimeout)
	defer cancel()

	logger := log.ForContext(ctx)

	sessions, err := s.resolver.resolve(ctx)
	if err != nil {
		logger.WithError(err).Error("resolving accounts for orders statistics sync")
		return
	}

	today := time.Now().In(utils.Moscow())
	for _, session := range sessions {
		orders, err := s.integrator.RestaurantOrders(
			ctx, session.cookies, domain.DepartmentIDs(session.departments), today)
		if err != nil {
			logger.WithError(err).WithField("account_name", session.accountName).
				Error("fetching restaurant orders")
			continue
		}

		if err := s.reconciler.ApplyOrders(ctx, session.departments, orders); err != nil {
			logger.WithError(err).WithField("account_name", session.accountName).
				Error("saving orders statistics")
		}
	}
}

func (s *OrdersStatisticsSyncService) TriggerManualSync() {
	go s.syncAll()
}

func (s *OrdersStatisticsSyncService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.snapshot()
	return map[string]any{
		"sync_enabled":           s.enabled,
		"sync_interval":          s.interval.String(),
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}

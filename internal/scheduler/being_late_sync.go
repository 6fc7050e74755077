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

// BeingLateSyncService refreshes lateness certificate counts, comparing
// today against the same day a week before.
type BeingLateSyncService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	tickTimeout  time.Duration
	enabled      bool

	resolver   *sessionResolver
	integrator officemanager.Integrator
	reconciler reconciling.Reconciler

	state jobState
}

func NewBeingLateSyncService(
	departmentRepository repository.DepartmentRepository,
	credentials redisstore.CredentialStore,
	integrator officemanager.Integrator,
	reconciler reconciling.Reconciler,
	cfg *config.Config,
) *BeingLateSyncService {
	return &BeingLateSyncService{
		scheduler:    gocron.NewScheduler(utils.Moscow()),
		cronSchedule: cfg.Sync.BeingLateCron,
		tickTimeout:  cfg.Sync.TickTimeout,
		enabled:      cfg.Sync.Enabled,
		resolver: &sessionResolver{
			departmentRepository: departmentRepository,
			credentials:          credentials,
		},
		integrator: integrator,
		reconciler: reconciler,
	}
}

func (s *BeingLateSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("being-late sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(s.syncAll)
	if err != nil {
		return errors.Wrap(err, "scheduling being-late sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping being-late sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *BeingLateSyncService) syncAll() {
	if !s.state.tryStart() {
		log.L.Info("being-late sync already running, skipping tick")
		return
	}
	defer s.state.finish()

	ctx, cancel := tickContext(s.tickTimeout)
	defer cancel()

	logger := log.ForContext(ctx)

	sessions, err := s.resolver.resolve(ctx)
	if err != nil {
		logger.WithError(err).Error("resolving accounts for being-late sync")
		return
	}

	today := time.Now().In(utils.Moscow())
	weekAgo := today.AddDate(0, 0, -7)

	for _, session := range sessions {
		departmentIDs := domain.DepartmentIDs(session.departments)

		todayCertificates, err := s.integrator.BeingLateCertificates(
			ctx, session.cookies, departmentIDs, today, today)
		if err != nil {
			logger.WithError(err).WithField("account_name", session.accountName).
				Error("fetching today's being-late certificates")
			continue
		}

		weekAgoCertificates, err := s.integrator.BeingLateCertificates(
			ctx, session.cookies, departmentIDs, weekAgo, weekAgo)
		if err != nil {
			logger.WithError(err).WithField("account_name", session.accountName).
				Error("fetching week-ago being-late certificates")
			continue
		}

		if err := s.reconciler.ApplyBeingLateCertificates(
			ctx, session.departments, todayCertificates, weekAgoCertificates); err != nil {
			logger.WithError(err).WithField("account_name", session.accountName).
				Error("saving being-late statistics")
		}
	}
}

func (s *BeingLateSyncService) TriggerManualSync() {
	go s.syncAll()
}

func (s *BeingLateSyncService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.snapshot()
	return map[string]any{
		"sync_enabled":           s.enabled,
		"sync_cron":              s.cronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}

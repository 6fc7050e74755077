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
	"github.com/goretsky-band/dodo-reports/internal/usecases/notifying"
	"github.com/goretsky-band/dodo-reports/pkg/log"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// StopSalesSyncService watches the four stop-sale reports, each on its own
// cron cadence, and republishes the still-open entries every tick.
type StopSalesSyncService struct {
	scheduler      *gocron.Scheduler
	pizzeriaCron   string
	streetCron     string
	sectorCron     string
	ingredientCron string
	tickTimeout    time.Duration
	enabled        bool

	resolver   *sessionResolver
	integrator officemanager.Integrator
	notifier   notifying.Notifier

	pizzeriaState   jobState
	streetState     jobState
	sectorState     jobState
	ingredientState jobState
}

func NewStopSalesSyncService(
	departmentRepository repository.DepartmentRepository,
	credentials redisstore.CredentialStore,
	integrator officemanager.Integrator,
	notifier notifying.Notifier,
	cfg *config.Config,
) *StopSalesSyncService {
	return &StopSalesSyncService{
		scheduler:      gocron.NewScheduler(utils.Moscow()),
		pizzeriaCron:   cfg.Sync.PizzeriaStopSalesCron,
		streetCron:     cfg.Sync.StreetStopSalesCron,
		sectorCron:     cfg.Sync.SectorStopSalesCron,
		ingredientCron: cfg.Sync.IngredientStopSalesCron,
		tickTimeout:    cfg.Sync.TickTimeout,
		enabled:        cfg.Sync.Enabled,
		resolver: &sessionResolver{
			departmentRepository: departmentRepository,
			credentials:          credentials,
		},
		integrator: integrator,
		notifier:   notifier,
	}
}

func (s *StopSalesSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("stop sales sync disabled by configuration")
		return nil
	}

	jobs := []struct {
		cron string
		tick func()
	}{
		{s.pizzeriaCron, s.syncPizzeria},
		{s.streetCron, s.syncStreet},
		{s.sectorCron, s.syncSector},
		{s.ingredientCron, s.syncIngredient},
	}
	for _, job := range jobs {
		if _, err := s.scheduler.Cron(job.cron).Do(job.tick); err != nil {
			return errors.Wrap(err, "scheduling stop sales sync")
		}
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping stop sales sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *StopSalesSyncService) syncPizzeria() {
	s.runTick(&s.pizzeriaState, "pizzeria", func(ctx context.Context, session accountSession, begin, end time.Time) error {
		stopSales, err := s.integrator.PizzeriaStopSales(
			ctx, session.cookies, domain.DepartmentIDs(session.departments), begin, end)
		if err != nil {
			return err
		}
		return s.notifier.PublishPizzeriaStopSales(ctx, stopSales)
	})
}

func (s *StopSalesSyncService) syncStreet() {
	s.runTick(&s.streetState, "street", func(ctx context.Context, session accountSession, begin, end time.Time) error {
		stopSales, err := s.integrator.StreetStopSales(
			ctx, session.cookies, domain.DepartmentIDs(session.departments), begin, end)
		if err != nil {
			return err
		}
		return s.notifier.PublishStreetStopSales(ctx, stopSales)
	})
}

func (s *StopSalesSyncService) syncSector() {
	s.runTick(&s.sectorState, "sector", func(ctx context.Context, session accountSession, begin, end time.Time) error {
		stopSales, err := s.integrator.SectorStopSales(
			ctx, session.cookies, domain.DepartmentIDs(session.departments), begin, end)
		if err != nil {
			return err
		}
		return s.notifier.PublishSectorStopSales(ctx, stopSales)
	})
}

func (s *StopSalesSyncService) syncIngredient() {
	s.runTick(&s.ingredientState, "ingredient", func(ctx context.Context, session accountSession, begin, end time.Time) error {
		stopSales, err := s.integrator.IngredientStopSales(
			ctx, session.cookies, domain.DepartmentIDs(session.departments), begin, end)
		if err != nil {
			return err
		}
		return s.notifier.PublishIngredientStopSales(ctx, stopSales)
	})
}

// runTick drives one stop-sale variant over every account. Variants guard
// separately, a slow ingredient scan must not suppress the pizzeria one.
func (s *StopSalesSyncService) runTick(
	state *jobState,
	variant string,
	sync func(ctx context.Context, session accountSession, begin, end time.Time) error,
) {
	if !state.tryStart() {
		log.L.Infof("%s stop sales sync already running, skipping tick", variant)
		return
	}
	defer state.finish()

	ctx, cancel := tickContext(s.tickTimeout)
	defer cancel()

	logger := log.ForContext(ctx)

	sessions, err := s.resolver.resolve(ctx)
	if err != nil {
		logger.WithError(err).Errorf("resolving accounts for %s stop sales sync", variant)
		return
	}

	today := time.Now().In(utils.Moscow())
	for _, session := range sessions {
		if err := sync(ctx, session, today, today); err != nil {
			logger.WithError(err).WithField("account_name", session.accountName).
				Errorf("syncing %s stop sales", variant)
		}
	}
}

// TriggerManualSync kicks all four variants at once.
func (s *StopSalesSyncService) TriggerManualSync() {
	go s.syncPizzeria()
	go s.syncStreet()
	go s.syncSector()
	go s.syncIngredient()
}

func (s *StopSalesSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled": s.enabled,
	}
	variants := []struct {
		name  string
		cron  string
		state *jobState
	}{
		{"pizzeria", s.pizzeriaCron, &s.pizzeriaState},
		{"street", s.streetCron, &s.streetState},
		{"sector", s.sectorCron, &s.sectorState},
		{"ingredient", s.ingredientCron, &s.ingredientState},
	}
	for _, variant := range variants {
		running, startedAt, completedAt := variant.state.snapshot()
		status[variant.name] = map[string]any{
			"sync_cron":              variant.cron,
			"sync_running":           running,
			"last_sync_started_at":   startedAt,
			"last_sync_completed_at": completedAt,
		}
	}
	return status
}

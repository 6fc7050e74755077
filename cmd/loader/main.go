package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/goretsky-band/dodo-reports/infrastructure/database/postgres"
	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager"
	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager/omclient"
	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/publicapi"
	"github.com/goretsky-band/dodo-reports/infrastructure/redisstore"
	"github.com/goretsky-band/dodo-reports/infrastructure/repository"
	"github.com/goretsky-band/dodo-reports/internal/api"
	"github.com/goretsky-band/dodo-reports/internal/api/handler"
	"github.com/goretsky-band/dodo-reports/internal/config"
	"github.com/goretsky-band/dodo-reports/internal/scheduler"
	"github.com/goretsky-band/dodo-reports/internal/usecases/notifying"
	"github.com/goretsky-band/dodo-reports/internal/usecases/reconciling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisConn := redisconn(ctx, cfg.Redis)
	defer redisConn.Close()

	departmentRepo := repository.NewDepartmentRepository(pgConn)
	kitchenRepo := repository.NewKitchenStatisticsRepository(pgConn)
	deliveryRepo := repository.NewDeliveryStatisticsRepository(pgConn)
	detailedDeliveryRepo := repository.NewDetailedDeliveryStatisticsRepository(pgConn)
	ordersRepo := repository.NewOrdersStatisticsRepository(pgConn)
	revenueRepo := repository.NewRevenueStatisticsRepository(pgConn)
	beingLateRepo := repository.NewBeingLateStatisticsRepository(pgConn)

	credentials := redisstore.NewCredentialStore(redisConn)
	seenOrders := redisstore.NewSeenOrderSet(redisConn)
	notificationQueue := redisstore.NewNotificationQueue(redisConn)

	officeClient := omclient.NewClient(cfg.OfficeManager.RequestTimeout)
	officeIntegrator := officemanager.NewService(officeClient, cfg.OfficeManager, cfg.ShiftManager)
	publicIntegrator := publicapi.NewService(cfg.PublicAPI, cfg.OfficeManager.RequestTimeout)

	notifier := notifying.NewService(notificationQueue, seenOrders, officeIntegrator)
	reconciler := reconciling.NewService(
		kitchenRepo,
		deliveryRepo,
		detailedDeliveryRepo,
		ordersRepo,
		revenueRepo,
		beingLateRepo,
	)

	jobs := handler.SyncJobs{
		"kitchen-statistics":  scheduler.NewKitchenStatisticsSyncService(departmentRepo, credentials, officeIntegrator, reconciler, cfg),
		"delivery-statistics": scheduler.NewDeliveryStatisticsSyncService(departmentRepo, credentials, officeIntegrator, reconciler, cfg),
		"detailed-delivery":   scheduler.NewDetailedDeliverySyncService(departmentRepo, credentials, officeIntegrator, reconciler, cfg),
		"orders-statistics":   scheduler.NewOrdersStatisticsSyncService(departmentRepo, credentials, officeIntegrator, reconciler, cfg),
		"revenue":             scheduler.NewRevenueSyncService(departmentRepo, publicIntegrator, reconciler, cfg),
		"canceled-orders":     scheduler.NewCanceledOrdersSyncService(departmentRepo, credentials, officeIntegrator, notifier, cfg),
		"stop-sales":          scheduler.NewStopSalesSyncService(departmentRepo, credentials, officeIntegrator, notifier, cfg),
		"being-late":          scheduler.NewBeingLateSyncService(departmentRepo, credentials, officeIntegrator, reconciler, cfg),
	}

	for name, job := range jobs {
		starter, ok := job.(interface{ Start(context.Context) error })
		if !ok {
			continue
		}
		if err := starter.Start(ctx); err != nil {
			logrus.WithError(err).Errorf("starting %s sync scheduler", name)
		} else {
			logrus.Infof("%s sync scheduler started", name)
		}
	}

	server, err := api.New(cfg, jobs, notifier, reconciler, officeIntegrator, credentials, departmentRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, cfg config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("connecting to postgres")
	}
	return conn
}

func redisconn(ctx context.Context, cfg config.Redis) *redisstore.Connection {
	conn, err := redisstore.NewConnection(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("connecting to redis")
	}
	return conn
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager"
	"github.com/goretsky-band/dodo-reports/infrastructure/redisstore"
	"github.com/goretsky-band/dodo-reports/infrastructure/repository"
	"github.com/goretsky-band/dodo-reports/internal/api/handler"
	"github.com/goretsky-band/dodo-reports/internal/api/handler/router"
	"github.com/goretsky-band/dodo-reports/internal/config"
	"github.com/goretsky-band/dodo-reports/internal/usecases/notifying"
	"github.com/goretsky-band/dodo-reports/internal/usecases/reconciling"
	"github.com/goretsky-band/dodo-reports/pkg/log"
	"github.com/goretsky-band/dodo-reports/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	jobs handler.SyncJobs,
	notifier notifying.Notifier,
	reconciler reconciling.Reconciler,
	integrator officemanager.Integrator,
	credentials redisstore.CredentialStore,
	departmentRepository repository.DepartmentRepository,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Jobs(jobs, notifier, reconciler)...),
		router.WithRoutes(handler.Departments(integrator, credentials, departmentRepository)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Run serves until an interrupt signal arrives or the context is canceled,
// then shuts down gracefully.
func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("interrupt signal received")
	case <-ctx.Done():
		log.L.Info("application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("error during server shutdown")
		return err
	}

	log.L.Info("server shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

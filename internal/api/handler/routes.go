package handler

import (
	"net/http"

	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager"
	"github.com/goretsky-band/dodo-reports/infrastructure/redisstore"
	"github.com/goretsky-band/dodo-reports/infrastructure/repository"
	"github.com/goretsky-band/dodo-reports/internal/api/handler/router"
	"github.com/goretsky-band/dodo-reports/internal/usecases/notifying"
	"github.com/goretsky-band/dodo-reports/internal/usecases/reconciling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Jobs(jobs SyncJobs, notifier notifying.Notifier, reconciler reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs/status",
			Method:  http.MethodGet,
			Handler: GetJobsStatus(jobs, notifier, reconciler),
		},
		{
			Path:    "/v1/jobs/:name/trigger",
			Method:  http.MethodPost,
			Handler: RunSyncJob(jobs),
		},
	}
}

func Departments(
	integrator officemanager.Integrator,
	credentials redisstore.CredentialStore,
	departmentRepository repository.DepartmentRepository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/departments/remote",
			Method:  http.MethodGet,
			Handler: RemoteDepartments(integrator, credentials),
		},
		{
			Path:    "/v1/departments/provision",
			Method:  http.MethodPost,
			Handler: ProvisionDepartments(integrator, credentials, departmentRepository),
		},
	}
}

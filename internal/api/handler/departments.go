package handler

import (
	"net/http"

	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager"
	"github.com/goretsky-band/dodo-reports/infrastructure/redisstore"
	"github.com/goretsky-band/dodo-reports/infrastructure/repository"
	"github.com/goretsky-band/dodo-reports/pkg/apiErrors"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

// RemoteDepartments lists the departments the back office currently shows
// for one account. Used to verify provisioning against the live listing.
func RemoteDepartments(integrator officemanager.Integrator, credentials redisstore.CredentialStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountName := r.URL.Query().Get("account")
		if accountName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account query parameter is required", nil)
			return
		}

		cookies, err := credentials.Cookies(r.Context(), accountName)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warnf("resolving cookies for account %q", accountName)
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "no session cookies for account", map[string]any{
				"account": accountName,
			})
			return
		}

		departments, err := integrator.DepartmentsList(r.Context(), cookies)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("fetching remote departments")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "back office request failed", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"account":     accountName,
			"departments": departments,
		})
	}
}

// ProvisionDepartments fetches the live listing for one account and lands it
// in Postgres, seeding statistics rows for departments seen the first time.
func ProvisionDepartments(
	integrator officemanager.Integrator,
	credentials redisstore.CredentialStore,
	departmentRepository repository.DepartmentRepository,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountName := r.URL.Query().Get("account")
		if accountName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account query parameter is required", nil)
			return
		}

		cookies, err := credentials.Cookies(r.Context(), accountName)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warnf("resolving cookies for account %q", accountName)
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "no session cookies for account", map[string]any{
				"account": accountName,
			})
			return
		}

		departments, err := integrator.DepartmentsList(r.Context(), cookies)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("fetching remote departments")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "back office request failed", nil)
			return
		}

		for i := range departments {
			departments[i].AccountName = accountName
		}

		if err := departmentRepository.Provision(r.Context(), departments); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("provisioning departments")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "storing departments failed", nil)
			return
		}

		log.ForContext(r.Context()).Infof("provisioned %d departments for account %q", len(departments), accountName)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"account":     accountName,
			"provisioned": len(departments),
		})
	}
}

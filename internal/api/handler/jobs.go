package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/goretsky-band/dodo-reports/internal/usecases/notifying"
	"github.com/goretsky-band/dodo-reports/internal/usecases/reconciling"
	"github.com/goretsky-band/dodo-reports/pkg/apiErrors"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SyncJob is the surface every scheduled job exposes to the operational API.
type SyncJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// SyncJobs maps a job name to its scheduler service.
type SyncJobs map[string]SyncJob

// JobNameAll triggers every registered job at once.
const JobNameAll = "all"

// RunSyncJob manually kicks one job (or all of them) off schedule.
func RunSyncJob(jobs SyncJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobName := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if jobName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "job name not specified", nil)
			return
		}

		if jobName == JobNameAll {
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		} else {
			job, ok := jobs[jobName]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "unknown job", map[string]any{
					"job": jobName,
				})
				return
			}
			job.TriggerManualSync()
		}

		log.ForContext(r.Context()).Infof("manual sync triggered for %q", jobName)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "sync job triggered",
			"job":     jobName,
		})
	}
}

// GetJobsStatus reports every job's scheduling state plus pipeline counters.
func GetJobsStatus(jobs SyncJobs, notifier notifying.Notifier, reconciler reconciling.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make(map[string]any, len(jobs))
		for name, job := range jobs {
			statuses[name] = job.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"jobs":                statuses,
			"published_envelopes": notifier.GetCounters(),
			"unmatched_rows":      reconciler.UnmatchedRowCount(),
		})
	}
}

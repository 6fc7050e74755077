package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/goretsky-band/dodo-reports/internal/usecases/notifying"
	notifyingmocks "github.com/goretsky-band/dodo-reports/internal/usecases/notifying/mocks"
	reconcilingmocks "github.com/goretsky-band/dodo-reports/internal/usecases/reconciling/mocks"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

type fakeSyncJob struct {
	triggered int
	status    map[string]any
}

func (j *fakeSyncJob) TriggerManualSync()        { j.triggered++ }
func (j *fakeSyncJob) GetStatus() map[string]any { return j.status }

func triggerRequest(jobName string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/jobs/"+jobName+"/trigger", nil)
	params := httprouter.Params{{Key: "name", Value: jobName}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestRunSyncJob_TriggersNamedJob(t *testing.T) {
	log.SetupTestLogger()

	kitchen := &fakeSyncJob{}
	revenue := &fakeSyncJob{}
	handler := RunSyncJob(SyncJobs{"kitchen-statistics": kitchen, "revenue": revenue})

	recorder := httptest.NewRecorder()
	handler(recorder, triggerRequest("kitchen-statistics"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, kitchen.triggered)
	assert.Equal(t, 0, revenue.triggered)
	assert.Contains(t, recorder.Body.String(), "kitchen-statistics")
}

func TestRunSyncJob_TriggersAllJobs(t *testing.T) {
	log.SetupTestLogger()

	kitchen := &fakeSyncJob{}
	revenue := &fakeSyncJob{}
	handler := RunSyncJob(SyncJobs{"kitchen-statistics": kitchen, "revenue": revenue})

	recorder := httptest.NewRecorder()
	handler(recorder, triggerRequest(JobNameAll))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, kitchen.triggered)
	assert.Equal(t, 1, revenue.triggered)
}

func TestRunSyncJob_RejectsUnknownJob(t *testing.T) {
	log.SetupTestLogger()

	handler := RunSyncJob(SyncJobs{"kitchen-statistics": &fakeSyncJob{}})

	recorder := httptest.NewRecorder()
	handler(recorder, triggerRequest("weather"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_003")
}

func TestGetJobsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := notifyingmocks.NewMockNotifier(ctrl)
	reconciler := reconcilingmocks.NewMockReconciler(ctrl)

	notifier.EXPECT().GetCounters().Return(notifying.Counters{CanceledOrders: 4})
	reconciler.EXPECT().UnmatchedRowCount().Return(int64(2))

	jobs := SyncJobs{
		"kitchen-statistics": &fakeSyncJob{status: map[string]any{"sync_running": false}},
	}

	recorder := httptest.NewRecorder()
	GetJobsStatus(jobs, notifier, reconciler)(recorder, httptest.NewRequest(http.MethodGet, "/v1/jobs/status", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, `"kitchen-statistics"`)
	assert.Contains(t, body, `"canceled_orders":4`)
	assert.Contains(t, body, `"unmatched_rows":2`)
}

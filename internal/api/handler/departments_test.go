package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	integratormocks "github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager/mocks"
	redismocks "github.com/goretsky-band/dodo-reports/infrastructure/redisstore/mocks"
	repomocks "github.com/goretsky-band/dodo-reports/infrastructure/repository/mocks"
	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

func TestProvisionDepartments_StoresListingWithAccountName(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := integratormocks.NewMockIntegrator(ctrl)
	credentials := redismocks.NewMockCredentialStore(ctrl)
	departmentRepo := repomocks.NewMockDepartmentRepository(ctrl)

	cookies := map[string]string{"auth": "token"}
	credentials.EXPECT().Cookies(gomock.Any(), "account-a").Return(cookies, nil)
	integrator.EXPECT().DepartmentsList(gomock.Any(), cookies).Return([]domain.Department{
		{ID: 15, Name: "москва 4-1"},
		{ID: 16, Name: "москва 4-2"},
	}, nil)
	departmentRepo.EXPECT().
		Provision(gomock.Any(), []domain.Department{
			{ID: 15, Name: "москва 4-1", AccountName: "account-a"},
			{ID: 16, Name: "москва 4-2", AccountName: "account-a"},
		}).
		Return(nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/departments/provision?account=account-a", nil)
	ProvisionDepartments(integrator, credentials, departmentRepo)(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"provisioned":2`)
}

func TestProvisionDepartments_RequiresAccount(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := ProvisionDepartments(
		integratormocks.NewMockIntegrator(ctrl),
		redismocks.NewMockCredentialStore(ctrl),
		repomocks.NewMockDepartmentRepository(ctrl),
	)

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodPost, "/v1/departments/provision", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_002")
}

func TestProvisionDepartments_ReportsStorageFailure(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := integratormocks.NewMockIntegrator(ctrl)
	credentials := redismocks.NewMockCredentialStore(ctrl)
	departmentRepo := repomocks.NewMockDepartmentRepository(ctrl)

	credentials.EXPECT().Cookies(gomock.Any(), "account-a").Return(nil, nil)
	integrator.EXPECT().DepartmentsList(gomock.Any(), gomock.Any()).Return([]domain.Department{{ID: 15}}, nil)
	departmentRepo.EXPECT().Provision(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/departments/provision?account=account-a", nil)
	ProvisionDepartments(integrator, credentials, departmentRepo)(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SRV_002")
}

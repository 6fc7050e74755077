package officemanager

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager/omclient"
	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager/omclient/mocks"
	"github.com/goretsky-band/dodo-reports/internal/config"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

func newTestService(client omclient.Doer, maxPages int) Integrator {
	return NewService(client,
		config.OfficeManager{BaseURL: "http://office.local"},
		config.ShiftManager{BaseURL: "http://shift.local", MaxPages: maxPages},
	)
}

func listingPage(uuids ...string) *omclient.Response {
	html := "<table><tr><th></th></tr>"
	for i, uuid := range uuids {
		html += fmt.Sprintf(`
		<tr>
			<td><a href="/Order?orderUUId=%s">открыть</a></td>
			<td>42-%d</td><td></td><td></td>
			<td>500 ₽</td>
			<td></td><td></td>
			<td>Delivery</td>
		</tr>`, uuid, i)
	}
	html += "</table>"

	return &omclient.Response{StatusCode: http.StatusOK, Body: []byte(html)}
}

func emptyListingPage() *omclient.Response {
	return &omclient.Response{StatusCode: http.StatusOK, Body: []byte("<table><tr><th></th></tr></table>")}
}

func TestService_CanceledOrders_WalksPagesUntilEmpty(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockDoer(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	var requestedPages []int
	client.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ map[string]string, descriptor omclient.Descriptor) (*omclient.Response, error) {
			requestedPages = append(requestedPages, descriptor.Page)
			switch descriptor.Page {
			case 1:
				return listingPage("aaa", "bbb"), nil
			case 2:
				return listingPage("ccc"), nil
			default:
				return emptyListingPage(), nil
			}
		}).
		Times(3)

	service := newTestService(client, 100)
	summaries, err := service.CanceledOrders(context.Background(), nil, date)

	assert.NoError(t, err)
	assert.Len(t, summaries, 3)
	assert.Equal(t, []int{1, 2, 3}, requestedPages)
	assert.Equal(t, "aaa", summaries[0].UUID)
	assert.Equal(t, "ccc", summaries[2].UUID)
}

func TestService_CanceledOrders_FailsAtPageCap(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockDoer(ctrl)
	client.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ map[string]string, descriptor omclient.Descriptor) (*omclient.Response, error) {
			return listingPage(fmt.Sprintf("uuid-%d", descriptor.Page)), nil
		}).
		Times(2)

	service := newTestService(client, 2)
	summaries, err := service.CanceledOrders(context.Background(), nil, time.Now())

	assert.True(t, errors.Is(err, ErrPageCapExceeded))
	assert.Nil(t, summaries)
}

func TestService_Fetch_RejectsNonOKStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockDoer(ctrl)
	client.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&omclient.Response{StatusCode: http.StatusUnauthorized}, nil)

	service := newTestService(client, 100)
	_, err := service.DepartmentsList(context.Background(), map[string]string{"auth": "stale"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestService_DepartmentsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockDoer(ctrl)
	client.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ map[string]string, descriptor omclient.Descriptor) (*omclient.Response, error) {
			assert.Equal(t, omclient.KindDepartmentsList, descriptor.Kind)
			return &omclient.Response{
				StatusCode: http.StatusOK,
				Body:       []byte(`<select id="unitId"><option value="15">Москва 4-1</option></select>`),
			}, nil
		})

	service := newTestService(client, 100)
	departments, err := service.DepartmentsList(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, departments, 1)
	assert.Equal(t, 15, departments[0].ID)
	assert.Equal(t, "москва 4-1", departments[0].Name)
}

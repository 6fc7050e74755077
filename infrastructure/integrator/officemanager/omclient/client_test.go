package omclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/goretsky-band/dodo-reports/pkg/log"
)

type failingTransport struct {
	attempts int
}

func (t *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.attempts++
	return nil, errors.New("connection reset")
}

func TestClient_Do_RetriesTransportFailures(t *testing.T) {
	log.SetupTestLogger()

	transport := &failingTransport{}
	client := &Client{httpClient: &http.Client{Transport: transport}}

	_, err := client.Do(context.Background(), nil, NewDepartmentsListRequest("http://office.local"))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsuccessfulRequest))
	assert.Equal(t, 4, transport.attempts)
}

func TestClient_Do_ReturnsErrorStatusWithoutRetry(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	resp, err := client.Do(context.Background(), nil, NewDepartmentsListRequest(server.URL))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1, requests, "error statuses must not be retried")
}

func TestClient_Do_SendsIdentityAndCookies(t *testing.T) {
	var received *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	cookies := map[string]string{"auth": "token-value"}

	resp, err := client.Do(context.Background(), cookies, NewKitchenStatisticsRequest(server.URL, 15))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<html></html>", resp.HTML())

	assert.Equal(t, "Goretsky-Band", received.Header.Get("User-Agent"))
	assert.Equal(t, "15", received.URL.Query().Get("unitId"))

	cookie, err := received.Cookie("auth")
	assert.NoError(t, err)
	assert.Equal(t, "token-value", cookie.Value)
}

func TestClient_Do_PostsFormBody(t *testing.T) {
	var (
		contentType string
		form        url.Values
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	begin := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	client := NewClient(5 * time.Second)

	_, err := client.Do(context.Background(), nil,
		NewBeingLateCertificatesRequest(server.URL, []int{15, 16}, begin, begin))

	assert.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	assert.Equal(t, []string{"15", "16"}, form["unitsIds"])
	assert.Equal(t, "15.01.2024", form.Get("beginDate"))
	assert.Equal(t, "15.01.2024", form.Get("endDate"))
}

func TestCanceledOrdersDescriptorPagination(t *testing.T) {
	descriptor := NewCanceledOrdersRequest("http://shift.local", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, descriptor.Page)
	assert.Equal(t, "1", descriptor.wireQuery().Get("page"))
	assert.Equal(t, "Failure", descriptor.wireQuery().Get("orderStateFilter"))
	assert.Equal(t, "2024-01-15", descriptor.wireQuery().Get("date"))

	descriptor.IncrementPage()
	assert.Equal(t, "2", descriptor.wireQuery().Get("page"))
}

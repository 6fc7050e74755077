package publicapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goretsky-band/dodo-reports/internal/config"
)

func TestService_OperationalStatistics(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(`{
			"unitId": 15,
			"date": "2024-01-15",
			"today": {"revenue": 160000, "orderCount": 120, "avgCheck": 1333.33},
			"weekBeforeToThisTime": {"revenue": 100000, "orderCount": 90}
		}`))
	}))
	defer server.Close()

	service := NewService(config.PublicAPI{BaseURL: server.URL, Lang: "ru"}, 5*time.Second)
	statistics, err := service.OperationalStatistics(context.Background(), 15)

	assert.NoError(t, err)
	assert.Equal(t, "/ru/api/v1/OperationalStatisticsForTodayAndWeekBefore/15", requestedPath)
	assert.Equal(t, 15, statistics.UnitID)
	assert.Equal(t, 160000, statistics.Today.Revenue)
	assert.Equal(t, 100000, statistics.WeekBeforeToThisTime.Revenue)
	assert.Equal(t, 60, statistics.RevenueIncrease())
}

func TestService_OperationalStatistics_RejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service := NewService(config.PublicAPI{BaseURL: server.URL, Lang: "ru"}, 5*time.Second)
	_, err := service.OperationalStatistics(context.Background(), 15)

	assert.Error(t, err)
}

func TestService_OperationalStatistics_RejectsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	service := NewService(config.PublicAPI{BaseURL: server.URL, Lang: "ru"}, 5*time.Second)
	_, err := service.OperationalStatistics(context.Background(), 15)

	assert.Error(t, err)
}

package publicapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/internal/config"
	"github.com/goretsky-band/dodo-reports/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Integrator reads the unauthenticated public statistics API.
type Integrator interface {
	OperationalStatistics(ctx context.Context, departmentID int) (*domain.UnitOperationalStatistics, error)
}

type service struct {
	httpClient *http.Client
	baseURL    string
	lang       string
}

func NewService(cfg config.PublicAPI, requestTimeout time.Duration) Integrator {
	return &service{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    cfg.BaseURL,
		lang:       cfg.Lang,
	}
}

// OperationalStatistics fetches today-and-week-before revenue figures for one
// department. No session cookies are needed here.
func (s *service) OperationalStatistics(ctx context.Context, departmentID int) (*domain.UnitOperationalStatistics, error) {
	url := fmt.Sprintf("%s/%s/api/v1/OperationalStatisticsForTodayAndWeekBefore/%d",
		s.baseURL, s.lang, departmentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building operational statistics request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching operational statistics for department %d", departmentID)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("operational statistics for department %d: status %d",
			departmentID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading operational statistics body")
	}

	statistics := &domain.UnitOperationalStatistics{}
	if err := json.Unmarshal(body, statistics); err != nil {
		return nil, errors.Wrapf(err, "decoding operational statistics for department %d", departmentID)
	}

	return statistics, nil
}

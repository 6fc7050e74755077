package officemanager

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager/omclient"
	"github.com/goretsky-band/dodo-reports/infrastructure/integrator/officemanager/parser"
	"github.com/goretsky-band/dodo-reports/internal/config"
	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

// ErrPageCapExceeded reports a canceled orders scan that hit the configured
// page cap before reaching an empty listing page. The scan is incomplete and
// must not be treated as the day's full order set.
var ErrPageCapExceeded = errors.New("canceled orders page cap exceeded")

// Integrator exposes the back-office reports as typed domain values. Every
// call is made on behalf of one account, identified by its session cookies.
type Integrator interface {
	DepartmentsList(ctx context.Context, cookies map[string]string) ([]domain.Department, error)
	KitchenStatistics(ctx context.Context, cookies map[string]string, departmentID int) (*domain.KitchenStatistics, error)
	DeliveryStatistics(ctx context.Context, cookies map[string]string, departmentID int) (*domain.DeliveryStatistics, error)
	DetailedDeliveryStatistics(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.DeliveryStatisticsRow, error)
	CanceledOrders(ctx context.Context, cookies map[string]string, date time.Time) ([]domain.CanceledOrderSummary, error)
	CanceledOrderByUUID(ctx context.Context, cookies map[string]string, summary domain.CanceledOrderSummary) (*domain.CanceledOrder, error)
	PizzeriaStopSales(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.PizzeriaStopSale, error)
	StreetStopSales(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.StreetStopSale, error)
	SectorStopSales(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.SectorStopSale, error)
	IngredientStopSales(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.IngredientStopSale, error)
	BeingLateCertificates(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.BeingLateCertificate, error)
	RestaurantOrders(ctx context.Context, cookies map[string]string, departmentIDs []int, date time.Time) ([]domain.Order, error)
}

type service struct {
	client        omclient.Doer
	officeBaseURL string
	shiftBaseURL  string
	maxPages      int
}

func NewService(client omclient.Doer, officeCfg config.OfficeManager, shiftCfg config.ShiftManager) Integrator {
	return &service{
		client:        client,
		officeBaseURL: officeCfg.BaseURL,
		shiftBaseURL:  shiftCfg.BaseURL,
		maxPages:      shiftCfg.MaxPages,
	}
}

func (s *service) DepartmentsList(ctx context.Context, cookies map[string]string) ([]domain.Department, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewDepartmentsListRequest(s.officeBaseURL))
	if err != nil {
		return nil, err
	}
	return parser.ParseDepartments(resp.HTML())
}

func (s *service) KitchenStatistics(ctx context.Context, cookies map[string]string, departmentID int) (*domain.KitchenStatistics, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewKitchenStatisticsRequest(s.officeBaseURL, departmentID))
	if err != nil {
		return nil, err
	}
	return parser.ParseKitchenStatistics(resp.HTML())
}

func (s *service) DeliveryStatistics(ctx context.Context, cookies map[string]string, departmentID int) (*domain.DeliveryStatistics, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewDeliveryStatisticsRequest(s.officeBaseURL, departmentID))
	if err != nil {
		return nil, err
	}
	return parser.ParseDeliveryStatistics(resp.HTML())
}

// DetailedDeliveryStatistics downloads the Excel export into a temporary file
// and parses it from disk. The file is removed before return.
func (s *service) DetailedDeliveryStatistics(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.DeliveryStatisticsRow, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewDetailedDeliveryStatisticsRequest(s.officeBaseURL, departmentIDs, begin, end))
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "delivery-statistics-*.xlsx")
	if err != nil {
		return nil, errors.Wrap(err, "creating temporary export file")
	}
	defer func() {
		if removeErr := os.Remove(tmp.Name()); removeErr != nil {
			log.L.Warnf("removing temporary export file: %v", removeErr)
		}
	}()

	if _, err := tmp.Write(resp.Body); err != nil {
		tmp.Close()
		return nil, errors.Wrap(err, "writing temporary export file")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrap(err, "closing temporary export file")
	}

	return parser.ParseDetailedDeliveryStatistics(tmp.Name())
}

// CanceledOrders walks the shift-manager listing page by page, starting at
// page one, until a page comes back without order rows. The page counter is
// capped so an upstream that never produces an empty page cannot loop the
// scan forever; hitting the cap fails the scan with ErrPageCapExceeded so
// the caller retries it instead of settling for a truncated listing.
func (s *service) CanceledOrders(ctx context.Context, cookies map[string]string, date time.Time) ([]domain.CanceledOrderSummary, error) {
	descriptor := omclient.NewCanceledOrdersRequest(s.shiftBaseURL, date)

	var summaries []domain.CanceledOrderSummary
	for descriptor.Page <= s.maxPages {
		resp, err := s.fetch(ctx, cookies, descriptor)
		if err != nil {
			return nil, err
		}

		page, err := parser.ParseCanceledOrderSummaries(resp.HTML())
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return summaries, nil
		}

		summaries = append(summaries, page...)
		descriptor.IncrementPage()
	}

	return nil, errors.Wrapf(ErrPageCapExceeded, "scan for %s stopped after %d pages", date.Format(time.DateOnly), s.maxPages)
}

func (s *service) CanceledOrderByUUID(ctx context.Context, cookies map[string]string, summary domain.CanceledOrderSummary) (*domain.CanceledOrder, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewCanceledOrderByUUIDRequest(s.shiftBaseURL, summary.UUID))
	if err != nil {
		return nil, err
	}
	return parser.ParseCanceledOrder(resp.HTML(), summary)
}

func (s *service) PizzeriaStopSales(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.PizzeriaStopSale, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewPizzeriaStopSalesRequest(s.officeBaseURL, departmentIDs, begin, end))
	if err != nil {
		return nil, err
	}
	return parser.ParsePizzeriaStopSales(resp.HTML())
}

func (s *service) StreetStopSales(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.StreetStopSale, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewStreetStopSalesRequest(s.officeBaseURL, departmentIDs, begin, end))
	if err != nil {
		return nil, err
	}
	return parser.ParseStreetStopSales(resp.HTML())
}

func (s *service) SectorStopSales(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.SectorStopSale, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewSectorStopSalesRequest(s.officeBaseURL, departmentIDs, begin, end))
	if err != nil {
		return nil, err
	}
	return parser.ParseSectorStopSales(resp.HTML())
}

func (s *service) IngredientStopSales(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.IngredientStopSale, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewIngredientStopSalesRequest(s.officeBaseURL, departmentIDs, begin, end))
	if err != nil {
		return nil, err
	}
	return parser.ParseIngredientStopSales(resp.HTML())
}

func (s *service) BeingLateCertificates(ctx context.Context, cookies map[string]string, departmentIDs []int, begin, end time.Time) ([]domain.BeingLateCertificate, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewBeingLateCertificatesRequest(s.officeBaseURL, departmentIDs, begin, end))
	if err != nil {
		return nil, err
	}
	return parser.ParseBeingLateCertificates(resp.HTML())
}

func (s *service) RestaurantOrders(ctx context.Context, cookies map[string]string, departmentIDs []int, date time.Time) ([]domain.Order, error) {
	resp, err := s.fetch(ctx, cookies, omclient.NewRestaurantOrdersRequest(s.officeBaseURL, departmentIDs, date))
	if err != nil {
		return nil, err
	}
	return parser.ParseRestaurantOrders(resp.HTML())
}

// fetch runs one descriptor and rejects non-OK statuses. Session expiry
// surfaces here as a redirect or auth status from the back office.
func (s *service) fetch(ctx context.Context, cookies map[string]string, descriptor omclient.Descriptor) (*omclient.Response, error) {
	resp, err := s.client.Do(ctx, cookies, descriptor)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("%s responded with status %d", descriptor.Kind, resp.StatusCode)
	}
	return resp, nil
}

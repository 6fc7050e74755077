package notifying

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/goretsky-band/dodo-reports/infrastructure/redisstore"
	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

// OrderDetailFetcher resolves a canceled order summary into its detail-page
// view using the given account's session cookies.
type OrderDetailFetcher interface {
	CanceledOrderByUUID(ctx context.Context, cookies map[string]string, summary domain.CanceledOrderSummary) (*domain.CanceledOrder, error)
}

// Counters exposes how many envelopes of each kind have been published since
// process start.
type Counters struct {
	CanceledOrders      int64 `json:"canceled_orders"`
	PizzeriaStopSales   int64 `json:"pizzeria_stop_sales"`
	StreetStopSales     int64 `json:"street_stop_sales"`
	SectorStopSales     int64 `json:"sector_stop_sales"`
	IngredientStopSales int64 `json:"ingredient_stop_sales"`
}

// Notifier publishes report envelopes onto the notification queue.
type Notifier interface {
	NotifyCanceledOrders(ctx context.Context, cookies map[string]string, summaries []domain.CanceledOrderSummary) error
	PublishPizzeriaStopSales(ctx context.Context, stopSales []domain.PizzeriaStopSale) error
	PublishStreetStopSales(ctx context.Context, stopSales []domain.StreetStopSale) error
	PublishSectorStopSales(ctx context.Context, stopSales []domain.SectorStopSale) error
	PublishIngredientStopSales(ctx context.Context, stopSales []domain.IngredientStopSale) error
	GetCounters() Counters
}

type Service struct {
	queue   redisstore.NotificationQueue
	seen    redisstore.SeenOrderSet
	fetcher OrderDetailFetcher

	canceledOrders      atomic.Int64
	pizzeriaStopSales   atomic.Int64
	streetStopSales     atomic.Int64
	sectorStopSales     atomic.Int64
	ingredientStopSales atomic.Int64
}

func NewService(
	queue redisstore.NotificationQueue,
	seen redisstore.SeenOrderSet,
	fetcher OrderDetailFetcher,
) *Service {
	return &Service{
		queue:   queue,
		seen:    seen,
		fetcher: fetcher,
	}
}

// NotifyCanceledOrders publishes one envelope per newly confirmed canceled
// order. An order is enqueued before its UUID is marked seen, so a crash
// between the two steps re-delivers rather than drops. Orders whose refund
// receipt is not printed yet are neither enqueued nor marked, they stay
// eligible for a later tick.
func (s *Service) NotifyCanceledOrders(ctx context.Context, cookies map[string]string, summaries []domain.CanceledOrderSummary) error {
	logger := log.ForContext(ctx)

	for _, summary := range summaries {
		seen, err := s.seen.IsMember(ctx, summary.UUID)
		if err != nil {
			return err
		}
		if seen {
			continue
		}

		order, err := s.fetcher.CanceledOrderByUUID(ctx, cookies, summary)
		if err != nil {
			return err
		}
		if !order.Confirmed() {
			continue
		}

		payload, err := domain.EncodeEnvelope(domain.EnvelopeCanceledOrder, order)
		if err != nil {
			return err
		}
		if err := s.queue.Enqueue(ctx, payload); err != nil {
			return err
		}
		if err := s.seen.Add(ctx, order.UUID); err != nil {
			return err
		}

		s.canceledOrders.Add(1)
		logger.WithFields(log.Fields{
			"order_uuid": order.UUID,
			"department": order.Department,
		}).Debug("new canceled order published")
	}

	return nil
}

// PublishPizzeriaStopSales enqueues every stop sale still open. There is no
// dedup: an open stop sale is re-published on each tick until it is renewed.
func (s *Service) PublishPizzeriaStopSales(ctx context.Context, stopSales []domain.PizzeriaStopSale) error {
	for _, stopSale := range stopSales {
		if !stopSale.Open() {
			continue
		}
		if err := s.publish(ctx, domain.EnvelopePizzeriaStopSales, stopSale, &s.pizzeriaStopSales); err != nil {
			return err
		}
		log.ForContext(ctx).Debugf("new pizzeria stop sale %s", stopSale.Department)
	}
	return nil
}

func (s *Service) PublishStreetStopSales(ctx context.Context, stopSales []domain.StreetStopSale) error {
	for _, stopSale := range stopSales {
		if !stopSale.Open() {
			continue
		}
		if err := s.publish(ctx, domain.EnvelopeStreetStopSales, stopSale, &s.streetStopSales); err != nil {
			return err
		}
		log.ForContext(ctx).Debugf("new street stop sale %s %s", stopSale.Department, stopSale.Sector)
	}
	return nil
}

func (s *Service) PublishSectorStopSales(ctx context.Context, stopSales []domain.SectorStopSale) error {
	for _, stopSale := range stopSales {
		if !stopSale.Open() {
			continue
		}
		if err := s.publish(ctx, domain.EnvelopeSectorStopSales, stopSale, &s.sectorStopSales); err != nil {
			return err
		}
		log.ForContext(ctx).Debugf("new sector stop sale %s %s", stopSale.Department, stopSale.Sector)
	}
	return nil
}

// PublishIngredientStopSales additionally drops ingredients outside the
// watched set, those stops are routine and would flood the queue.
func (s *Service) PublishIngredientStopSales(ctx context.Context, stopSales []domain.IngredientStopSale) error {
	for _, stopSale := range stopSales {
		if !stopSale.Open() {
			continue
		}
		if !isWatchedIngredient(strings.ToLower(stopSale.Ingredient)) {
			continue
		}
		if err := s.publish(ctx, domain.EnvelopeIngredientStopSales, stopSale, &s.ingredientStopSales); err != nil {
			return err
		}
		log.ForContext(ctx).Debugf("new ingredient stop sale %s %s", stopSale.Department, stopSale.Ingredient)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, envelopeType domain.EnvelopeType, record any, counter *atomic.Int64) error {
	payload, err := domain.EncodeEnvelope(envelopeType, record)
	if err != nil {
		return err
	}
	if err := s.queue.Enqueue(ctx, payload); err != nil {
		return err
	}
	counter.Add(1)
	return nil
}

func (s *Service) GetCounters() Counters {
	return Counters{
		CanceledOrders:      s.canceledOrders.Load(),
		PizzeriaStopSales:   s.pizzeriaStopSales.Load(),
		StreetStopSales:     s.streetStopSales.Load(),
		SectorStopSales:     s.sectorStopSales.Load(),
		IngredientStopSales: s.ingredientStopSales.Load(),
	}
}

// watchedIngredientTerms lists term groups for the dough and pizza-base
// ingredients worth alerting on. A stop matches when every term of some
// group occurs in the lowercased ingredient name.
var watchedIngredientTerms = [][]string{
	{"моцарелла"},
	{"сыр", "моцарелла"},
	{"пицца", "соус"},
	{"пицца-соус"},
	{"тесто"},
}

func isWatchedIngredient(ingredient string) bool {
	for _, terms := range watchedIngredientTerms {
		matched := true
		for _, term := range terms {
			if !strings.Contains(ingredient, term) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

package notifying_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	redismocks "github.com/goretsky-band/dodo-reports/infrastructure/redisstore/mocks"
	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/internal/usecases/notifying"
	"github.com/goretsky-band/dodo-reports/internal/usecases/notifying/mocks"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

func TestService_NotifyCanceledOrders_PublishesConfirmedOrder(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := redismocks.NewMockNotificationQueue(ctrl)
	seen := redismocks.NewMockSeenOrderSet(ctrl)
	fetcher := mocks.NewMockOrderDetailFetcher(ctrl)

	summary := domain.CanceledOrderSummary{UUID: "aaa-111", No: "42-5", Price: 1234, Type: "Delivery"}
	rejectedAt := time.Date(2024, 1, 15, 18, 31, 0, 0, time.UTC)
	order := &domain.CanceledOrder{
		Department: "москва 4-1",
		RejectedAt: &rejectedAt,
		No:         "42-5",
		Type:       "Delivery",
		Price:      1234,
		UUID:       "aaa-111",
	}

	cookies := map[string]string{"auth": "token"}
	var published []byte

	// The envelope must hit the queue before the UUID is marked seen, so a
	// crash between the two steps re-delivers instead of dropping the alert.
	gomock.InOrder(
		seen.EXPECT().IsMember(gomock.Any(), "aaa-111").Return(false, nil),
		fetcher.EXPECT().CanceledOrderByUUID(gomock.Any(), cookies, summary).Return(order, nil),
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload []byte) error {
				published = payload
				return nil
			}),
		seen.EXPECT().Add(gomock.Any(), "aaa-111").Return(nil),
	)

	service := notifying.NewService(queue, seen, fetcher)
	err := service.NotifyCanceledOrders(context.Background(), cookies, []domain.CanceledOrderSummary{summary})

	assert.NoError(t, err)

	envelope, err := domain.DecodeEnvelope(published)
	assert.NoError(t, err)
	assert.Equal(t, domain.EnvelopeCanceledOrder, envelope.Type)

	var decoded domain.CanceledOrder
	assert.NoError(t, envelope.DecodeData(&decoded))
	assert.Equal(t, "aaa-111", decoded.UUID)

	assert.Equal(t, int64(1), service.GetCounters().CanceledOrders)
}

func TestService_NotifyCanceledOrders_SkipsSeenOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := redismocks.NewMockNotificationQueue(ctrl)
	seen := redismocks.NewMockSeenOrderSet(ctrl)
	fetcher := mocks.NewMockOrderDetailFetcher(ctrl)

	seen.EXPECT().IsMember(gomock.Any(), "aaa-111").Return(true, nil)

	service := notifying.NewService(queue, seen, fetcher)
	err := service.NotifyCanceledOrders(context.Background(), nil,
		[]domain.CanceledOrderSummary{{UUID: "aaa-111"}})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), service.GetCounters().CanceledOrders)
}

func TestService_NotifyCanceledOrders_LeavesUnconfirmedOrderUnmarked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := redismocks.NewMockNotificationQueue(ctrl)
	seen := redismocks.NewMockSeenOrderSet(ctrl)
	fetcher := mocks.NewMockOrderDetailFetcher(ctrl)

	summary := domain.CanceledOrderSummary{UUID: "aaa-111"}
	unconfirmed := &domain.CanceledOrder{UUID: "aaa-111", Department: "москва 4-1"}

	seen.EXPECT().IsMember(gomock.Any(), "aaa-111").Return(false, nil)
	fetcher.EXPECT().CanceledOrderByUUID(gomock.Any(), gomock.Any(), summary).Return(unconfirmed, nil)
	// No Enqueue and no Add: the order stays eligible for a later tick.

	service := notifying.NewService(queue, seen, fetcher)
	err := service.NotifyCanceledOrders(context.Background(), nil, []domain.CanceledOrderSummary{summary})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), service.GetCounters().CanceledOrders)
}

func TestService_PublishPizzeriaStopSales_RepublishesOpenStops(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := redismocks.NewMockNotificationQueue(ctrl)
	service := notifying.NewService(queue, redismocks.NewMockSeenOrderSet(ctrl), mocks.NewMockOrderDetailFetcher(ctrl))

	stopSales := []domain.PizzeriaStopSale{
		{Department: "москва 4-1", StoppedAt: time.Now()},
		{Department: "москва 4-2", StoppedAt: time.Now(), RenewerName: "Петров П."},
	}

	// Still-open stop sales have no dedup: two ticks publish twice.
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	assert.NoError(t, service.PublishPizzeriaStopSales(context.Background(), stopSales))
	assert.NoError(t, service.PublishPizzeriaStopSales(context.Background(), stopSales))
	assert.Equal(t, int64(2), service.GetCounters().PizzeriaStopSales)
}

func TestService_PublishIngredientStopSales_FiltersWatchList(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		ingredient string
		published  bool
	}{
		{name: "mozzarella", ingredient: "Моцарелла", published: true},
		{name: "mozzarella cheese", ingredient: "Сыр Моцарелла 40%", published: true},
		{name: "sauce without pizza term", ingredient: "Соус для пиццы томатный", published: false},
		{name: "pizza sauce", ingredient: "Пицца-соус", published: true},
		{name: "dough", ingredient: "Тесто 45", published: true},
		{name: "routine ingredient", ingredient: "Перец халапеньо", published: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := redismocks.NewMockNotificationQueue(ctrl)
			if tt.published {
				queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
			}

			service := notifying.NewService(queue, redismocks.NewMockSeenOrderSet(ctrl), mocks.NewMockOrderDetailFetcher(ctrl))
			err := service.PublishIngredientStopSales(context.Background(), []domain.IngredientStopSale{
				{Department: "москва 4-1", Ingredient: tt.ingredient},
			})

			assert.NoError(t, err)
		})
	}
}

func TestService_PublishSectorStopSales_SkipsRenewed(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := redismocks.NewMockNotificationQueue(ctrl)
	service := notifying.NewService(queue, redismocks.NewMockSeenOrderSet(ctrl), mocks.NewMockOrderDetailFetcher(ctrl))

	err := service.PublishSectorStopSales(context.Background(), []domain.SectorStopSale{
		{Department: "москва 4-1", Sector: "Север", RenewerName: "Петров П."},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), service.GetCounters().SectorStopSales)
}

package reconciling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/goretsky-band/dodo-reports/infrastructure/repository/mocks"
	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

type serviceMocks struct {
	kitchen          *mocks.MockKitchenStatisticsRepository
	delivery         *mocks.MockDeliveryStatisticsRepository
	detailedDelivery *mocks.MockDetailedDeliveryStatisticsRepository
	orders           *mocks.MockOrdersStatisticsRepository
	revenue          *mocks.MockRevenueStatisticsRepository
	beingLate        *mocks.MockBeingLateStatisticsRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		kitchen:          mocks.NewMockKitchenStatisticsRepository(ctrl),
		delivery:         mocks.NewMockDeliveryStatisticsRepository(ctrl),
		detailedDelivery: mocks.NewMockDetailedDeliveryStatisticsRepository(ctrl),
		orders:           mocks.NewMockOrdersStatisticsRepository(ctrl),
		revenue:          mocks.NewMockRevenueStatisticsRepository(ctrl),
		beingLate:        mocks.NewMockBeingLateStatisticsRepository(ctrl),
	}
	return NewService(m.kitchen, m.delivery, m.detailedDelivery, m.orders, m.revenue, m.beingLate), m
}

var testDepartments = []domain.Department{
	{ID: 15, Name: "москва 4-1", AccountName: "account-a"},
	{ID: 16, Name: "москва 4-2", AccountName: "account-a"},
}

func TestService_ApplyDetailedDeliveryRows_DropsUnmatchedRows(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	rows := []domain.DeliveryStatisticsRow{
		{Department: "Москва 4-1", TotalAverageTimeSec: 1800},
		{Department: "Тула 1-1", TotalAverageTimeSec: 2400},
	}

	m.detailedDelivery.EXPECT().
		Upsert(gomock.Any(), 15, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, row *domain.DeliveryStatisticsRow) error {
			assert.Equal(t, 1800, row.TotalAverageTimeSec)
			return nil
		})

	err := service.ApplyDetailedDeliveryRows(context.Background(), testDepartments, rows)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), service.UnmatchedRowCount())
}

func TestService_ApplyOrders_CountsBonusCoverage(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	orders := []domain.Order{
		{Department: "Москва 4-1", CustomerPhoneNumber: "+79001234567"},
		{Department: "Москва 4-1", CustomerPhoneNumber: ""},
		{Department: "Москва 4-1", CustomerPhoneNumber: "+79007654321"},
		{Department: "Тула 1-1", CustomerPhoneNumber: "+79000000000"},
	}

	m.orders.EXPECT().
		Upsert(gomock.Any(), 15, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, statistics *domain.OrdersStatistics) error {
			assert.Equal(t, 2, statistics.CustomersWithBonus)
			assert.Equal(t, 3, statistics.TotalCustomers)
			assert.Equal(t, 66.67, statistics.BonusPercentage)
			return nil
		})

	// Department 16 had no orders this tick; its previous row is kept.
	err := service.ApplyOrders(context.Background(), testDepartments, orders)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), service.UnmatchedRowCount())
}

func TestService_ApplyRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.revenue.EXPECT().
		Upsert(gomock.Any(), 15, &domain.RevenueStatistics{DailyRevenue: 160000, IncreaseOverWeekAgo: 60}).
		Return(nil)

	err := service.ApplyRevenue(context.Background(), 15, &domain.UnitOperationalStatistics{
		Today:                domain.OperationalStatistics{Revenue: 160000},
		WeekBeforeToThisTime: domain.OperationalStatistics{Revenue: 100000},
	})

	assert.NoError(t, err)
}

func TestService_ApplyBeingLateCertificates_WritesZeroRows(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	issuedAt := time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)
	today := []domain.BeingLateCertificate{
		{Department: "москва 4-1", IssuedAt: issuedAt},
		{Department: "москва 4-1", IssuedAt: issuedAt},
	}
	weekAgo := []domain.BeingLateCertificate{
		{Department: "москва 4-2", IssuedAt: issuedAt.AddDate(0, 0, -7)},
	}

	m.beingLate.EXPECT().
		Upsert(gomock.Any(), 15, &domain.BeingLateStatistics{DailyAmount: 2, AmountWeekAgo: 0}).
		Return(nil)
	m.beingLate.EXPECT().
		Upsert(gomock.Any(), 16, &domain.BeingLateStatistics{DailyAmount: 0, AmountWeekAgo: 1}).
		Return(nil)

	err := service.ApplyBeingLateCertificates(context.Background(), testDepartments, today, weekAgo)

	assert.NoError(t, err)
}

func TestService_ApplyKitchenStatisticsDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	statistics := &domain.KitchenStatistics{RevenuePerHour: 125000}

	m.kitchen.EXPECT().Upsert(gomock.Any(), 15, statistics).Return(nil)

	assert.NoError(t, service.ApplyKitchenStatistics(context.Background(), 15, statistics))
}

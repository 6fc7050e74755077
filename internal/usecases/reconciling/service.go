package reconciling

import (
	"context"
	"sync/atomic"

	"github.com/goretsky-band/dodo-reports/infrastructure/repository"
	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/log"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// Reconciler lands fetched report data into the statistics tables.
type Reconciler interface {
	ApplyKitchenStatistics(ctx context.Context, departmentID int, statistics *domain.KitchenStatistics) error
	ApplyDeliveryStatistics(ctx context.Context, departmentID int, statistics *domain.DeliveryStatistics) error
	ApplyDetailedDeliveryRows(ctx context.Context, departments []domain.Department, rows []domain.DeliveryStatisticsRow) error
	ApplyOrders(ctx context.Context, departments []domain.Department, orders []domain.Order) error
	ApplyRevenue(ctx context.Context, departmentID int, statistics *domain.UnitOperationalStatistics) error
	ApplyBeingLateCertificates(ctx context.Context, departments []domain.Department, today, weekAgo []domain.BeingLateCertificate) error
	UnmatchedRowCount() int64
}

type Service struct {
	kitchenRepository          repository.KitchenStatisticsRepository
	deliveryRepository         repository.DeliveryStatisticsRepository
	detailedDeliveryRepository repository.DetailedDeliveryStatisticsRepository
	ordersRepository           repository.OrdersStatisticsRepository
	revenueRepository          repository.RevenueStatisticsRepository
	beingLateRepository        repository.BeingLateStatisticsRepository

	// Report rows whose department label matched nothing we track. They are
	// dropped, the counter keeps the drops visible on the status endpoint.
	unmatchedRows atomic.Int64
}

func NewService(
	kitchenRepository repository.KitchenStatisticsRepository,
	deliveryRepository repository.DeliveryStatisticsRepository,
	detailedDeliveryRepository repository.DetailedDeliveryStatisticsRepository,
	ordersRepository repository.OrdersStatisticsRepository,
	revenueRepository repository.RevenueStatisticsRepository,
	beingLateRepository repository.BeingLateStatisticsRepository,
) *Service {
	return &Service{
		kitchenRepository:          kitchenRepository,
		deliveryRepository:         deliveryRepository,
		detailedDeliveryRepository: detailedDeliveryRepository,
		ordersRepository:           ordersRepository,
		revenueRepository:          revenueRepository,
		beingLateRepository:        beingLateRepository,
	}
}

func (s *Service) ApplyKitchenStatistics(ctx context.Context, departmentID int, statistics *domain.KitchenStatistics) error {
	return s.kitchenRepository.Upsert(ctx, departmentID, statistics)
}

func (s *Service) ApplyDeliveryStatistics(ctx context.Context, departmentID int, statistics *domain.DeliveryStatistics) error {
	return s.deliveryRepository.Upsert(ctx, departmentID, statistics)
}

// ApplyDetailedDeliveryRows matches export rows to departments by normalized
// name. Rows for unknown labels are dropped and counted.
func (s *Service) ApplyDetailedDeliveryRows(ctx context.Context, departments []domain.Department, rows []domain.DeliveryStatisticsRow) error {
	byName := departmentsByName(departments)

	for _, row := range rows {
		department, ok := byName[domain.NormalizeDepartmentName(row.Department)]
		if !ok {
			s.unmatchedRows.Add(1)
			log.ForContext(ctx).Warnf("detailed delivery row for unknown department %q dropped", row.Department)
			continue
		}
		if err := s.detailedDeliveryRepository.Upsert(ctx, department.ID, &row); err != nil {
			return err
		}
	}

	return nil
}

// ApplyOrders folds the restaurant orders listing into per-department bonus
// coverage counters. A department without orders in the listing keeps its
// previous row.
func (s *Service) ApplyOrders(ctx context.Context, departments []domain.Department, orders []domain.Order) error {
	byName := departmentsByName(departments)

	type counters struct {
		withBonus int
		total     int
	}
	perDepartment := make(map[int]*counters)

	for _, order := range orders {
		department, ok := byName[domain.NormalizeDepartmentName(order.Department)]
		if !ok {
			s.unmatchedRows.Add(1)
			log.ForContext(ctx).Warnf("order row for unknown department %q dropped", order.Department)
			continue
		}

		count, ok := perDepartment[department.ID]
		if !ok {
			count = &counters{}
			perDepartment[department.ID] = count
		}
		count.total++
		if order.CustomerPhoneNumber != "" {
			count.withBonus++
		}
	}

	for departmentID, count := range perDepartment {
		statistics := &domain.OrdersStatistics{
			CustomersWithBonus: count.withBonus,
			TotalCustomers:     count.total,
			BonusPercentage:    utils.RoundWithTwoDecimalPlace(float64(count.withBonus) / float64(count.total) * 100),
		}
		if err := s.ordersRepository.Upsert(ctx, departmentID, statistics); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) ApplyRevenue(ctx context.Context, departmentID int, statistics *domain.UnitOperationalStatistics) error {
	return s.revenueRepository.Upsert(ctx, departmentID, &domain.RevenueStatistics{
		DailyRevenue:        statistics.Today.Revenue,
		IncreaseOverWeekAgo: statistics.RevenueIncrease(),
	})
}

// ApplyBeingLateCertificates writes today-and-week-ago certificate counts for
// every known department, zero included, so the report always lists each
// pizzeria.
func (s *Service) ApplyBeingLateCertificates(ctx context.Context, departments []domain.Department, today, weekAgo []domain.BeingLateCertificate) error {
	todayCounts := s.countCertificates(ctx, departments, today)
	weekAgoCounts := s.countCertificates(ctx, departments, weekAgo)

	for _, department := range departments {
		statistics := &domain.BeingLateStatistics{
			DailyAmount:   todayCounts[department.ID],
			AmountWeekAgo: weekAgoCounts[department.ID],
		}
		if err := s.beingLateRepository.Upsert(ctx, department.ID, statistics); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) UnmatchedRowCount() int64 {
	return s.unmatchedRows.Load()
}

func (s *Service) countCertificates(ctx context.Context, departments []domain.Department, certificates []domain.BeingLateCertificate) map[int]int {
	byName := departmentsByName(departments)

	counts := make(map[int]int, len(departments))
	for _, certificate := range certificates {
		department, ok := byName[domain.NormalizeDepartmentName(certificate.Department)]
		if !ok {
			s.unmatchedRows.Add(1)
			log.ForContext(ctx).Warnf("certificate for unknown department %q dropped", certificate.Department)
			continue
		}
		counts[department.ID]++
	}

	return counts
}

func departmentsByName(departments []domain.Department) map[string]domain.Department {
	byName := make(map[string]domain.Department, len(departments))
	for _, department := range departments {
		byName[domain.NormalizeDepartmentName(department.Name)] = department
	}
	return byName
}

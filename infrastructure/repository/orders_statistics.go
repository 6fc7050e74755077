package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/database/postgres"
	"github.com/goretsky-band/dodo-reports/internal/domain"
)

const ordersStatisticsTable = "orders_statistics"

type OrdersStatisticsRepository interface {
	Upsert(ctx context.Context, departmentID int, statistics *domain.OrdersStatistics) error
}

type ordersStatisticsRepository struct {
	conn *postgres.Connection
}

func NewOrdersStatisticsRepository(conn *postgres.Connection) OrdersStatisticsRepository {
	return &ordersStatisticsRepository{conn: conn}
}

func (r *ordersStatisticsRepository) Upsert(ctx context.Context, departmentID int, statistics *domain.OrdersStatistics) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(ordersStatisticsTable).
		Columns("department_id", "customers_with_bonus", "total_customers", "bonus_percentage").
		Values(departmentID, statistics.CustomersWithBonus, statistics.TotalCustomers, statistics.BonusPercentage).
		Suffix(`
			ON CONFLICT (department_id) DO UPDATE SET
				customers_with_bonus = EXCLUDED.customers_with_bonus,
				total_customers = EXCLUDED.total_customers,
				bonus_percentage = EXCLUDED.bonus_percentage,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building orders statistics upsert")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upserting orders statistics for department %d", departmentID)
	}

	return nil
}

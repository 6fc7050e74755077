package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/database/postgres"
	"github.com/goretsky-band/dodo-reports/internal/domain"
)

const kitchenStatisticsTable = "kitchen_statistics"

type KitchenStatisticsRepository interface {
	Upsert(ctx context.Context, departmentID int, statistics *domain.KitchenStatistics) error
}

type kitchenStatisticsRepository struct {
	conn *postgres.Connection
}

func NewKitchenStatisticsRepository(conn *postgres.Connection) KitchenStatisticsRepository {
	return &kitchenStatisticsRepository{conn: conn}
}

// Upsert replaces the department's kitchen row wholesale. The panel is a
// point-in-time snapshot, there is nothing to merge.
func (r *kitchenStatisticsRepository) Upsert(ctx context.Context, departmentID int, statistics *domain.KitchenStatistics) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(kitchenStatisticsTable).
		Columns(
			"department_id",
			"revenue_per_hour",
			"revenue_increase_over_week_ago",
			"products_spending_per_hour",
			"products_spending_increase_over_week_ago",
			"average_cooking_time",
			"postponed",
			"in_queue",
			"in_work",
		).
		Values(
			departmentID,
			statistics.RevenuePerHour,
			statistics.RevenueIncrease,
			statistics.SpendingPerHour,
			statistics.SpendingIncrease,
			statistics.AverageCookingTimeSec,
			statistics.Postponed,
			statistics.InQueue,
			statistics.InWork,
		).
		Suffix(`
			ON CONFLICT (department_id) DO UPDATE SET
				revenue_per_hour = EXCLUDED.revenue_per_hour,
				revenue_increase_over_week_ago = EXCLUDED.revenue_increase_over_week_ago,
				products_spending_per_hour = EXCLUDED.products_spending_per_hour,
				products_spending_increase_over_week_ago = EXCLUDED.products_spending_increase_over_week_ago,
				average_cooking_time = EXCLUDED.average_cooking_time,
				postponed = EXCLUDED.postponed,
				in_queue = EXCLUDED.in_queue,
				in_work = EXCLUDED.in_work,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building kitchen statistics upsert")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upserting kitchen statistics for department %d", departmentID)
	}

	return nil
}

package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/database/postgres"
	"github.com/goretsky-band/dodo-reports/internal/domain"
)

const revenueStatisticsTable = "revenue_statistics"

type RevenueStatisticsRepository interface {
	Upsert(ctx context.Context, departmentID int, statistics *domain.RevenueStatistics) error
}

type revenueStatisticsRepository struct {
	conn *postgres.Connection
}

func NewRevenueStatisticsRepository(conn *postgres.Connection) RevenueStatisticsRepository {
	return &revenueStatisticsRepository{conn: conn}
}

func (r *revenueStatisticsRepository) Upsert(ctx context.Context, departmentID int, statistics *domain.RevenueStatistics) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(revenueStatisticsTable).
		Columns("department_id", "daily_revenue", "increase_over_week_ago").
		Values(departmentID, statistics.DailyRevenue, statistics.IncreaseOverWeekAgo).
		Suffix(`
			ON CONFLICT (department_id) DO UPDATE SET
				daily_revenue = EXCLUDED.daily_revenue,
				increase_over_week_ago = EXCLUDED.increase_over_week_ago,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building revenue statistics upsert")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upserting revenue statistics for department %d", departmentID)
	}

	return nil
}

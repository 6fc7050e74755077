package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/database/postgres"
	"github.com/goretsky-band/dodo-reports/internal/domain"
)

const beingLateStatisticsTable = "being_late_statistics"

type BeingLateStatisticsRepository interface {
	Upsert(ctx context.Context, departmentID int, statistics *domain.BeingLateStatistics) error
}

type beingLateStatisticsRepository struct {
	conn *postgres.Connection
}

func NewBeingLateStatisticsRepository(conn *postgres.Connection) BeingLateStatisticsRepository {
	return &beingLateStatisticsRepository{conn: conn}
}

func (r *beingLateStatisticsRepository) Upsert(ctx context.Context, departmentID int, statistics *domain.BeingLateStatistics) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(beingLateStatisticsTable).
		Columns("department_id", "daily_amount", "amount_week_ago").
		Values(departmentID, statistics.DailyAmount, statistics.AmountWeekAgo).
		Suffix(`
			ON CONFLICT (department_id) DO UPDATE SET
				daily_amount = EXCLUDED.daily_amount,
				amount_week_ago = EXCLUDED.amount_week_ago,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building being-late statistics upsert")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upserting being-late statistics for department %d", departmentID)
	}

	return nil
}

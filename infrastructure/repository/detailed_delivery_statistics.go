package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/database/postgres"
	"github.com/goretsky-band/dodo-reports/internal/domain"
)

const detailedDeliveryStatisticsTable = "detailed_delivery_statistics"

type DetailedDeliveryStatisticsRepository interface {
	Upsert(ctx context.Context, departmentID int, row *domain.DeliveryStatisticsRow) error
}

type detailedDeliveryStatisticsRepository struct {
	conn *postgres.Connection
}

func NewDetailedDeliveryStatisticsRepository(conn *postgres.Connection) DetailedDeliveryStatisticsRepository {
	return &detailedDeliveryStatisticsRepository{conn: conn}
}

func (r *detailedDeliveryStatisticsRepository) Upsert(ctx context.Context, departmentID int, row *domain.DeliveryStatisticsRow) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(detailedDeliveryStatisticsTable).
		Columns(
			"department_id",
			"total_average_time",
			"average_cooking_time",
			"average_awaiting_on_heat_shelf_time",
			"average_delivery_time",
		).
		Values(
			departmentID,
			row.TotalAverageTimeSec,
			row.AverageCookingTimeSec,
			row.AverageHeatShelfTimeSec,
			row.AverageDeliveryTimeSec,
		).
		Suffix(`
			ON CONFLICT (department_id) DO UPDATE SET
				total_average_time = EXCLUDED.total_average_time,
				average_cooking_time = EXCLUDED.average_cooking_time,
				average_awaiting_on_heat_shelf_time = EXCLUDED.average_awaiting_on_heat_shelf_time,
				average_delivery_time = EXCLUDED.average_delivery_time,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building detailed delivery statistics upsert")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upserting detailed delivery statistics for department %d", departmentID)
	}

	return nil
}

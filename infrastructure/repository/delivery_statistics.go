package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/database/postgres"
	"github.com/goretsky-band/dodo-reports/internal/domain"
)

const deliveryStatisticsTable = "delivery_statistics"

type DeliveryStatisticsRepository interface {
	Upsert(ctx context.Context, departmentID int, statistics *domain.DeliveryStatistics) error
}

type deliveryStatisticsRepository struct {
	conn *postgres.Connection
}

func NewDeliveryStatisticsRepository(conn *postgres.Connection) DeliveryStatisticsRepository {
	return &deliveryStatisticsRepository{conn: conn}
}

func (r *deliveryStatisticsRepository) Upsert(ctx context.Context, departmentID int, statistics *domain.DeliveryStatistics) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(deliveryStatisticsTable).
		Columns(
			"department_id",
			"deliveries_amount_per_hour",
			"increase_over_week_ago",
			"awaiting_orders_amount",
			"couriers_total_amount",
			"couriers_in_queue_amount",
			"delivery_awaiting_time",
		).
		Values(
			departmentID,
			statistics.DeliveriesPerHour,
			statistics.IncreaseOverWeekAgo,
			statistics.AwaitingOrders,
			statistics.CouriersTotal,
			statistics.CouriersInQueue,
			statistics.AwaitingTimeSec,
		).
		Suffix(`
			ON CONFLICT (department_id) DO UPDATE SET
				deliveries_amount_per_hour = EXCLUDED.deliveries_amount_per_hour,
				increase_over_week_ago = EXCLUDED.increase_over_week_ago,
				awaiting_orders_amount = EXCLUDED.awaiting_orders_amount,
				couriers_total_amount = EXCLUDED.couriers_total_amount,
				couriers_in_queue_amount = EXCLUDED.couriers_in_queue_amount,
				delivery_awaiting_time = EXCLUDED.delivery_awaiting_time,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building delivery statistics upsert")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upserting delivery statistics for department %d", departmentID)
	}

	return nil
}

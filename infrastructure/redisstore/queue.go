package redisstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const notificationQueueKey = "report-notifications-queue"

// NotificationQueue is the durable envelope queue feeding the chat bot.
// Delivery is at-least-once across process restarts; producers may enqueue
// from overlapping job ticks.
type NotificationQueue interface {
	Enqueue(ctx context.Context, payload []byte) error
	Dequeue(ctx context.Context) ([]byte, error)
}

type notificationQueue struct {
	conn *Connection
}

func NewNotificationQueue(conn *Connection) NotificationQueue {
	return &notificationQueue{conn: conn}
}

func (q *notificationQueue) Enqueue(ctx context.Context, payload []byte) error {
	return errors.Wrap(
		q.conn.rdb.RPush(ctx, notificationQueueKey, payload).Err(),
		"enqueueing notification",
	)
}

// Dequeue pops one envelope, returning ErrQueueEmpty when there is nothing
// to consume.
func (q *notificationQueue) Dequeue(ctx context.Context) ([]byte, error) {
	payload, err := q.conn.rdb.LPop(ctx, notificationQueueKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrQueueEmpty
		}
		return nil, errors.Wrap(err, "dequeueing notification")
	}
	return payload, nil
}

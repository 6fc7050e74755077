package redisstore

import (
	"context"

	"github.com/pkg/errors"
)

const seenOrdersKey = "canceled-orders-uuids"

// SeenOrderSet is the persistent membership set behind at-most-once canceled
// order alerting. A UUID present here must never produce a second envelope.
type SeenOrderSet interface {
	IsMember(ctx context.Context, orderUUID string) (bool, error)
	Add(ctx context.Context, orderUUID string) error
}

type seenOrderSet struct {
	conn *Connection
}

func NewSeenOrderSet(conn *Connection) SeenOrderSet {
	return &seenOrderSet{conn: conn}
}

func (s *seenOrderSet) IsMember(ctx context.Context, orderUUID string) (bool, error) {
	member, err := s.conn.rdb.SIsMember(ctx, seenOrdersKey, orderUUID).Result()
	if err != nil {
		return false, errors.Wrapf(err, "checking seen set for order %s", orderUUID)
	}
	return member, nil
}

func (s *seenOrderSet) Add(ctx context.Context, orderUUID string) error {
	return errors.Wrapf(
		s.conn.rdb.SAdd(ctx, seenOrdersKey, orderUUID).Err(),
		"marking order %s as seen", orderUUID,
	)
}

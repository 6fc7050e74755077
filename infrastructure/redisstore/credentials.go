package redisstore

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// CredentialStore resolves pre-provisioned back-office session cookies by
// account alias.
type CredentialStore interface {
	Cookies(ctx context.Context, accountName string) (map[string]string, error)
	CookiesTTL(ctx context.Context, accountName string) (time.Duration, error)
}

type credentialStore struct {
	conn *Connection
}

func NewCredentialStore(conn *Connection) CredentialStore {
	return &credentialStore{conn: conn}
}

// Cookies returns the cookie hash stored under the account alias.
func (s *credentialStore) Cookies(ctx context.Context, accountName string) (map[string]string, error) {
	cookies, err := s.conn.rdb.HGetAll(ctx, accountName).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "reading cookies for account %q", accountName)
	}

	if len(cookies) == 0 {
		return nil, errors.Wrapf(ErrCookiesNotFound, "account %q", accountName)
	}

	return cookies, nil
}

// CookiesTTL reports how long the account's cookie set remains valid.
func (s *credentialStore) CookiesTTL(ctx context.Context, accountName string) (time.Duration, error) {
	ttl, err := s.conn.rdb.TTL(ctx, accountName).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "reading cookies ttl for account %q", accountName)
	}
	return ttl, nil
}

package contracts

import (
	"context"
	"time"
)

// SessionStorage is the persisted key-value namespace of one browser session.
// Only the session store reads or writes it.
type SessionStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context) ([]string, error)
}

// SessionStorageFactory opens the namespace for a session id.
type SessionStorageFactory func(sessionID string) SessionStorage

type Storage interface {
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}

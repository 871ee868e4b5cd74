package redis

import (
	"context"
	"fmt"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type sessionStorage struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

// NewSessionStorage keeps the keys of one session under session:<id>:<key>.
// Every write pushes the expiry of the written key forward by ttl.
func NewSessionStorage(client *redis.Client, sessionID string, ttl time.Duration) contracts.SessionStorage {
	return &sessionStorage{
		client:    client,
		sessionID: sessionID,
		ttl:       ttl,
	}
}

func NewSessionStorageFactory(client *redis.Client, ttl time.Duration) contracts.SessionStorageFactory {
	return func(sessionID string) contracts.SessionStorage {
		return NewSessionStorage(client, sessionID, ttl)
	}
}

func (s *sessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.namespaced(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	} else if err != nil {
		return "", false, exceptions.ErrRedisGet(err)
	}
	return value, true, nil
}

func (s *sessionStorage) Set(ctx context.Context, key, value string) error {
	err := s.client.Set(ctx, s.namespaced(key), value, s.ttl).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (s *sessionStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	namespacedKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		namespacedKeys = append(namespacedKeys, s.namespaced(key))
	}

	err := s.client.Del(ctx, namespacedKeys...).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (s *sessionStorage) Keys(ctx context.Context) ([]string, error) {
	prefix := s.namespaced("")
	keys := []string{}

	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, exceptions.ErrRedisScanKeys(err)
	}
	return keys, nil
}

func (s *sessionStorage) namespaced(key string) string {
	return fmt.Sprintf("%s:%s:%s", constvars.StorageKeyPrefix, s.sessionID, key)
}

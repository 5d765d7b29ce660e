// Package redisstore implements the key-value store contract on Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/WashE-BookingService/internal/infra/kvstore"
)

// Store Redis-реализация kvstore.Store
type Store struct {
	client *redis.Client
}

// NewStore создает хранилище поверх существующего клиента Redis
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Connect открывает соединение с Redis и проверяет его пингом
func Connect(ctx context.Context, addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to ping redis at %s: %v", kvstore.ErrUnavailable, addr, err)
	}

	return NewStore(client), nil
}

// Get возвращает значение по ключу
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - %v", kvstore.ErrUnavailable, err)
	}
	return value, true, nil
}

// Set записывает значение по ключу без TTL
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", kvstore.ErrUnavailable, err)
	}
	return nil
}

// Delete удаляет ключ
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %v", kvstore.ErrUnavailable, err)
	}
	return nil
}

// Keys возвращает все ключи с указанным префиксом.
// Ключей в системе немного (по одному на пользователя), поэтому SCAN
// вместо KEYS здесь не требуется.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys, err := s.client.Keys(ctx, prefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - %v", kvstore.ErrUnavailable, err)
	}
	return keys, nil
}

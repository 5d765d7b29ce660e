// Package storemetrics wraps a key-value store and records prometheus
// metrics for every operation.
package storemetrics

import (
	"context"
	"time"

	"github.com/m04kA/WashE-BookingService/pkg/metrics"
)

// KVStore is the subset of the key-value store contract the wrapper needs.
// Declared locally so the package does not depend on a concrete backend.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Store is a KVStore decorated with operation metrics
type Store struct {
	next KVStore
	m    *metrics.Metrics
}

// Wrap decorates the given store with metrics collection
func Wrap(next KVStore, m *metrics.Metrics) *Store {
	return &Store{next: next, m: m}
}

// Get implements KVStore
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	value, ok, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return value, ok, err
}

// Set implements KVStore
func (s *Store) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe("set", start, err)
	return err
}

// Delete implements KVStore
func (s *Store) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.observe("delete", start, err)
	return err
}

// Keys implements KVStore
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	start := time.Now()
	keys, err := s.next.Keys(ctx, prefix)
	s.observe("keys", start, err)
	return keys, err
}

func (s *Store) observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.m.StoreOpsTotal.WithLabelValues(op, result).Inc()
	s.m.StoreOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

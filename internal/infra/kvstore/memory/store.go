// Package memory implements an in-memory key-value store.
//
// Используется в demo-режиме и в тестах. Мьютекс защищает только
// целостность map; никакой координации между читателями и писателями
// поверх него нет, последняя запись побеждает.
package memory

import (
	"context"
	"strings"
	"sync"
)

// Store in-memory реализация kvstore.Store
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewStore создает пустое in-memory хранилище
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// Get возвращает значение по ключу
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

// Set записывает значение по ключу
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete удаляет ключ
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Keys возвращает все ключи с указанным префиксом
func (s *Store) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

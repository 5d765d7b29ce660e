// Package kvstore defines the key-value storage contract of the service.
//
// Контракт узкий: get/set/delete по ключу плюс перечисление ключей
// по префиксу. Этого достаточно для списков бронирований и сессии.
package kvstore

import (
	"context"
	"errors"
)

// Store контракт key-value хранилища
type Store interface {
	// Get возвращает значение по ключу. Второй результат false, если ключ отсутствует.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set записывает значение по ключу, перезаписывая предыдущее.
	Set(ctx context.Context, key, value string) error
	// Delete удаляет ключ. Удаление отсутствующего ключа не является ошибкой.
	Delete(ctx context.Context, key string) error
	// Keys возвращает все ключи, начинающиеся с префикса.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

var (
	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = errors.New("kvstore: storage unavailable")
)

// Package postgres implements the key-value store contract on a single
// PostgreSQL table (see schema.sql).
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WashE-BookingService/pkg/psqlbuilder"
)

const table = "washe_kv"

// Store PostgreSQL-реализация kvstore.Store
type Store struct {
	db *sql.DB
}

// NewStore создает хранилище поверх открытого соединения с БД
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get возвращает значение по ключу
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psqlbuilder.Select("value").
		From(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - scan value: %v", ErrExecQuery, err)
	}

	return value, true, nil
}

// Set записывает значение по ключу (upsert)
func (s *Store) Set(ctx context.Context, key, value string) error {
	query, args, err := psqlbuilder.Insert(table).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete удаляет ключ
func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// Keys возвращает все ключи с указанным префиксом
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := psqlbuilder.Select("key").
		From(table).
		Where(squirrel.Like{"key": escapeLike(prefix) + "%"}).
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: Keys - scan key: %v", ErrScanRow, err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Keys - rows error: %v", ErrScanRow, err)
	}

	return keys, nil
}

// escapeLike экранирует спецсимволы LIKE в префиксе ключа
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' || s[i] == '_' || s[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

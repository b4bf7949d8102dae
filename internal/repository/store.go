package repository

import (
	"context"
	"errors"
	"time"
)

// Store определяет методы key-value хранилища, которое использует скоринг.
// Get — авторитетное чтение (интересы клиентов), ошибки которого
// прерывают запрос. Кэш счета (CacheGet/CacheSet) — best-effort:
// его недоступность не должна приводить к ошибке запроса.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	CacheGet(ctx context.Context, key string) (float64, bool)
	CacheSet(ctx context.Context, key string, value float64, ttl time.Duration)
}

// Кастомные ошибки хранилища.
var ErrKeyNotFound = errors.New("ключ не найден")

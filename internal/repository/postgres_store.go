package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
)

// Убедимся, что PostgresStore удовлетворяет интерфейсу Store.
var _ Store = (*PostgresStore)(nil)

// PostgresStore реализует Store поверх PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore создает хранилище поверх готового подключения к БД.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get возвращает значение по ключу из таблицы kv.
// Отсутствующий ключ превращается в ErrKeyNotFound.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM kv WHERE key = $1`
	var value string

	err := s.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		log.Printf("[Repo] Ошибка чтения ключа '%s': %v", key, err)
		return "", fmt.Errorf("ошибка выполнения запроса на чтение ключа: %w", err)
	}
	return value, nil
}

// CacheGet возвращает закэшированное значение, если срок его жизни не истек.
// Ошибки БД здесь не фатальны: кэш просто считается пустым.
func (s *PostgresStore) CacheGet(ctx context.Context, key string) (float64, bool) {
	query := `SELECT value FROM score_cache WHERE key = $1 AND expires_at > now()`
	var value float64

	err := s.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[Repo] Ошибка чтения кэша по ключу '%s': %v", key, err)
		}
		return 0, false
	}
	return value, true
}

// CacheSet записывает значение в кэш. Ошибка записи логируется и глотается:
// недоступность кэша не должна ломать запрос.
func (s *PostgresStore) CacheSet(ctx context.Context, key string, value float64, ttl time.Duration) {
	query := `INSERT INTO score_cache (key, value, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`

	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().Add(ttl)); err != nil {
		log.Printf("[Repo] Ошибка записи кэша по ключу '%s': %v", key, err)
	}
}

package repository

import (
	"context"
	"sync"
	"time"
)

// Убедимся, что MemoryStore удовлетворяет интерфейсу Store.
var _ Store = (*MemoryStore)(nil)

// MemoryStore — хранилище в памяти процесса.
// Используется в тестах и как запасной вариант, когда строка
// подключения к БД не задана.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]string
	cache map[string]cacheEntry
}

type cacheEntry struct {
	value     float64
	expiresAt time.Time
}

// NewMemoryStore создает пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:  make(map[string]string),
		cache: make(map[string]cacheEntry),
	}
}

// Set записывает значение по ключу (наполнение хранилища данными).
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Get возвращает значение по ключу или ErrKeyNotFound.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// CacheGet возвращает закэшированное значение, если срок его жизни не истек.
func (s *MemoryStore) CacheGet(_ context.Context, key string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return 0, false
	}
	return entry.value, true
}

// CacheSet записывает значение в кэш с указанным временем жизни.
func (s *MemoryStore) CacheSet(_ context.Context, key string, value float64, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
}

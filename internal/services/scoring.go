package services

import (
	"context"
	"crypto/md5" //nolint:gosec // md5 используется только как ключ кэша
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"scoring-api/internal/repository"
)

// Время жизни кэша счета.
const scoreCacheTTL = time.Hour

// Веса слагаемых счета.
const (
	phoneScore    = 1.5
	emailScore    = 1.5
	birthdayScore = 1.5 // начисляется при наличии и birthday, и gender
	nameScore     = 0.5 // начисляется при наличии обеих частей имени
)

// Scorer — бизнес-коллабораторы методов API.
// Выделен интерфейсом, чтобы диспетчер можно было тестировать с моками.
type Scorer interface {
	GetScore(ctx context.Context, phone, email, firstName, lastName, birthday *string, gender *int) (float64, error)
	GetInterests(ctx context.Context, clientID int) ([]string, error)
}

// Убедимся, что ScoringService удовлетворяет интерфейсу Scorer.
var _ Scorer = (*ScoringService)(nil)

// ScoringService вычисляет счет пользователя и читает интересы клиентов
// из key-value хранилища.
type ScoringService struct {
	store repository.Store
}

// NewScoringService создает сервис скоринга поверх хранилища.
func NewScoringService(store repository.Store) *ScoringService {
	return &ScoringService{store: store}
}

// GetScore возвращает счет пользователя по переданным полям.
// Результат кэшируется в хранилище на час; недоступность кэша
// не считается ошибкой — счет пересчитывается заново.
func (s *ScoringService) GetScore(
	ctx context.Context,
	phone, email, firstName, lastName, birthday *string,
	gender *int,
) (float64, error) {
	key := scoreCacheKey(phone, firstName, lastName, birthday)
	if cached, ok := s.store.CacheGet(ctx, key); ok {
		return cached, nil
	}

	score := 0.0
	if phone != nil && *phone != "" {
		score += phoneScore
	}
	if email != nil && *email != "" {
		score += emailScore
	}
	if birthday != nil && *birthday != "" && gender != nil {
		score += birthdayScore
	}
	if firstName != nil && *firstName != "" && lastName != nil && *lastName != "" {
		score += nameScore
	}

	s.store.CacheSet(ctx, key, score, scoreCacheTTL)
	return score, nil
}

// GetInterests возвращает список интересов клиента по ключу "i:<id>".
// Значение в хранилище — JSON-массив строк. Отсутствующий ключ дает
// пустой список, остальные ошибки хранилища прерывают запрос.
func (s *ScoringService) GetInterests(ctx context.Context, clientID int) ([]string, error) {
	raw, err := s.store.Get(ctx, fmt.Sprintf("i:%d", clientID))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return []string{}, nil
		}
		log.Printf("[Scoring] Ошибка чтения интересов клиента %d: %v", clientID, err)
		return nil, fmt.Errorf("ошибка чтения интересов клиента %d: %w", clientID, err)
	}

	var interests []string
	if err := json.Unmarshal([]byte(raw), &interests); err != nil {
		log.Printf("[Scoring] Некорректное значение интересов клиента %d: %v", clientID, err)
		return nil, fmt.Errorf("некорректное значение интересов клиента %d: %w", clientID, err)
	}
	return interests, nil
}

// scoreCacheKey строит ключ кэша из идентифицирующих частей запроса.
func scoreCacheKey(phone, firstName, lastName, birthday *string) string {
	parts := []string{
		deref(firstName),
		deref(lastName),
		deref(phone),
		deref(birthday),
	}
	sum := md5.Sum([]byte(strings.Join(parts, ""))) //nolint:gosec
	return "uid:" + hex.EncodeToString(sum[:])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Тип для ключа контекста.
type contextKey string

// Ключ для хранения идентификатора запроса в контексте.
const RequestIDKey contextKey = "requestID"

// Заголовок с идентификатором запроса.
const requestIDHeader = "X-Request-Id"

// RequestID присваивает запросу идентификатор: берет его из заголовка
// X-Request-Id, а при его отсутствии генерирует uuid4 без дефисов.
// Идентификатор кладется в контекст запроса и возвращается в ответе.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = strings.ReplaceAll(uuid.NewString(), "-", "")
		}

		w.Header().Set(requestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestIDFromContext извлекает идентификатор запроса из контекста.
// Возвращает идентификатор и true, если он найден, иначе пустую строку и false.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}

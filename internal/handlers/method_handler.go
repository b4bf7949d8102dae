package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"scoring-api/internal/middleware"
	"scoring-api/internal/services"
)

// Стандартные тексты ошибок для кодов без собственного сообщения.
var statusTexts = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Invalid Request",
	http.StatusInternalServerError: "Internal Server Error",
}

// Dispatcher определяет интерфейс ядра валидации и диспетчеризации.
// Это позволит нам легко подменять реализацию (например, для тестов).
type Dispatcher interface {
	Dispatch(ctx context.Context, body map[string]any, rctx *services.RequestContext) (any, int, error)
}

// MethodHandler обрабатывает HTTP-запросы к единственной точке входа API.
type MethodHandler struct {
	dispatcher Dispatcher
}

// NewMethodHandler создает новый экземпляр MethodHandler.
func NewMethodHandler(d Dispatcher) *MethodHandler {
	return &MethodHandler{dispatcher: d}
}

// Handle обрабатывает POST /method.
// Недекодируемое тело — 400, дальше ответ определяется диспетчером.
// Паника внутри диспетчеризации перехватывается и превращается
// в общий ответ 500 без деталей для клиента.
func (h *MethodHandler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, _ := middleware.GetRequestIDFromContext(r.Context())
	rctx := services.NewRequestContext(requestID)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[MethodHandler] Ошибка чтения тела запроса %s: %v", requestID, err)
		writeError(w, http.StatusBadRequest, "")
		return
	}

	var raw map[string]any
	if err = json.Unmarshal(body, &raw); err != nil {
		log.Printf("[MethodHandler] Недекодируемое тело запроса %s: %v", requestID, err)
		writeError(w, http.StatusBadRequest, "")
		return
	}

	log.Printf("[MethodHandler] %s %s: %s", r.URL.Path, requestID, body)

	response, code, dispatchErr := h.safeDispatch(r.Context(), raw, rctx)
	if dispatchErr != nil {
		message := ""
		if code != http.StatusInternalServerError {
			// Детали внутренних ошибок клиенту не возвращаются.
			message = dispatchErr.Error()
		}
		writeError(w, code, message)
	} else {
		writeResponse(w, code, response)
	}

	log.Printf("[MethodHandler] Запрос %s завершен с кодом %d, контекст: %v", requestID, code, rctx.Fields())
}

// safeDispatch вызывает диспетчер, перехватывая панику обработчиков.
func (h *MethodHandler) safeDispatch(
	ctx context.Context,
	raw map[string]any,
	rctx *services.RequestContext,
) (response any, code int, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("[MethodHandler] Паника при обработке запроса %s: %v", rctx.RequestID, p)
			response, code, err = nil, http.StatusInternalServerError, errors.New("внутренняя ошибка сервера")
		}
	}()
	return h.dispatcher.Dispatch(ctx, raw, rctx)
}

// NotFound отвечает конвертом ошибки на неизвестный путь.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "")
}

// MethodNotAllowed отвечает конвертом ошибки на неподдерживаемый HTTP-метод.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "")
}

// writeResponse отправляет успешный конверт {"response": ..., "code": ...}.
func writeResponse(w http.ResponseWriter, code int, response any) {
	writeJSON(w, code, map[string]any{
		"response": response,
		"code":     code,
	})
}

// writeError отправляет конверт {"error": ..., "code": ...}.
// Пустое сообщение заменяется стандартным текстом кода.
func writeError(w http.ResponseWriter, code int, message string) {
	if message == "" {
		if text, ok := statusTexts[code]; ok {
			message = text
		} else {
			message = "Unknown Error"
		}
	}
	writeJSON(w, code, map[string]any{
		"error": message,
		"code":  code,
	})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[MethodHandler] Ошибка кодирования ответа: %v", err)
	}
}

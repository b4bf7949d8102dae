package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"scoring-api/internal/models"
)

// Фиксированный счет административного пользователя: сознательное
// упрощение для доверенного принципала, скоринг для него не вызывается.
const adminScore = 42.0

// handlerFunc — обработчик одного метода API.
type handlerFunc func(ctx context.Context, req *models.MethodRequest, rctx *RequestContext) (any, int, error)

// Dispatcher валидирует конверт запроса, проверяет авторизацию и
// передает управление обработчику метода из статической таблицы.
// Состояния между запросами нет: каждый вызов Dispatch работает только
// с данными своих аргументов.
type Dispatcher struct {
	scorer    Scorer
	salt      string
	adminSalt string
	methods   map[string]handlerFunc
}

// NewDispatcher создает диспетчер с таблицей методов API.
func NewDispatcher(scorer Scorer, salt, adminSalt string) *Dispatcher {
	d := &Dispatcher{
		scorer:    scorer,
		salt:      salt,
		adminSalt: adminSalt,
	}
	d.methods = map[string]handlerFunc{
		models.MethodOnlineScore:      d.onlineScore,
		models.MethodClientsInterests: d.clientsInterests,
	}
	return d
}

// Dispatch обрабатывает одно сырое тело запроса.
// Возвращает результат метода, HTTP-код и ошибку для кодов 4xx/5xx.
// Ошибка валидации конверта и неизвестный метод дают 422, провал
// авторизации 403, ошибка коллаборатора 500.
func (d *Dispatcher) Dispatch(ctx context.Context, body map[string]any, rctx *RequestContext) (any, int, error) {
	req, err := models.ParseMethodRequest(body)
	if err != nil {
		log.Printf("[Dispatcher] Невалидный конверт запроса %s: %v", rctx.RequestID, err)
		return nil, http.StatusUnprocessableEntity, err
	}

	if !CheckAuth(req, d.salt, d.adminSalt) {
		log.Printf("[Dispatcher] Провал авторизации запроса %s: логин '%s'", rctx.RequestID, req.Login)
		return nil, http.StatusForbidden, errors.New("доступ запрещен")
	}

	handler, ok := d.methods[req.Method]
	if !ok {
		log.Printf("[Dispatcher] Неизвестный метод '%s' в запросе %s", req.Method, rctx.RequestID)
		return nil, http.StatusUnprocessableEntity, fmt.Errorf("неизвестный метод '%s'", req.Method)
	}
	return handler(ctx, req, rctx)
}

// onlineScore обрабатывает метод online_score.
func (d *Dispatcher) onlineScore(ctx context.Context, req *models.MethodRequest, rctx *RequestContext) (any, int, error) {
	args, err := models.ParseOnlineScoreRequest(req.Arguments)
	if err != nil {
		log.Printf("[Dispatcher] Невалидные аргументы online_score в запросе %s: %v", rctx.RequestID, err)
		return nil, http.StatusUnprocessableEntity, err
	}
	if err = args.ValidatePairs(); err != nil {
		log.Printf("[Dispatcher] Нарушено правило пар online_score в запросе %s", rctx.RequestID)
		return nil, http.StatusUnprocessableEntity, err
	}

	rctx.Set("has", args.Has())

	if req.IsAdmin() {
		return map[string]any{"score": adminScore}, http.StatusOK, nil
	}

	score, err := d.scorer.GetScore(ctx, args.Phone, args.Email, args.FirstName, args.LastName, args.Birthday, args.Gender)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("ошибка вычисления счета: %w", err)
	}
	return map[string]any{"score": score}, http.StatusOK, nil
}

// clientsInterests обрабатывает метод clients_interests.
func (d *Dispatcher) clientsInterests(ctx context.Context, req *models.MethodRequest, rctx *RequestContext) (any, int, error) {
	args, err := models.ParseClientsInterestsRequest(req.Arguments)
	if err != nil {
		log.Printf("[Dispatcher] Невалидные аргументы clients_interests в запросе %s: %v", rctx.RequestID, err)
		return nil, http.StatusUnprocessableEntity, err
	}

	rctx.Set("nclients", args.NClients())

	interests := make(map[int][]string, args.NClients())
	for _, id := range args.ClientIDs {
		list, err := d.scorer.GetInterests(ctx, id)
		if err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("ошибка получения интересов: %w", err)
		}
		interests[id] = list
	}
	return interests, http.StatusOK, nil
}

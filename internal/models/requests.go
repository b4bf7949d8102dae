// Package models описывает схемы запросов scoring API.
//
// Каждая схема объявлена статической таблицей ограничений полей и
// превращается в типизированную структуру конструктором ParseX.
// Экземпляры после конструирования не изменяются.
package models

import (
	"errors"

	"scoring-api/internal/validation"
)

// Логин административного пользователя.
const AdminLogin = "admin"

// Имена методов API.
const (
	MethodOnlineScore      = "online_score"
	MethodClientsInterests = "clients_interests"
)

// ErrNoRequiredPairs — нарушение перекрестного правила аргументов online_score.
var ErrNoRequiredPairs = errors.New(
	"необходимо передать хотя бы одну пару полей: phone и email, first_name и last_name, gender и birthday")

// MethodRequest — конверт запроса: метаданные авторизации и маршрутизации
// плюс словарь аргументов конкретного метода.
type MethodRequest struct {
	Account   string
	Login     string
	Token     string
	Arguments map[string]any
	Method    string
}

var methodRequestSchema = validation.Schema{
	{Name: "account", Nullable: true, Rule: validation.Char{}},
	{Name: "login", Required: true, Nullable: true, Rule: validation.Char{}},
	{Name: "token", Required: true, Nullable: true, Rule: validation.Char{}},
	{Name: "arguments", Required: true, Nullable: true, Rule: validation.Arguments{}},
	{Name: "method", Required: true, Rule: validation.Char{}},
}

// ParseMethodRequest валидирует сырое тело запроса и строит конверт.
// Отсутствующий account приводится к пустой строке.
func ParseMethodRequest(raw map[string]any) (*MethodRequest, error) {
	values, err := methodRequestSchema.Construct(raw)
	if err != nil {
		return nil, err
	}
	req := &MethodRequest{
		Account: asString(values["account"]),
		Login:   asString(values["login"]),
		Token:   asString(values["token"]),
		Method:  asString(values["method"]),
	}
	if args, ok := values["arguments"].(map[string]any); ok {
		req.Arguments = args
	}
	return req, nil
}

// IsAdmin сообщает, что запрос выполняется от имени административного логина.
func (r *MethodRequest) IsAdmin() bool {
	return r.Login == AdminLogin
}

// OnlineScoreRequest — аргументы метода online_score.
// nil-указатель означает, что поле не было передано; переданное, но пустое
// значение хранится как указатель на пустое значение и считается присутствующим.
type OnlineScoreRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string // нормализованная строка из 11 цифр
	Birthday  *string // строка ДД.ММ.ГГГГ
	Gender    *int

	present []string
}

var onlineScoreSchema = validation.Schema{
	{Name: "first_name", Nullable: true, Rule: validation.Char{}},
	{Name: "last_name", Nullable: true, Rule: validation.Char{}},
	{Name: "email", Nullable: true, Rule: validation.Email{}},
	{Name: "phone", Nullable: true, Rule: validation.Phone{}},
	{Name: "birthday", Nullable: true, Rule: validation.BirthDay{}},
	{Name: "gender", Nullable: true, Rule: validation.Gender{}},
}

// ParseOnlineScoreRequest валидирует аргументы метода online_score.
func ParseOnlineScoreRequest(raw map[string]any) (*OnlineScoreRequest, error) {
	values, err := onlineScoreSchema.Construct(raw)
	if err != nil {
		return nil, err
	}
	req := &OnlineScoreRequest{
		FirstName: asStringPtr(values["first_name"]),
		LastName:  asStringPtr(values["last_name"]),
		Email:     asStringPtr(values["email"]),
		Phone:     asStringPtr(values["phone"]),
		Birthday:  asStringPtr(values["birthday"]),
		Gender:    asIntPtr(values["gender"]),
	}
	for _, name := range onlineScoreSchema.Names() {
		if values[name] != nil {
			req.present = append(req.present, name)
		}
	}
	return req, nil
}

// ValidatePairs проверяет перекрестное правило: хотя бы одна из пар
// {phone, email}, {first_name, last_name}, {gender, birthday}
// должна быть передана целиком.
func (r *OnlineScoreRequest) ValidatePairs() error {
	switch {
	case r.Phone != nil && r.Email != nil:
		return nil
	case r.FirstName != nil && r.LastName != nil:
		return nil
	case r.Gender != nil && r.Birthday != nil:
		return nil
	default:
		return ErrNoRequiredPairs
	}
}

// Has возвращает имена переданных полей в порядке объявления схемы.
func (r *OnlineScoreRequest) Has() []string {
	return r.present
}

// ClientsInterestsRequest — аргументы метода clients_interests.
type ClientsInterestsRequest struct {
	ClientIDs []int
	Date      *string // строка ДД.ММ.ГГГГ
}

var clientsInterestsSchema = validation.Schema{
	{Name: "client_ids", Required: true, Rule: validation.ClientIDs{}},
	{Name: "date", Nullable: true, Rule: validation.Date{}},
}

// ParseClientsInterestsRequest валидирует аргументы метода clients_interests.
func ParseClientsInterestsRequest(raw map[string]any) (*ClientsInterestsRequest, error) {
	values, err := clientsInterestsSchema.Construct(raw)
	if err != nil {
		return nil, err
	}
	req := &ClientsInterestsRequest{
		Date: asStringPtr(values["date"]),
	}
	if ids, ok := values["client_ids"].([]int); ok {
		req.ClientIDs = ids
	}
	return req, nil
}

// NClients возвращает количество переданных идентификаторов клиентов.
func (r *ClientsInterestsRequest) NClients() int {
	return len(r.ClientIDs)
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

func asStringPtr(value any) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}

func asIntPtr(value any) *int {
	n, ok := value.(int)
	if !ok {
		return nil
	}
	return &n
}

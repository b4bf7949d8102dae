package services

import (
	"crypto/sha512"
	"encoding/hex"
	"time"

	"scoring-api/internal/models"
)

// Соли по умолчанию (совместимы с исходным сервисом).
const (
	DefaultSalt      = "Otus"
	DefaultAdminSalt = "42"
)

// Формат метки времени для административного digest: локальный час.
const adminDigestTimeLayout = "2006010215"

// CheckAuth сверяет токен запроса с вычисленным digest.
// Для административного логина digest зависит от текущего часа и
// административной соли, для остальных — от account, login и общей соли.
// Отсутствующий account считается пустой строкой. Никакого состояния
// сессии не ведется: совпадение digest — единственный критерий.
func CheckAuth(req *models.MethodRequest, salt, adminSalt string) bool {
	var digest string
	if req.IsAdmin() {
		digest = sha512Hex(time.Now().Format(adminDigestTimeLayout) + adminSalt)
	} else {
		digest = sha512Hex(req.Account + req.Login + salt)
	}
	return digest == req.Token
}

// AdminDigest возвращает действующий административный digest.
// Используется тестами и инструментами для выпуска валидного токена.
func AdminDigest(adminSalt string, now time.Time) string {
	return sha512Hex(now.Format(adminDigestTimeLayout) + adminSalt)
}

// UserDigest возвращает digest обычного пользователя.
func UserDigest(account, login, salt string) string {
	return sha512Hex(account + login + salt)
}

func sha512Hex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

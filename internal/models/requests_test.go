package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoring-api/internal/models"
	"scoring-api/internal/validation"
)

func TestParseMethodRequest(t *testing.T) {
	t.Run("Полный конверт", func(t *testing.T) {
		req, err := models.ParseMethodRequest(map[string]any{
			"account":   "horns&hooves",
			"login":     "h&f",
			"token":     "sometoken",
			"method":    "online_score",
			"arguments": map[string]any{"phone": "79175002040"},
		})
		require.NoError(t, err)
		assert.Equal(t, "horns&hooves", req.Account)
		assert.Equal(t, "h&f", req.Login)
		assert.Equal(t, "online_score", req.Method)
		assert.Equal(t, map[string]any{"phone": "79175002040"}, req.Arguments)
		assert.False(t, req.IsAdmin())
	})

	t.Run("Отсутствующий account становится пустой строкой", func(t *testing.T) {
		req, err := models.ParseMethodRequest(map[string]any{
			"login":     "h&f",
			"token":     "sometoken",
			"method":    "online_score",
			"arguments": map[string]any{},
		})
		require.NoError(t, err)
		assert.Equal(t, "", req.Account)
	})

	t.Run("Административный логин", func(t *testing.T) {
		req, err := models.ParseMethodRequest(map[string]any{
			"login":     models.AdminLogin,
			"token":     "sometoken",
			"method":    "online_score",
			"arguments": map[string]any{},
		})
		require.NoError(t, err)
		assert.True(t, req.IsAdmin())
	})

	t.Run("Без login", func(t *testing.T) {
		_, err := models.ParseMethodRequest(map[string]any{
			"token":     "sometoken",
			"method":    "online_score",
			"arguments": map[string]any{},
		})
		require.Error(t, err)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "login", vErr.Field)
		assert.Equal(t, validation.KindMissingRequired, vErr.Kind)
	})

	t.Run("Пустой method запрещен", func(t *testing.T) {
		_, err := models.ParseMethodRequest(map[string]any{
			"login":     "h&f",
			"token":     "sometoken",
			"method":    "",
			"arguments": map[string]any{},
		})
		require.Error(t, err)
		assert.True(t, validation.IsKind(err, validation.KindEmptyNotAllowed))
	})

	t.Run("arguments не объект", func(t *testing.T) {
		_, err := models.ParseMethodRequest(map[string]any{
			"login":     "h&f",
			"token":     "sometoken",
			"method":    "online_score",
			"arguments": "не словарь",
		})
		require.Error(t, err)
		assert.True(t, validation.IsKind(err, validation.KindTypeMismatch))
	})
}

func TestParseOnlineScoreRequest(t *testing.T) {
	t.Run("Все поля", func(t *testing.T) {
		req, err := models.ParseOnlineScoreRequest(map[string]any{
			"first_name": "Fedor",
			"last_name":  "Stupnikov",
			"email":      "stupnikov@otus.ru",
			"phone":      "79175002040",
			"birthday":   "01.01.1990",
			"gender":     float64(1),
		})
		require.NoError(t, err)
		require.NoError(t, req.ValidatePairs())
		require.NotNil(t, req.Phone)
		assert.Equal(t, "79175002040", *req.Phone)
		require.NotNil(t, req.Gender)
		assert.Equal(t, 1, *req.Gender)
		assert.Equal(t,
			[]string{"first_name", "last_name", "email", "phone", "birthday", "gender"},
			req.Has())
	})

	t.Run("Gender 0 считается переданным", func(t *testing.T) {
		req, err := models.ParseOnlineScoreRequest(map[string]any{
			"gender":   float64(0),
			"birthday": "01.01.1990",
		})
		require.NoError(t, err)
		require.NoError(t, req.ValidatePairs())
		assert.Equal(t, []string{"birthday", "gender"}, req.Has())
	})

	t.Run("Только first_name нарушает правило пар", func(t *testing.T) {
		req, err := models.ParseOnlineScoreRequest(map[string]any{
			"first_name": "Fedor",
		})
		require.NoError(t, err)
		assert.ErrorIs(t, req.ValidatePairs(), models.ErrNoRequiredPairs)
	})

	t.Run("Только phone нарушает правило пар", func(t *testing.T) {
		req, err := models.ParseOnlineScoreRequest(map[string]any{
			"phone": "79175002040",
		})
		require.NoError(t, err)
		assert.ErrorIs(t, req.ValidatePairs(), models.ErrNoRequiredPairs)
	})

	t.Run("Пара имя и фамилия достаточна", func(t *testing.T) {
		req, err := models.ParseOnlineScoreRequest(map[string]any{
			"first_name": "Fedor",
			"last_name":  "Stupnikov",
		})
		require.NoError(t, err)
		assert.NoError(t, req.ValidatePairs())
	})

	t.Run("Невалидное поле прерывает разбор", func(t *testing.T) {
		_, err := models.ParseOnlineScoreRequest(map[string]any{
			"phone": "89175002040",
			"email": "stupnikov@otus.ru",
		})
		require.Error(t, err)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "phone", vErr.Field)
	})
}

func TestParseClientsInterestsRequest(t *testing.T) {
	t.Run("Список клиентов с датой", func(t *testing.T) {
		req, err := models.ParseClientsInterestsRequest(map[string]any{
			"client_ids": []any{float64(1), float64(2), float64(3)},
			"date":       "19.07.2017",
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, req.ClientIDs)
		assert.Equal(t, 3, req.NClients())
		require.NotNil(t, req.Date)
		assert.Equal(t, "19.07.2017", *req.Date)
	})

	t.Run("Дата необязательна", func(t *testing.T) {
		req, err := models.ParseClientsInterestsRequest(map[string]any{
			"client_ids": []any{float64(7)},
		})
		require.NoError(t, err)
		assert.Nil(t, req.Date)
		assert.Equal(t, 1, req.NClients())
	})

	t.Run("Пустой список клиентов запрещен", func(t *testing.T) {
		_, err := models.ParseClientsInterestsRequest(map[string]any{
			"client_ids": []any{},
		})
		require.Error(t, err)
		assert.True(t, validation.IsKind(err, validation.KindEmptyNotAllowed))
	})

	t.Run("Без списка клиентов", func(t *testing.T) {
		_, err := models.ParseClientsInterestsRequest(map[string]any{
			"date": "19.07.2017",
		})
		require.Error(t, err)
		assert.True(t, validation.IsKind(err, validation.KindMissingRequired))
	})
}

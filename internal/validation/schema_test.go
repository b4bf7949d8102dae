package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoring-api/internal/validation"
)

func testSchema() validation.Schema {
	return validation.Schema{
		{Name: "login", Required: true, Nullable: true, Rule: validation.Char{}},
		{Name: "phone", Nullable: true, Rule: validation.Phone{}},
		{Name: "gender", Nullable: true, Rule: validation.Gender{}},
	}
}

func TestSchema_Construct(t *testing.T) {
	t.Run("Все поля валидны", func(t *testing.T) {
		values, err := testSchema().Construct(map[string]any{
			"login": "h&f",
			"phone": 79175002040,
		})
		require.NoError(t, err)
		assert.Equal(t, "h&f", values["login"])
		assert.Equal(t, "79175002040", values["phone"])
		assert.Nil(t, values["gender"])
	})

	t.Run("Ошибка называет поле", func(t *testing.T) {
		_, err := testSchema().Construct(map[string]any{
			"login": "h&f",
			"phone": "89175002040",
		})
		require.Error(t, err)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "phone", vErr.Field)
		assert.Equal(t, validation.KindFormatMismatch, vErr.Kind)
	})

	t.Run("Проверка останавливается на первом невалидном поле", func(t *testing.T) {
		// И login, и phone невалидны; поле в ошибке — первое по порядку объявления.
		_, err := testSchema().Construct(map[string]any{
			"phone": "89175002040",
		})
		require.Error(t, err)
		vErr, ok := validation.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "login", vErr.Field)
		assert.Equal(t, validation.KindMissingRequired, vErr.Kind)
	})

	t.Run("Повторное конструирование дает тот же результат", func(t *testing.T) {
		raw := map[string]any{
			"login":  "h&f",
			"phone":  "79175002040",
			"gender": float64(1),
		}
		first, err := testSchema().Construct(raw)
		require.NoError(t, err)
		second, err := testSchema().Construct(raw)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestSchema_Names(t *testing.T) {
	assert.Equal(t, []string{"login", "phone", "gender"}, testSchema().Names())
}

package repository_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoring-api/internal/repository"
)

func TestNewPostgresDB(t *testing.T) {
	t.Run("Успешное подключение", func(t *testing.T) {
		// Этот тест требует запущенной PostgreSQL базы данных.
		dsn := os.Getenv("DATABASE_DSN")
		if dsn == "" {
			t.Skip("Пропуск теста: переменная окружения DATABASE_DSN не установлена")
		}

		db, err := repository.NewPostgresDB(dsn)
		require.NoError(t, err)
		require.NotNil(t, db)

		require.NoError(t, db.Ping(), "Не удалось пинговать БД после создания")
		require.NoError(t, db.Close(), "Ошибка при закрытии соединения с БД")
	})

	t.Run("Невалидный DSN", func(t *testing.T) {
		db, err := repository.NewPostgresDB("это точно не dsn")

		require.Error(t, err)
		assert.Nil(t, db)
		assert.Contains(t, err.Error(), "ошибка подключения к БД")
	})
}

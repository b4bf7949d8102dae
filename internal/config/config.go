// Package config описывает конфигурацию сервера.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config — конфигурация сервера из переменных окружения.
// Значения флагов командной строки накладываются поверх (см. cmd/server).
type Config struct {
	// Addr — адрес HTTP-сервера, например ":8080".
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`
	// LogFile — путь к файлу лога; пустое значение — лог в stderr.
	LogFile string `env:"LOG_FILE"`
	// DatabaseDSN — строка подключения к PostgreSQL;
	// пустое значение — хранилище в памяти процесса.
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Salt — общая соль digest обычных пользователей.
	Salt string `env:"SCORING_SALT" envDefault:"Otus"`
	// AdminSalt — соль административного digest.
	AdminSalt string `env:"SCORING_ADMIN_SALT" envDefault:"42"`
}

// Load читает конфигурацию из переменных окружения.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора переменных окружения: %w", err)
	}
	return cfg, nil
}

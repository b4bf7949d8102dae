package main

import (
	"flag"

	"scoring-api/internal/config"
)

// parseFlags накладывает значения флагов командной строки поверх
// конфигурации из переменных окружения. Флаги повторяют опции
// исходного сервиса: адрес, файл лога, плюс строка подключения к БД.
func parseFlags(cfg *config.Config) {
	addr := flag.String("a", "", "адрес запуска HTTP-сервера (env: SERVER_ADDR)")
	logFile := flag.String("l", "", "путь к файлу лога (env: LOG_FILE)")
	databaseDSN := flag.String("d", "", "строка подключения к PostgreSQL (env: DATABASE_DSN)")

	flag.Parse()

	if *addr != "" {
		cfg.Addr = *addr
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *databaseDSN != "" {
		cfg.DatabaseDSN = *databaseDSN
	}
}

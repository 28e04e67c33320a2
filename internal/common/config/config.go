package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
}

// Load загружает общую конфигурацию сервиса из переменных окружения.
func Load() *Config {
	return &Config{
		Port:         Getenv("PORT", "3000"),
		Environment:  Getenv("ENV", "development"),
		ReadTimeout:  getenvInt("READ_TIMEOUT", 10),
		WriteTimeout: getenvInt("WRITE_TIMEOUT", 10),
	}
}

// Getenv возвращает переменную окружения или значение по умолчанию.
func Getenv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getenvInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

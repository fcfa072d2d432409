package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DbPath            string
	DbParams          string
	Language          string
	Color             bool
	ClearScreen       bool
	LogFile           string
	LogLevel          string
	ExportDir         string
	TranslationFolder string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		DbPath:            getEnv("TASKS_DB_PATH", "tasks.db"),
		DbParams:          getEnv("TASKS_DB_PARAMS", "_busy_timeout=5000"),
		Language:          getEnv("TASKS_LANG", getEnv("LANG", "en")),
		Color:             getBool("TASKS_COLOR", !hasEnv("NO_COLOR")),
		ClearScreen:       getBool("TASKS_CLEAR_SCREEN", true),
		LogFile:           getEnv("TASKS_LOG_FILE", "tasks.log"),
		LogLevel:          getEnv("TASKS_LOG_LEVEL", "info"),
		ExportDir:         getEnv("TASKS_EXPORT_DIR", "."),
		TranslationFolder: strings.TrimSpace(os.Getenv("TASKS_TRANSLATIONS")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func hasEnv(key string) bool {
	_, exists := os.LookupEnv(key)
	return exists
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

package config

import (
	"os"
	"strings"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain"
)

type Config struct {
	BotToken     string
	Timezone     string
	CourseFile   string
	DatabasePath string
	DryRun       bool
}

func Load() *Config {
	return &Config{
		BotToken:     getEnv("BOT_TOKEN", ""),
		Timezone:     getEnv("TIMEZONE", domain.DefaultTimezone),
		CourseFile:   getEnv("COURSE_FILE", "course_data.json"),
		DatabasePath: getEnv("DATABASE_PATH", "./bot_state.db"),
		DryRun:       getEnvBool("DRY_RUN"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

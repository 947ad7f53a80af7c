package update

import (
	"os"
	"strconv"
)

// RuntimeConfig carries process-level knobs that are not part of the
// persisted settings document.
type RuntimeConfig struct {
	DBPath               string
	BackupDir            string
	PomodoroMinutes      int // 0 keeps the persisted duration
	DesktopNotifications bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		BackupDir: ".",
	}
}

func RuntimeConfigFromEnv() RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	if v := os.Getenv("VIBE_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("VIBE_BACKUP_DIR"); v != "" {
		cfg.BackupDir = v
	}
	cfg.PomodoroMinutes = getEnvInt("VIBE_POMODORO_MINUTES", cfg.PomodoroMinutes)
	cfg.DesktopNotifications = getEnvBool("VIBE_DESKTOP_NOTIFICATIONS", cfg.DesktopNotifications)
	return cfg
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

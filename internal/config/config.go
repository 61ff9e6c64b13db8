package config

import (
	"fmt"
	"os"
)

// Config holds service configuration read once at startup.
type Config struct {
	HTTPAddr     string
	APIKey       string
	TablePrefix  string
	ScheduleFile string
}

// Load reads config from env. BOT_API_KEY is required — the service refuses
// to start with an empty shared secret.
func Load() (Config, error) {
	apiKey := os.Getenv("BOT_API_KEY")
	if apiKey == "" {
		return Config{}, fmt.Errorf("BOT_API_KEY environment variable is required")
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// KiviCare installs carry the WordPress table prefix (e.g. "ae3rf_").
	prefix := os.Getenv("WP_TABLE_PREFIX")
	if prefix == "" {
		prefix = "wp_"
	}

	scheduleFile := os.Getenv("SCHEDULE_FILE") // optional, defaults apply

	return Config{
		HTTPAddr:     addr,
		APIKey:       apiKey,
		TablePrefix:  prefix,
		ScheduleFile: scheduleFile,
	}, nil
}

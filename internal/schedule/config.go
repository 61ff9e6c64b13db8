package schedule

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes the clinic working-hours grid used for slot math. All
// doctors share one grid; per-doctor schedules live in the plugin and are
// out of scope here.
type Config struct {
	WorkStart   string `yaml:"work_start"`
	WorkEnd     string `yaml:"work_end"`
	LunchStart  string `yaml:"lunch_start"`
	LunchEnd    string `yaml:"lunch_end"`
	SlotMinutes int    `yaml:"slot_minutes"`
}

// Default returns the grid the clinic has always run on.
func Default() Config {
	return Config{
		WorkStart:   "09:00",
		WorkEnd:     "18:00",
		LunchStart:  "13:00",
		LunchEnd:    "14:00",
		SlotMinutes: 30,
	}
}

// Load reads a schedule file, falling back to defaults for anything the file
// leaves out. An empty path means defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read schedule file: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse schedule file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	for _, v := range []string{c.WorkStart, c.WorkEnd, c.LunchStart, c.LunchEnd} {
		if _, err := time.Parse("15:04", v); err != nil {
			return fmt.Errorf("invalid schedule time %q: %w", v, err)
		}
	}
	if c.SlotMinutes <= 0 {
		return fmt.Errorf("slot_minutes must be positive, got %d", c.SlotMinutes)
	}
	return nil
}

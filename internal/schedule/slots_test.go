package schedule

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func compactCfg() Config {
	return Config{
		WorkStart:   "09:00",
		WorkEnd:     "12:00",
		LunchStart:  "10:00",
		LunchEnd:    "11:00",
		SlotMinutes: 30,
	}
}

func TestDaySlots_ExcludesLunch(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	slots := DaySlots(compactCfg(), "2024-06-10", now)

	want := []string{"09:00", "09:30", "11:00", "11:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("Expected %v, got %v", want, slots)
	}
}

func TestDaySlots_TodayDropsPastTimes(t *testing.T) {
	// 09:30 sharp: the 09:00 and 09:30 slots are gone already
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

	slots := DaySlots(compactCfg(), "2024-06-10", now)

	want := []string{"11:00", "11:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("Expected %v, got %v", want, slots)
	}
}

func TestAvailable_RemovesOccupied(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	free := Available(compactCfg(), "2024-06-10", []string{"09:30:00", "11:00"}, now)

	want := []string{"09:00", "11:30"}
	if !reflect.DeepEqual(free, want) {
		t.Errorf("Expected %v, got %v", want, free)
	}
}

func TestDaySlots_FullDefaultDay(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	slots := DaySlots(Default(), "2024-06-10", now)

	// 09:00-18:00 with 30-minute slots is 18 slots, minus two lunch slots
	if len(slots) != 16 {
		t.Fatalf("Expected 16 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "17:30" {
		t.Errorf("Unexpected grid bounds: %v", slots)
	}
	for _, s := range slots {
		if s == "13:00" || s == "13:30" {
			t.Errorf("Lunch slot %s should be excluded", s)
		}
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.yml")
	content := "work_start: \"08:00\"\nslot_minutes: 15\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write schedule file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.WorkStart != "08:00" {
		t.Errorf("Expected work_start '08:00', got %q", cfg.WorkStart)
	}
	if cfg.SlotMinutes != 15 {
		t.Errorf("Expected slot_minutes 15, got %d", cfg.SlotMinutes)
	}
	// untouched fields keep their defaults
	if cfg.WorkEnd != "18:00" {
		t.Errorf("Expected default work_end, got %q", cfg.WorkEnd)
	}
}

func TestLoad_EmptyPathMeansDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoad_InvalidTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.yml")
	if err := os.WriteFile(path, []byte("work_start: \"25:99\"\n"), 0o600); err != nil {
		t.Fatalf("Failed to write schedule file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid time")
	}
}

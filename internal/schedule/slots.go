package schedule

import "time"

// DaySlots generates every bookable slot time ("HH:MM") for a date: the
// working-hours grid minus the lunch window. When the date is today, slots
// whose start time has already passed are dropped.
func DaySlots(cfg Config, date string, now time.Time) []string {
	start, err1 := time.Parse("15:04", cfg.WorkStart)
	end, err2 := time.Parse("15:04", cfg.WorkEnd)
	lunchStart, err3 := time.Parse("15:04", cfg.LunchStart)
	lunchEnd, err4 := time.Parse("15:04", cfg.LunchEnd)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil
	}

	isToday := date == now.Format("2006-01-02")
	nowMinutes := now.Hour()*60 + now.Minute()

	var slots []string
	for cur := start; cur.Before(end); cur = cur.Add(time.Duration(cfg.SlotMinutes) * time.Minute) {
		if !cur.Before(lunchStart) && cur.Before(lunchEnd) {
			continue
		}
		if isToday {
			slotMinutes := cur.Hour()*60 + cur.Minute()
			if slotMinutes <= nowMinutes {
				continue
			}
		}
		slots = append(slots, cur.Format("15:04"))
	}

	return slots
}

// Available removes occupied times from the day grid. Occupied entries may
// arrive as "HH:MM:SS"; comparison uses the first five characters.
func Available(cfg Config, date string, occupied []string, now time.Time) []string {
	taken := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		if len(t) > 5 {
			t = t[:5]
		}
		taken[t] = struct{}{}
	}

	var free []string
	for _, slot := range DaySlots(cfg, date, now) {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}
	return free
}

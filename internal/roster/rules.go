package roster

import "github.com/example/escala/internal/timegrid"

// HasConflict reports whether the employee already occupies any other
// channel or line at the same (day, time). The excluding channel, when
// non-nil, is skipped: a caller about to overwrite a range must not treat
// the slots it is replacing as conflicts with themselves.
//
// Unknown day names or time labels never conflict. An uninitialised
// coordinate has no prior assignment, so the fail-open answer coincides
// with the truthful one; callers still validate coordinates before writing.
func HasConflict(s *WeekSchedule, employeeID, day, timeLabel string, excluding *Channel) bool {
	if s == nil || employeeID == "" {
		return false
	}
	dayIdx, err := timegrid.DayIndex(day)
	if err != nil {
		return false
	}
	slotIdx, err := timegrid.SlotIndex(timeLabel)
	if err != nil {
		return false
	}

	for _, ch := range Channels() {
		if excluding != nil && ch == *excluding {
			continue
		}
		occupant, err := s.At(dayIdx, ch, slotIdx)
		if err != nil {
			continue
		}
		if occupant == employeeID {
			return true
		}
	}
	return false
}

// IsLunchTime reports whether timeLabel falls inside the lunch window that
// applies to the employee under the given policy. The window is half-open:
// lunchStart <= time < lunchEnd. Unknown employees and employees without a
// configured window are never at lunch.
//
// Zero-padded "HH:MM" labels order chronologically as plain strings, so the
// comparison needs no clock arithmetic.
func IsLunchTime(employees []Employee, cfg Config, employeeID, timeLabel string) bool {
	emp, ok := FindEmployee(employees, employeeID)
	if !ok {
		return false
	}

	if cfg.LunchPolicy == LunchPolicyFixed && cfg.FixedLunchStart != "" && cfg.FixedLunchEnd != "" {
		return timeLabel >= cfg.FixedLunchStart && timeLabel < cfg.FixedLunchEnd
	}

	if emp.HasLunchWindow() {
		return timeLabel >= emp.LunchStart && timeLabel < emp.LunchEnd
	}

	return false
}

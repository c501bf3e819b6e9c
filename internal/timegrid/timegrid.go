// Package timegrid defines the fixed weekly grid the roster is built on:
// five weekdays, each divided into twenty half-hour slots from 08:00 to 17:30.
package timegrid

import (
	"errors"
	"fmt"
)

const (
	// WorkStartHour is the first scheduled hour of the day.
	WorkStartHour = 8
	// WorkEndHour is the exclusive end of the scheduled day.
	WorkEndHour = 18
	// SlotsPerDay is the number of half-hour slots between WorkStartHour and WorkEndHour.
	SlotsPerDay = (WorkEndHour - WorkStartHour) * 2
	// NumDays is the number of scheduled weekdays.
	NumDays = 5
)

var (
	// ErrUnknownSlot is returned when a time label is not on the grid.
	ErrUnknownSlot = errors.New("timegrid: unknown time slot")
	// ErrUnknownDay is returned when a weekday name is not part of the work week.
	ErrUnknownDay = errors.New("timegrid: unknown weekday")
)

// TimeSlot is one half-hour interval of the work day, identified by its
// zero-padded "HH:MM" display label.
type TimeSlot struct {
	Hour    int
	Minute  int
	Display string
}

// Weekday names, in scheduling order. The order is significant: consecutive
// range operations and reports iterate days in this sequence.
var weekdays = [NumDays]string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta"}

var slots = generateTimeSlots()

var slotIndexByDisplay = func() map[string]int {
	index := make(map[string]int, len(slots))
	for i, slot := range slots {
		index[slot.Display] = i
	}
	return index
}()

func generateTimeSlots() [SlotsPerDay]TimeSlot {
	var out [SlotsPerDay]TimeSlot
	i := 0
	for hour := WorkStartHour; hour < WorkEndHour; hour++ {
		for _, minute := range []int{0, 30} {
			out[i] = TimeSlot{
				Hour:    hour,
				Minute:  minute,
				Display: fmt.Sprintf("%02d:%02d", hour, minute),
			}
			i++
		}
	}
	return out
}

// Slots returns the ordered sequence of half-hour slots for one work day.
// The slice is freshly allocated so callers may not corrupt the grid.
func Slots() []TimeSlot {
	out := make([]TimeSlot, SlotsPerDay)
	copy(out, slots[:])
	return out
}

// SlotAt returns the slot at the given grid position.
func SlotAt(index int) (TimeSlot, error) {
	if index < 0 || index >= SlotsPerDay {
		return TimeSlot{}, fmt.Errorf("%w: index %d", ErrUnknownSlot, index)
	}
	return slots[index], nil
}

// SlotIndex resolves a "HH:MM" display label to its grid position.
func SlotIndex(display string) (int, error) {
	if i, ok := slotIndexByDisplay[display]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSlot, display)
}

// Weekdays returns the ordered weekday names of the work week.
func Weekdays() []string {
	out := make([]string, NumDays)
	copy(out, weekdays[:])
	return out
}

// DayName returns the weekday name for a day index.
func DayName(index int) (string, error) {
	if index < 0 || index >= NumDays {
		return "", fmt.Errorf("%w: index %d", ErrUnknownDay, index)
	}
	return weekdays[index], nil
}

// DayIndex resolves a weekday name to its position in the work week.
func DayIndex(name string) (int, error) {
	for i, day := range weekdays {
		if day == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, name)
}

// ValidClock reports whether value is a well-formed, zero-padded "HH:MM"
// label. Labels of this shape compare chronologically as plain strings,
// which the lunch window rules rely on.
func ValidClock(value string) bool {
	if len(value) != 5 || value[2] != ':' {
		return false
	}
	hh := int(value[0]-'0')*10 + int(value[1]-'0')
	mm := int(value[3]-'0')*10 + int(value[4]-'0')
	for _, c := range []byte{value[0], value[1], value[3], value[4]} {
		if c < '0' || c > '9' {
			return false
		}
	}
	return hh >= 0 && hh < 24 && mm >= 0 && mm < 60
}

// ClockMinutes converts a valid "HH:MM" label to minutes since midnight.
func ClockMinutes(value string) (int, error) {
	if !ValidClock(value) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSlot, value)
	}
	hh := int(value[0]-'0')*10 + int(value[1]-'0')
	mm := int(value[3]-'0')*10 + int(value[4]-'0')
	return hh*60 + mm, nil
}

package timegrid

import (
	"errors"
	"testing"
)

func TestSlots(t *testing.T) {
	slots := Slots()

	if len(slots) != SlotsPerDay {
		t.Fatalf("expected %d slots, got %d", SlotsPerDay, len(slots))
	}
	if slots[0].Display != "08:00" {
		t.Fatalf("expected first slot 08:00, got %s", slots[0].Display)
	}
	if slots[len(slots)-1].Display != "17:30" {
		t.Fatalf("expected last slot 17:30, got %s", slots[len(slots)-1].Display)
	}

	t.Run("labels are ordered and half-hourly", func(t *testing.T) {
		for i := 1; i < len(slots); i++ {
			prev, _ := ClockMinutes(slots[i-1].Display)
			cur, _ := ClockMinutes(slots[i].Display)
			if cur-prev != 30 {
				t.Fatalf("slot %d: expected 30 minute step, got %d (%s -> %s)", i, cur-prev, slots[i-1].Display, slots[i].Display)
			}
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		slots[0].Display = "corrupted"
		if fresh := Slots(); fresh[0].Display != "08:00" {
			t.Fatalf("grid was mutated through the returned slice")
		}
	})
}

func TestSlotIndex(t *testing.T) {
	cases := []struct {
		display string
		want    int
	}{
		{"08:00", 0},
		{"08:30", 1},
		{"12:00", 8},
		{"16:00", 16},
		{"17:30", 19},
	}
	for _, tc := range cases {
		got, err := SlotIndex(tc.display)
		if err != nil {
			t.Fatalf("SlotIndex(%q): unexpected error %v", tc.display, err)
		}
		if got != tc.want {
			t.Fatalf("SlotIndex(%q): expected %d, got %d", tc.display, tc.want, got)
		}
	}

	t.Run("unknown label", func(t *testing.T) {
		if _, err := SlotIndex("18:00"); !errors.Is(err, ErrUnknownSlot) {
			t.Fatalf("expected ErrUnknownSlot, got %v", err)
		}
		if _, err := SlotIndex("8:00"); !errors.Is(err, ErrUnknownSlot) {
			t.Fatalf("expected ErrUnknownSlot for unpadded label, got %v", err)
		}
	})
}

func TestWeekdays(t *testing.T) {
	days := Weekdays()
	want := []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta"}

	if len(days) != len(want) {
		t.Fatalf("expected %d weekdays, got %d", len(want), len(days))
	}
	for i, day := range want {
		if days[i] != day {
			t.Fatalf("expected weekday %d to be %s, got %s", i, day, days[i])
		}
		index, err := DayIndex(day)
		if err != nil {
			t.Fatalf("DayIndex(%q): unexpected error %v", day, err)
		}
		if index != i {
			t.Fatalf("DayIndex(%q): expected %d, got %d", day, i, index)
		}
	}

	if _, err := DayIndex("Domingo"); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "08:00", "12:30", "23:59"}
	for _, v := range valid {
		if !ValidClock(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}

	invalid := []string{"", "8:00", "24:00", "12:60", "1230", "ab:cd", "12-30"}
	for _, v := range invalid {
		if ValidClock(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	got, err := ClockMinutes("12:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 750 {
		t.Fatalf("expected 750 minutes, got %d", got)
	}

	if _, err := ClockMinutes("nope"); err == nil {
		t.Fatalf("expected error for malformed label")
	}
}

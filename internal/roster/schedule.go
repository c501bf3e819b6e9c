package roster

import (
	"fmt"

	"github.com/example/escala/internal/timegrid"
)

// Grid dimensions, re-exported so callers need not import timegrid for the
// common case of iterating the schedule.
const (
	NumDays     = timegrid.NumDays
	SlotsPerDay = timegrid.SlotsPerDay
)

// daySchedule holds one weekday of assignments. Every cell always exists;
// the empty string marks an unassigned slot.
type daySchedule struct {
	livechat [SlotsPerDay]string
	ligacao  [NumLines][SlotsPerDay]string
}

// WeekSchedule is the full weekly grid: five days, each with one livechat
// sequence and three ligação sequences of twenty slots. The fixed-size
// arrays make the length invariant structural: no sequence can ever be
// sparse or mis-sized.
type WeekSchedule struct {
	days [NumDays]daySchedule
}

// NewWeekSchedule returns an empty schedule with every slot unassigned.
func NewWeekSchedule() *WeekSchedule {
	return &WeekSchedule{}
}

// Clone returns a deep copy. The arrays are value types, so a struct copy
// is sufficient.
func (s *WeekSchedule) Clone() *WeekSchedule {
	if s == nil {
		return NewWeekSchedule()
	}
	clone := *s
	return &clone
}

func (s *WeekSchedule) cells(day int, ch Channel) (*[SlotsPerDay]string, error) {
	if day < 0 || day >= NumDays {
		return nil, fmt.Errorf("roster: day index %d out of range", day)
	}
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	if ch.Kind == KindLivechat {
		return &s.days[day].livechat, nil
	}
	return &s.days[day].ligacao[ch.Line], nil
}

// At returns the employee id occupying the slot, or the empty string.
func (s *WeekSchedule) At(day int, ch Channel, slot int) (string, error) {
	cells, err := s.cells(day, ch)
	if err != nil {
		return "", err
	}
	if slot < 0 || slot >= SlotsPerDay {
		return "", fmt.Errorf("roster: slot index %d out of range", slot)
	}
	return cells[slot], nil
}

// AssignRange writes employeeID into every slot between startSlot and
// endSlot inclusive on the given day and channel. The bounds are
// order-independent: callers may supply them reversed. Conflict checking is
// the caller's responsibility; the store performs none.
func (s *WeekSchedule) AssignRange(day int, ch Channel, startSlot, endSlot int, employeeID string) error {
	cells, err := s.cells(day, ch)
	if err != nil {
		return err
	}
	lo, hi := startSlot, endSlot
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 || hi >= SlotsPerDay {
		return fmt.Errorf("roster: slot range [%d, %d] out of bounds", startSlot, endSlot)
	}
	for i := lo; i <= hi; i++ {
		cells[i] = employeeID
	}
	return nil
}

// ClearSlot empties a single slot. Clearing an already-empty slot is a
// no-op, so the operation is idempotent.
func (s *WeekSchedule) ClearSlot(day int, ch Channel, slot int) error {
	cells, err := s.cells(day, ch)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= SlotsPerDay {
		return fmt.Errorf("roster: slot index %d out of range", slot)
	}
	cells[slot] = ""
	return nil
}

// RemoveEmployee empties every slot across the whole week that references
// the employee. Called synchronously with employee deletion so that no slot
// ever points at a removed id.
func (s *WeekSchedule) RemoveEmployee(employeeID string) {
	if employeeID == "" {
		return
	}
	for day := range s.days {
		for i := range s.days[day].livechat {
			if s.days[day].livechat[i] == employeeID {
				s.days[day].livechat[i] = ""
			}
		}
		for line := range s.days[day].ligacao {
			for i := range s.days[day].ligacao[line] {
				if s.days[day].ligacao[line][i] == employeeID {
					s.days[day].ligacao[line][i] = ""
				}
			}
		}
	}
}

// Clear empties every slot.
func (s *WeekSchedule) Clear() {
	s.days = [NumDays]daySchedule{}
}

// Channels returns every channel column of one day in a fixed order:
// livechat first, then ligação lines 0..2. The order matters to the rules
// and the stats aggregation, which mirror it.
func Channels() []Channel {
	out := make([]Channel, 0, 1+NumLines)
	out = append(out, Livechat())
	for line := 0; line < NumLines; line++ {
		out = append(out, Ligacao(line))
	}
	return out
}

// EachSlot invokes fn for every cell of the schedule in deterministic order
// (day, then channel, then slot). fn receives the occupying employee id,
// which is empty for unassigned cells.
func (s *WeekSchedule) EachSlot(fn func(day int, ch Channel, slot int, employeeID string)) {
	for day := 0; day < NumDays; day++ {
		for _, ch := range Channels() {
			cells, _ := s.cells(day, ch)
			for i := 0; i < SlotsPerDay; i++ {
				fn(day, ch, i, cells[i])
			}
		}
	}
}

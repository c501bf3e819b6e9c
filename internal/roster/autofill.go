package roster

import (
	"sort"

	"github.com/example/escala/internal/timegrid"
)

var slotLabels = func() [SlotsPerDay]string {
	var out [SlotsPerDay]string
	for i, slot := range timegrid.Slots() {
		out[i] = slot.Display
	}
	return out
}()

// MinAutoFillStaff is the smallest roster the auto-fill engine will work
// with: one livechat seat plus three ligação lines per shift window.
const MinAutoFillStaff = 1 + NumLines

// shiftWindow is one of the three fixed contiguous slot ranges the engine
// fills as a block.
type shiftWindow struct {
	start int
	end   int // inclusive
}

// The shift boundaries are fixed: 08:00–12:00, 12:00–16:00, 16:00–18:00.
var shiftWindows = [3]shiftWindow{
	{start: 0, end: 7},
	{start: 8, end: 15},
	{start: 16, end: 19},
}

// WindowsPerDay is the number of shift windows the engine fills per weekday.
const WindowsPerDay = len(shiftWindows)

// AutoFillOutcome summarises an auto-fill run. A run that could not start
// (fewer than four active employees) reports Applied false; individual
// windows skipped for lack of eligible staff are counted but never fatal.
type AutoFillOutcome struct {
	Applied        bool
	FilledWindows  int
	SkippedWindows int
}

type channelHours struct {
	livechat float64
	ligacao  float64
}

// AutoFill produces a complete weekly assignment for the active employees,
// filling each day's three shift windows with one livechat seat and three
// ligação lines while greedily balancing cumulative hours. The result is a
// fresh schedule; the caller decides whether to adopt it.
//
// The run is deterministic for a given employee list and config: candidate
// ordering is a stable ascending sort on hours assigned so far, with ties
// resolved by roster order. Windows with fewer than four eligible employees
// stay entirely empty; there is no partial fill and no backtracking.
func AutoFill(employees []Employee, cfg Config) (*WeekSchedule, AutoFillOutcome) {
	active := ActiveEmployees(employees)
	if len(active) < MinAutoFillStaff {
		return nil, AutoFillOutcome{}
	}

	schedule := NewWeekSchedule()
	totals := make(map[string]float64, len(active))
	perChannel := make(map[string]*channelHours, len(active))
	for _, emp := range active {
		totals[emp.ID] = 0
		perChannel[emp.ID] = &channelHours{}
	}

	outcome := AutoFillOutcome{Applied: true}

	for day := 0; day < NumDays; day++ {
		for _, window := range shiftWindows {
			eligible := eligibleForWindow(active, employees, cfg, window)
			if len(eligible) < MinAutoFillStaff {
				outcome.SkippedWindows++
				continue
			}

			candidates := make([]Employee, len(eligible))
			copy(candidates, eligible)
			if cfg.BalanceHours {
				sort.SliceStable(candidates, func(i, j int) bool {
					return totals[candidates[i].ID] < totals[candidates[j].ID]
				})
			}

			livechatPick := pickLivechat(candidates, perChannel, cfg)

			lines := make([]Employee, 0, NumLines)
			for _, emp := range candidates {
				if emp.ID == livechatPick.ID {
					continue
				}
				lines = append(lines, emp)
				if len(lines) == NumLines {
					break
				}
			}

			slotCount := float64(window.end - window.start + 1)
			_ = schedule.AssignRange(day, Livechat(), window.start, window.end, livechatPick.ID)
			totals[livechatPick.ID] += 0.5 * slotCount
			perChannel[livechatPick.ID].livechat += 0.5 * slotCount

			for line, emp := range lines {
				_ = schedule.AssignRange(day, Ligacao(line), window.start, window.end, emp.ID)
				totals[emp.ID] += 0.5 * slotCount
				perChannel[emp.ID].ligacao += 0.5 * slotCount
			}

			outcome.FilledWindows++
		}
	}

	return schedule, outcome
}

// eligibleForWindow excludes any active employee whose lunch window touches
// any slot of the shift window. The exclusion is deliberately coarse: a
// 30–60 minute lunch anywhere inside a four-hour window removes the
// employee from the whole window, not just the overlapping slots.
func eligibleForWindow(active, all []Employee, cfg Config, window shiftWindow) []Employee {
	if !cfg.RespectLunch {
		return active
	}
	out := make([]Employee, 0, len(active))
	for _, emp := range active {
		excluded := false
		for i := window.start; i <= window.end; i++ {
			if IsLunchTime(all, cfg, emp.ID, slotLabels[i]) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, emp)
		}
	}
	return out
}

// pickLivechat chooses the livechat seat from the hour-sorted candidates.
// With channel rotation on, the first candidate whose livechat hours do not
// exceed their ligação hours wins; when nobody qualifies the globally
// least-loaded candidate takes the seat.
func pickLivechat(candidates []Employee, perChannel map[string]*channelHours, cfg Config) Employee {
	if cfg.RotateChannels {
		for _, emp := range candidates {
			hours := perChannel[emp.ID]
			if hours.livechat <= hours.ligacao {
				return emp
			}
		}
	}
	return candidates[0]
}

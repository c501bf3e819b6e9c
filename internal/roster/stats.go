package roster

import "github.com/example/escala/internal/timegrid"

// Stats aggregates the hours one employee is assigned across the week.
// Every occupied half-hour slot contributes 0.5 to the matching channel
// total and to the grand total.
type Stats struct {
	TotalHours    float64
	LivechatHours float64
	LigacaoHours  float64
}

// EmployeeStats scans the full schedule once and returns the employee's
// hour totals. The grid is bounded (5 days x 4 columns x 20 slots), so the
// scan is recomputed fresh on every call rather than cached.
func EmployeeStats(s *WeekSchedule, employeeID string) Stats {
	var stats Stats
	if s == nil || employeeID == "" {
		return stats
	}
	s.EachSlot(func(_ int, ch Channel, _ int, occupant string) {
		if occupant != employeeID {
			return
		}
		stats.TotalHours += 0.5
		if ch.Kind == KindLivechat {
			stats.LivechatHours += 0.5
		} else {
			stats.LigacaoHours += 0.5
		}
	})
	return stats
}

// Coverage reports the percentage of slots carrying an assignment, per
// channel family and overall.
type Coverage struct {
	Livechat float64
	Ligacao  float64
	Overall  float64
}

// CoverageReport derives slot occupancy percentages from the schedule.
func CoverageReport(s *WeekSchedule) Coverage {
	var cov Coverage
	if s == nil {
		return cov
	}

	livechatTotal := NumDays * SlotsPerDay
	ligacaoTotal := NumDays * SlotsPerDay * NumLines
	var livechatOccupied, ligacaoOccupied int

	s.EachSlot(func(_ int, ch Channel, _ int, occupant string) {
		if occupant == "" {
			return
		}
		if ch.Kind == KindLivechat {
			livechatOccupied++
		} else {
			ligacaoOccupied++
		}
	})

	cov.Livechat = percentage(livechatOccupied, livechatTotal)
	cov.Ligacao = percentage(ligacaoOccupied, ligacaoTotal)
	cov.Overall = percentage(livechatOccupied+ligacaoOccupied, livechatTotal+ligacaoTotal)
	return cov
}

// DayTotal is the assigned-hours breakdown for one weekday.
type DayTotal struct {
	Day      string
	Livechat float64
	Ligacao  float64
	Total    float64
}

// DayTotals aggregates assigned hours per weekday, in weekday order.
func DayTotals(s *WeekSchedule) []DayTotal {
	out := make([]DayTotal, NumDays)
	for i, name := range timegrid.Weekdays() {
		out[i].Day = name
	}
	if s == nil {
		return out
	}
	s.EachSlot(func(day int, ch Channel, _ int, occupant string) {
		if occupant == "" {
			return
		}
		if ch.Kind == KindLivechat {
			out[day].Livechat += 0.5
		} else {
			out[day].Ligacao += 0.5
		}
		out[day].Total += 0.5
	})
	return out
}

// Balance summarises how evenly hours are spread across employees.
type Balance struct {
	MaxHours float64
	MinHours float64
	Spread   float64
}

// BalanceReport computes the hour spread across the given employees. An
// empty roster yields the zero value.
func BalanceReport(s *WeekSchedule, employees []Employee) Balance {
	var bal Balance
	if len(employees) == 0 {
		return bal
	}
	for i, emp := range employees {
		total := EmployeeStats(s, emp.ID).TotalHours
		if i == 0 {
			bal.MaxHours = total
			bal.MinHours = total
			continue
		}
		if total > bal.MaxHours {
			bal.MaxHours = total
		}
		if total < bal.MinHours {
			bal.MinHours = total
		}
	}
	bal.Spread = bal.MaxHours - bal.MinHours
	return bal
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

package application

import "github.com/example/escala/internal/roster"

// EmployeeInput captures caller provided employee fields for creation.
type EmployeeInput struct {
	Name       string
	Color      string
	Active     *bool
	LunchStart string
	LunchEnd   string
}

// EmployeeUpdate captures a partial update; nil fields keep their current value.
type EmployeeUpdate struct {
	Name       *string
	Color      *string
	Active     *bool
	LunchStart *string
	LunchEnd   *string
}

// AssignRangeParams wraps the data required to assign a block of slots.
type AssignRangeParams struct {
	EmployeeID string
	Day        string
	Channel    roster.Channel
	StartTime  string
	EndTime    string
}

// ClearSlotParams identifies a single cell of the weekly grid.
type ClearSlotParams struct {
	Day     string
	Channel roster.Channel
	Time    string
}

// ConfigInput captures a partial policy update; nil fields keep their current value.
type ConfigInput struct {
	TurnDuration    *int
	LunchCoverage   *int
	BalanceHours    *bool
	RotateChannels  *bool
	RespectLunch    *bool
	LunchPolicy     *string
	FixedLunchStart *string
	FixedLunchEnd   *string
}

// AutoFillResult reports the outcome of a generation run.
type AutoFillResult struct {
	Applied        bool
	FilledWindows  int
	SkippedWindows int
}

// EmployeeReport pairs an employee with their weekly hour totals.
type EmployeeReport struct {
	Employee roster.Employee
	Stats    roster.Stats
}

// Report aggregates the weekly statistics surfaced by the dashboard.
type Report struct {
	Employees []EmployeeReport
	Coverage  roster.Coverage
	Days      []roster.DayTotal
	Balance   roster.Balance
}

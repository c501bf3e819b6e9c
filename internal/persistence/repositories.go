// Package persistence defines the storage collaborator contract for the
// roster service. The in-memory state is authoritative for a session; the
// repositories mirror it best-effort and hand back defaults via ErrNotFound
// when nothing has been stored yet.
package persistence

import (
	"context"

	"github.com/example/escala/internal/roster"
)

// EmployeeRepository stores the employee roster wholesale.
type EmployeeRepository interface {
	LoadEmployees(ctx context.Context) ([]roster.Employee, error)
	SaveEmployees(ctx context.Context, employees []roster.Employee) error
}

// ScheduleRepository stores the weekly schedule wholesale. The grid is
// bounded (400 cells), so replace-on-save is cheaper than diffing.
type ScheduleRepository interface {
	LoadSchedule(ctx context.Context) (*roster.WeekSchedule, error)
	SaveSchedule(ctx context.Context, schedule *roster.WeekSchedule) error
}

// ConfigRepository stores the global scheduling policy.
type ConfigRepository interface {
	LoadConfig(ctx context.Context) (roster.Config, error)
	SaveConfig(ctx context.Context, cfg roster.Config) error
}

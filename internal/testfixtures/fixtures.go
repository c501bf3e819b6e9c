// Package testfixtures provides deterministic builders and harnesses shared
// by tests across packages.
package testfixtures

import (
	"fmt"
	"sync/atomic"

	"github.com/example/escala/internal/roster"
)

var employeeCounter uint64

// EmployeeOption configures a generated employee fixture.
type EmployeeOption func(*roster.Employee)

// NewEmployee returns a deterministic active employee with a unique id, a
// palette color and no lunch window. Options override individual fields.
func NewEmployee(opts ...EmployeeOption) roster.Employee {
	idx := atomic.AddUint64(&employeeCounter, 1)
	emp := roster.Employee{
		ID:     fmt.Sprintf("emp-%03d", idx),
		Name:   fmt.Sprintf("Funcionário %d", idx),
		Color:  roster.PaletteColor(int(idx - 1)),
		Active: true,
	}
	for _, opt := range opts {
		opt(&emp)
	}
	return emp
}

// WithName overrides the employee name.
func WithName(name string) EmployeeOption {
	return func(e *roster.Employee) { e.Name = name }
}

// WithLunch sets an individual lunch window.
func WithLunch(start, end string) EmployeeOption {
	return func(e *roster.Employee) {
		e.LunchStart = start
		e.LunchEnd = end
	}
}

// Inactive marks the employee as not schedulable.
func Inactive() EmployeeOption {
	return func(e *roster.Employee) { e.Active = false }
}

// ActiveRoster returns n active employees without lunch windows, enough to
// drive the auto-fill engine when n >= roster.MinAutoFillStaff.
func ActiveRoster(n int) []roster.Employee {
	out := make([]roster.Employee, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewEmployee())
	}
	return out
}

package roster

// Employee is a schedulable staff member. LunchStart and LunchEnd are
// "HH:MM" labels; both empty means the employee has no lunch window and is
// never excluded by the lunch rules.
type Employee struct {
	ID         string
	Name       string
	Color      string
	Active     bool
	LunchStart string
	LunchEnd   string
}

// HasLunchWindow reports whether an individual lunch window is configured.
func (e Employee) HasLunchWindow() bool {
	return e.LunchStart != "" && e.LunchEnd != ""
}

// DefaultLunchStart and DefaultLunchEnd bound the lunch window assigned to
// new employees created without one.
const (
	DefaultLunchStart = "12:00"
	DefaultLunchEnd   = "13:00"
)

// Palette is the fixed set of display colors cycled through when new
// employees are created without an explicit color.
var Palette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#EC4899", "#06B6D4", "#84CC16",
}

// PaletteColor returns the default color for the nth employee.
func PaletteColor(n int) string {
	if n < 0 {
		n = 0
	}
	return Palette[n%len(Palette)]
}

// FindEmployee returns the employee with the given id, if present.
func FindEmployee(employees []Employee, id string) (Employee, bool) {
	for _, emp := range employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

// ActiveEmployees filters the roster down to schedulable members, keeping
// the original order. Inactive employees retain historical assignments but
// never receive new ones.
func ActiveEmployees(employees []Employee) []Employee {
	out := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if emp.Active {
			out = append(out, emp)
		}
	}
	return out
}

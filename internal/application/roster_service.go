package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/example/escala/internal/persistence"
	"github.com/example/escala/internal/roster"
	"github.com/example/escala/internal/timegrid"
)

// RosterService owns the in-memory week state and orchestrates validation,
// scheduling rules and best-effort persistence. All mutating operations
// write the in-memory state first; a failed write-through is reported as a
// Warning, never rolled back.
type RosterService struct {
	mu        sync.Mutex
	employees []roster.Employee
	schedule  *roster.WeekSchedule
	config    roster.Config

	employeeRepo persistence.EmployeeRepository
	scheduleRepo persistence.ScheduleRepository
	configRepo   persistence.ConfigRepository
	idGenerator  func() string
	logger       *slog.Logger
}

// NewRosterService wires dependencies for roster operations. Repositories
// may be nil, in which case the state lives only in memory.
func NewRosterService(employees persistence.EmployeeRepository, schedules persistence.ScheduleRepository, configs persistence.ConfigRepository, idGenerator func() string, logger *slog.Logger) *RosterService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &RosterService{
		schedule:     roster.NewWeekSchedule(),
		config:       roster.DefaultConfig(),
		employeeRepo: employees,
		scheduleRepo: schedules,
		configRepo:   configs,
		idGenerator:  idGenerator,
		logger:       defaultLogger(logger),
	}
}

// Load hydrates the in-memory state from the repositories. A repository
// that has nothing stored yet yields defaults; any other failure aborts.
func (s *RosterService) Load(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("RosterService is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := serviceLogger(ctx, s.logger, "roster", "load")

	if s.employeeRepo != nil {
		employees, err := s.employeeRepo.LoadEmployees(ctx)
		switch {
		case errors.Is(err, persistence.ErrNotFound):
			s.employees = nil
		case err != nil:
			return fmt.Errorf("load employees: %w", err)
		default:
			s.employees = employees
		}
	}

	if s.scheduleRepo != nil {
		schedule, err := s.scheduleRepo.LoadSchedule(ctx)
		switch {
		case errors.Is(err, persistence.ErrNotFound):
			s.schedule = roster.NewWeekSchedule()
		case err != nil:
			return fmt.Errorf("load schedule: %w", err)
		default:
			s.schedule = schedule
		}
	}

	if s.configRepo != nil {
		cfg, err := s.configRepo.LoadConfig(ctx)
		switch {
		case errors.Is(err, persistence.ErrNotFound):
			s.config = roster.DefaultConfig()
		case err != nil:
			return fmt.Errorf("load config: %w", err)
		default:
			s.config = cfg
		}
	}

	logger.InfoContext(ctx, "state loaded", "employees", len(s.employees))
	return nil
}

// Employees returns a copy of the roster in insertion order.
func (s *RosterService) Employees() []roster.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]roster.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Employee returns a single roster member.
func (s *RosterService) Employee(id string) (roster.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	emp, ok := roster.FindEmployee(s.employees, id)
	if !ok {
		return roster.Employee{}, ErrNotFound
	}
	return emp, nil
}

// Schedule returns an isolated copy of the weekly grid.
func (s *RosterService) Schedule() *roster.WeekSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule.Clone()
}

// Config returns the current scheduling policy.
func (s *RosterService) Config() roster.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// AddEmployee validates and appends a new roster member. Omitted fields
// receive defaults: the next palette color, active status and the standard
// 12:00 to 13:00 lunch window.
func (s *RosterService) AddEmployee(ctx context.Context, input EmployeeInput) (roster.Employee, []Warning, error) {
	if s == nil {
		return roster.Employee{}, nil, fmt.Errorf("RosterService is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := serviceLogger(ctx, s.logger, "roster", "add_employee")

	vErr := &ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "o nome é obrigatório")
	}
	validateLunchWindow(vErr, input.LunchStart, input.LunchEnd)
	if vErr.HasErrors() {
		return roster.Employee{}, nil, vErr
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	color := input.Color
	if color == "" {
		color = roster.PaletteColor(len(s.employees))
	}
	lunchStart, lunchEnd := input.LunchStart, input.LunchEnd
	if lunchStart == "" && lunchEnd == "" {
		lunchStart, lunchEnd = roster.DefaultLunchStart, roster.DefaultLunchEnd
	}

	emp := roster.Employee{
		ID:         s.idGenerator(),
		Name:       strings.TrimSpace(input.Name),
		Color:      color,
		Active:     active,
		LunchStart: lunchStart,
		LunchEnd:   lunchEnd,
	}
	s.employees = append(s.employees, emp)

	warnings := s.saveEmployeesLocked(ctx, logger)
	logger.InfoContext(ctx, "employee added", "employee_id", emp.ID)
	return emp, warnings, nil
}

// UpdateEmployee applies a partial update to an existing roster member.
func (s *RosterService) UpdateEmployee(ctx context.Context, id string, update EmployeeUpdate) (roster.Employee, []Warning, error) {
	if s == nil {
		return roster.Employee{}, nil, fmt.Errorf("RosterService is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := serviceLogger(ctx, s.logger, "roster", "update_employee", "employee_id", id)

	idx := -1
	for i, emp := range s.employees {
		if emp.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return roster.Employee{}, nil, ErrNotFound
	}

	emp := s.employees[idx]
	if update.Name != nil {
		emp.Name = strings.TrimSpace(*update.Name)
	}
	if update.Color != nil {
		emp.Color = *update.Color
	}
	if update.Active != nil {
		emp.Active = *update.Active
	}
	if update.LunchStart != nil {
		emp.LunchStart = *update.LunchStart
	}
	if update.LunchEnd != nil {
		emp.LunchEnd = *update.LunchEnd
	}

	vErr := &ValidationError{}
	if emp.Name == "" {
		vErr.add("name", "o nome é obrigatório")
	}
	validateLunchWindow(vErr, emp.LunchStart, emp.LunchEnd)
	if vErr.HasErrors() {
		return roster.Employee{}, nil, vErr
	}

	s.employees[idx] = emp

	warnings := s.saveEmployeesLocked(ctx, logger)
	logger.InfoContext(ctx, "employee updated")
	return emp, warnings, nil
}

// RemoveEmployee deletes a roster member and cascades the removal through
// every slot they occupy in the weekly grid.
func (s *RosterService) RemoveEmployee(ctx context.Context, id string) ([]Warning, error) {
	if s == nil {
		return nil, fmt.Errorf("RosterService is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := serviceLogger(ctx, s.logger, "roster", "remove_employee", "employee_id", id)

	idx := -1
	for i, emp := range s.employees {
		if emp.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	s.employees = append(s.employees[:idx], s.employees[idx+1:]...)
	s.schedule.RemoveEmployee(id)

	warnings := s.saveEmployeesLocked(ctx, logger)
	warnings = append(warnings, s.saveScheduleLocked(ctx, logger)...)
	logger.InfoContext(ctx, "employee removed")
	return warnings, nil
}

// AssignRange books a contiguous block of half-hour slots on one channel.
// The whole range is checked for double-booking on the other channels
// first; any collision rejects the request without modifying the grid.
func (s *RosterService) AssignRange(ctx context.Context, params AssignRangeParams) ([]Warning, error) {
	if s == nil {
		return nil, fmt.Errorf("RosterService is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := serviceLogger(ctx, s.logger, "roster", "assign_range", "employee_id", params.EmployeeID)

	if _, ok := roster.FindEmployee(s.employees, params.EmployeeID); !ok {
		return nil, ErrNotFound
	}

	vErr := &ValidationError{}
	if err := params.Channel.Validate(); err != nil {
		vErr.add("channel", "canal inválido")
	}
	dayIdx, err := timegrid.DayIndex(params.Day)
	if err != nil {
		vErr.add("day", "dia inválido")
	}
	startIdx, err := timegrid.SlotIndex(params.StartTime)
	if err != nil {
		vErr.add("start_time", "horário inválido")
	}
	endIdx, err := timegrid.SlotIndex(params.EndTime)
	if err != nil {
		vErr.add("end_time", "horário inválido")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if startIdx > endIdx {
		startIdx, endIdx = endIdx, startIdx
	}

	for i := startIdx; i <= endIdx; i++ {
		slot, slotErr := timegrid.SlotAt(i)
		if slotErr != nil {
			continue
		}
		if roster.HasConflict(s.schedule, params.EmployeeID, params.Day, slot.Display, &params.Channel) {
			return nil, &ConflictError{
				EmployeeID: params.EmployeeID,
				Day:        params.Day,
				Time:       slot.Display,
				Channel:    params.Channel,
			}
		}
	}

	if err := s.schedule.AssignRange(dayIdx, params.Channel, startIdx, endIdx, params.EmployeeID); err != nil {
		return nil, err
	}

	warnings := s.saveScheduleLocked(ctx, logger)
	logger.InfoContext(ctx, "range assigned", "day", params.Day, "channel", params.Channel.String(), "slots", endIdx-startIdx+1)
	return warnings, nil
}

// ClearSlot empties a single cell of the grid. Clearing an already empty
// cell succeeds.
func (s *RosterService) ClearSlot(ctx context.Context, params ClearSlotParams) ([]Warning, error) {
	if s == nil {
		return nil, fmt.Errorf("RosterService is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := serviceLogger(ctx, s.logger, "roster", "clear_slot")

	vErr := &ValidationError{}
	if err := params.Channel.Validate(); err != nil {
		vErr.add("channel", "canal inválido")
	}
	dayIdx, err := timegrid.DayIndex(params.Day)
	if err != nil {
		vErr.add("day", "dia inválido")
	}
	slotIdx, err := timegrid.SlotIndex(params.Time)
	if err != nil {
		vErr.add("time", "horário inválido")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if err := s.schedule.ClearSlot(dayIdx, params.Channel, slotIdx); err != nil {
		return nil, err
	}

	warnings := s.saveScheduleLocked(ctx, logger)
	return warnings, nil
}

// ClearSchedule empties the entire weekly grid. The roster and the policy
// are untouched.
func (s *RosterService) ClearSchedule(ctx context.Context) ([]Warning, error) {
	if s == nil {
		return nil, fmt.Errorf("RosterService is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := serviceLogger(ctx, s.logger, "roster", "clear_schedule")

	s.schedule.Clear()

	warnings := s.saveScheduleLocked(ctx, logger)
	logger.InfoContext(ctx, "schedule cleared")
	return warnings, nil
}

// RunAutoFill regenerates the weekly grid for the active roster. When fewer
// than four employees are active the run is a no-op and the existing grid
// is preserved.
func (s *RosterService) RunAutoFill(ctx context.Context) (AutoFillResult, []Warning, error) {
	if s == nil {
		return AutoFillResult{}, nil, fmt.Errorf("RosterService is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := serviceLogger(ctx, s.logger, "roster", "auto_fill")

	schedule, outcome := roster.AutoFill(s.employees, s.config)
	result := AutoFillResult{
		Applied:        outcome.Applied,
		FilledWindows:  outcome.FilledWindows,
		SkippedWindows: outcome.SkippedWindows,
	}
	if !outcome.Applied {
		logger.WarnContext(ctx, "auto-fill skipped", "active", len(roster.ActiveEmployees(s.employees)), "required", roster.MinAutoFillStaff)
		return result, nil, nil
	}

	s.schedule = schedule

	warnings := s.saveScheduleLocked(ctx, logger)
	logger.InfoContext(ctx, "auto-fill applied", "filled_windows", result.FilledWindows, "skipped_windows", result.SkippedWindows)
	return result, warnings, nil
}

// EmployeeStats returns the weekly hour totals for one roster member.
func (s *RosterService) EmployeeStats(id string) (roster.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := roster.FindEmployee(s.employees, id); !ok {
		return roster.Stats{}, ErrNotFound
	}
	return roster.EmployeeStats(s.schedule, id), nil
}

// Report aggregates the weekly statistics for the whole roster.
func (s *RosterService) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := Report{
		Employees: make([]EmployeeReport, 0, len(s.employees)),
		Coverage:  roster.CoverageReport(s.schedule),
		Days:      roster.DayTotals(s.schedule),
		Balance:   roster.BalanceReport(s.schedule, roster.ActiveEmployees(s.employees)),
	}
	for _, emp := range s.employees {
		report.Employees = append(report.Employees, EmployeeReport{
			Employee: emp,
			Stats:    roster.EmployeeStats(s.schedule, emp.ID),
		})
	}
	return report
}

// UpdateConfig applies a partial update to the scheduling policy.
func (s *RosterService) UpdateConfig(ctx context.Context, input ConfigInput) (roster.Config, []Warning, error) {
	if s == nil {
		return roster.Config{}, nil, fmt.Errorf("RosterService is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := serviceLogger(ctx, s.logger, "roster", "update_config")

	cfg := s.config
	if input.TurnDuration != nil {
		cfg.TurnDuration = *input.TurnDuration
	}
	if input.LunchCoverage != nil {
		cfg.LunchCoverage = *input.LunchCoverage
	}
	if input.BalanceHours != nil {
		cfg.BalanceHours = *input.BalanceHours
	}
	if input.RotateChannels != nil {
		cfg.RotateChannels = *input.RotateChannels
	}
	if input.RespectLunch != nil {
		cfg.RespectLunch = *input.RespectLunch
	}
	if input.LunchPolicy != nil {
		cfg.LunchPolicy = roster.LunchPolicy(*input.LunchPolicy)
	}
	if input.FixedLunchStart != nil {
		cfg.FixedLunchStart = *input.FixedLunchStart
	}
	if input.FixedLunchEnd != nil {
		cfg.FixedLunchEnd = *input.FixedLunchEnd
	}

	vErr := &ValidationError{}
	if cfg.TurnDuration < 1 || cfg.TurnDuration > 10 {
		vErr.add("turn_duration", "a duração do turno deve estar entre 1 e 10 horas")
	}
	if cfg.LunchCoverage < 0 || cfg.LunchCoverage > 100 {
		vErr.add("lunch_coverage", "a cobertura de almoço deve estar entre 0 e 100")
	}
	if cfg.LunchPolicy != roster.LunchPolicyFixed && cfg.LunchPolicy != roster.LunchPolicyIndividual {
		vErr.add("lunch_policy", "a política de almoço deve ser \"fixo\" ou \"individual\"")
	}
	if cfg.LunchPolicy == roster.LunchPolicyFixed {
		fixedErr := &ValidationError{}
		validateLunchWindow(fixedErr, cfg.FixedLunchStart, cfg.FixedLunchEnd)
		vErr.merge(fixedErr)
	}
	if vErr.HasErrors() {
		return roster.Config{}, nil, vErr
	}

	s.config = cfg

	warnings := s.saveConfigLocked(ctx, logger)
	logger.InfoContext(ctx, "config updated")
	return cfg, warnings, nil
}

// validateLunchWindow checks a pair of "HH:MM" lunch bounds. Both empty is
// a valid absence of window; anything else must be a well-formed window of
// 30 to 60 minutes.
func validateLunchWindow(vErr *ValidationError, start, end string) {
	if start == "" && end == "" {
		return
	}
	if start == "" || end == "" {
		vErr.add("lunch", "início e fim do almoço devem ser informados juntos")
		return
	}
	startMin, startErr := timegrid.ClockMinutes(start)
	if startErr != nil {
		vErr.add("lunch_start", "horário de almoço inválido")
	}
	endMin, endErr := timegrid.ClockMinutes(end)
	if endErr != nil {
		vErr.add("lunch_end", "horário de almoço inválido")
	}
	if startErr != nil || endErr != nil {
		return
	}
	duration := endMin - startMin
	if duration < 30 || duration > 60 {
		vErr.add("lunch", "o intervalo de almoço deve ter entre 30 e 60 minutos")
	}
}

func (s *RosterService) saveEmployeesLocked(ctx context.Context, logger *slog.Logger) []Warning {
	if s.employeeRepo == nil {
		return nil
	}
	if err := s.employeeRepo.SaveEmployees(ctx, s.employees); err != nil {
		logger.WarnContext(ctx, "write-through failed", "target", "employees", "error", err)
		return []Warning{persistenceWarning("save employees", err)}
	}
	return nil
}

func (s *RosterService) saveScheduleLocked(ctx context.Context, logger *slog.Logger) []Warning {
	if s.scheduleRepo == nil {
		return nil
	}
	if err := s.scheduleRepo.SaveSchedule(ctx, s.schedule); err != nil {
		logger.WarnContext(ctx, "write-through failed", "target", "schedule", "error", err)
		return []Warning{persistenceWarning("save schedule", err)}
	}
	return nil
}

func (s *RosterService) saveConfigLocked(ctx context.Context, logger *slog.Logger) []Warning {
	if s.configRepo == nil {
		return nil
	}
	if err := s.configRepo.SaveConfig(ctx, s.config); err != nil {
		logger.WarnContext(ctx, "write-through failed", "target", "config", "error", err)
		return []Warning{persistenceWarning("save config", err)}
	}
	return nil
}

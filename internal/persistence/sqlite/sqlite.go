// Package sqlite implements the persistence repositories on SQLite using
// the CGO-free modernc.org driver behind database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/example/escala/internal/persistence"
	"github.com/example/escala/internal/roster"
)

// Store implements EmployeeRepository, ScheduleRepository and
// ConfigRepository on a single SQLite database.
type Store struct {
	db *sql.DB
}

// Open connects to the database identified by dsn.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", dsn, err)
	}
	// The driver serialises access per connection; a single connection
	// avoids SQLITE_BUSY under the write-through pattern.
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate creates the schema when it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL,
			name        TEXT NOT NULL,
			color       TEXT NOT NULL,
			active      INTEGER NOT NULL DEFAULT 1,
			lunch_start TEXT NOT NULL DEFAULT '',
			lunch_end   TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS schedule_slots (
			day         INTEGER NOT NULL,
			channel     TEXT    NOT NULL,
			line        INTEGER NOT NULL,
			slot        INTEGER NOT NULL,
			employee_id TEXT    NOT NULL,
			PRIMARY KEY (day, channel, line, slot)
		)`,
		`CREATE TABLE IF NOT EXISTS roster_config (
			id                INTEGER PRIMARY KEY CHECK (id = 1),
			turn_duration     INTEGER NOT NULL,
			lunch_coverage    INTEGER NOT NULL,
			balance_hours     INTEGER NOT NULL,
			rotate_channels   INTEGER NOT NULL,
			respect_lunch     INTEGER NOT NULL,
			lunch_policy      TEXT    NOT NULL,
			fixed_lunch_start TEXT    NOT NULL,
			fixed_lunch_end   TEXT    NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite: migrate: %w", err)
		}
	}
	return nil
}

// --- EmployeeRepository ---

// LoadEmployees returns the stored roster in insertion order.
func (s *Store) LoadEmployees(ctx context.Context) ([]roster.Employee, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, color, active, lunch_start, lunch_end
		FROM employees
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load employees: %w", err)
	}
	defer rows.Close()

	var employees []roster.Employee
	for rows.Next() {
		var emp roster.Employee
		var active int
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Color, &active, &emp.LunchStart, &emp.LunchEnd); err != nil {
			return nil, fmt.Errorf("sqlite: scan employee: %w", err)
		}
		emp.Active = active != 0
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: load employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, persistence.ErrNotFound
	}
	return employees, nil
}

// SaveEmployees replaces the stored roster wholesale.
func (s *Store) SaveEmployees(ctx context.Context, employees []roster.Employee) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
			return err
		}
		for i, emp := range employees {
			active := 0
			if emp.Active {
				active = 1
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO employees (id, position, name, color, active, lunch_start, lunch_end)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, emp.ID, i, emp.Name, emp.Color, active, emp.LunchStart, emp.LunchEnd)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// --- ScheduleRepository ---

// LoadSchedule rebuilds the weekly grid from the stored occupied slots. A
// database with no slot rows yields ErrNotFound so the caller starts from
// an empty schedule.
func (s *Store) LoadSchedule(ctx context.Context) (*roster.WeekSchedule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, channel, line, slot, employee_id
		FROM schedule_slots
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load schedule: %w", err)
	}
	defer rows.Close()

	schedule := roster.NewWeekSchedule()
	found := false
	for rows.Next() {
		var day, line, slot int
		var kind, employeeID string
		if err := rows.Scan(&day, &kind, &line, &slot, &employeeID); err != nil {
			return nil, fmt.Errorf("sqlite: scan slot: %w", err)
		}
		found = true
		ch := roster.Channel{Kind: roster.ChannelKind(kind), Line: line}
		if err := schedule.AssignRange(day, ch, slot, slot, employeeID); err != nil {
			return nil, fmt.Errorf("sqlite: stored slot out of grid: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: load schedule: %w", err)
	}
	if !found {
		return nil, persistence.ErrNotFound
	}
	return schedule, nil
}

// SaveSchedule replaces the stored grid with the occupied cells of the
// given schedule.
func (s *Store) SaveSchedule(ctx context.Context, schedule *roster.WeekSchedule) error {
	if schedule == nil {
		schedule = roster.NewWeekSchedule()
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_slots`); err != nil {
			return err
		}
		var insertErr error
		schedule.EachSlot(func(day int, ch roster.Channel, slot int, employeeID string) {
			if employeeID == "" || insertErr != nil {
				return
			}
			_, insertErr = tx.ExecContext(ctx, `
				INSERT INTO schedule_slots (day, channel, line, slot, employee_id)
				VALUES (?, ?, ?, ?, ?)
			`, day, string(ch.Kind), ch.Line, slot, employeeID)
		})
		return insertErr
	})
}

// --- ConfigRepository ---

// LoadConfig returns the stored scheduling policy.
func (s *Store) LoadConfig(ctx context.Context) (roster.Config, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT turn_duration, lunch_coverage, balance_hours, rotate_channels,
		       respect_lunch, lunch_policy, fixed_lunch_start, fixed_lunch_end
		FROM roster_config WHERE id = 1
	`)

	var cfg roster.Config
	var balance, rotate, respect int
	var policy string
	err := row.Scan(&cfg.TurnDuration, &cfg.LunchCoverage, &balance, &rotate, &respect, &policy, &cfg.FixedLunchStart, &cfg.FixedLunchEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return roster.Config{}, persistence.ErrNotFound
	}
	if err != nil {
		return roster.Config{}, fmt.Errorf("sqlite: load config: %w", err)
	}
	cfg.BalanceHours = balance != 0
	cfg.RotateChannels = rotate != 0
	cfg.RespectLunch = respect != 0
	cfg.LunchPolicy = roster.LunchPolicy(policy)
	return cfg, nil
}

// SaveConfig upserts the singleton policy row.
func (s *Store) SaveConfig(ctx context.Context, cfg roster.Config) error {
	boolInt := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO roster_config (id, turn_duration, lunch_coverage, balance_hours,
			rotate_channels, respect_lunch, lunch_policy, fixed_lunch_start, fixed_lunch_end)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			turn_duration     = excluded.turn_duration,
			lunch_coverage    = excluded.lunch_coverage,
			balance_hours     = excluded.balance_hours,
			rotate_channels   = excluded.rotate_channels,
			respect_lunch     = excluded.respect_lunch,
			lunch_policy      = excluded.lunch_policy,
			fixed_lunch_start = excluded.fixed_lunch_start,
			fixed_lunch_end   = excluded.fixed_lunch_end
	`, cfg.TurnDuration, cfg.LunchCoverage, boolInt(cfg.BalanceHours), boolInt(cfg.RotateChannels),
		boolInt(cfg.RespectLunch), string(cfg.LunchPolicy), cfg.FixedLunchStart, cfg.FixedLunchEnd)
	if err != nil {
		return fmt.Errorf("sqlite: save config: %w", err)
	}
	return nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("sqlite: rollback after %v: %w", err, rbErr)
		}
		return fmt.Errorf("sqlite: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

package sqlite

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/escala/internal/persistence"
	"github.com/example/escala/internal/roster"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store
}

func TestEmployeeRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	t.Run("empty database reports not found", func(t *testing.T) {
		if _, err := store.LoadEmployees(ctx); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	employees := []roster.Employee{
		{ID: "emp-1", Name: "Ana Silva", Color: "#3B82F6", Active: true, LunchStart: "12:00", LunchEnd: "13:00"},
		{ID: "emp-2", Name: "Carlos Santos", Color: "#10B981", Active: false},
	}

	if err := store.SaveEmployees(ctx, employees); err != nil {
		t.Fatalf("failed to save employees: %v", err)
	}

	loaded, err := store.LoadEmployees(ctx)
	if err != nil {
		t.Fatalf("failed to load employees: %v", err)
	}
	if !reflect.DeepEqual(loaded, employees) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, employees)
	}

	t.Run("save replaces wholesale", func(t *testing.T) {
		if err := store.SaveEmployees(ctx, employees[:1]); err != nil {
			t.Fatalf("failed to save employees: %v", err)
		}
		loaded, err := store.LoadEmployees(ctx)
		if err != nil {
			t.Fatalf("failed to load employees: %v", err)
		}
		if len(loaded) != 1 || loaded[0].ID != "emp-1" {
			t.Fatalf("expected only emp-1 to remain, got %+v", loaded)
		}
	})
}

func TestScheduleRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.LoadSchedule(ctx); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty schedule, got %v", err)
	}

	schedule := roster.NewWeekSchedule()
	_ = schedule.AssignRange(0, roster.Livechat(), 2, 6, "emp-1")
	_ = schedule.AssignRange(3, roster.Ligacao(2), 10, 12, "emp-2")

	if err := store.SaveSchedule(ctx, schedule); err != nil {
		t.Fatalf("failed to save schedule: %v", err)
	}

	loaded, err := store.LoadSchedule(ctx)
	if err != nil {
		t.Fatalf("failed to load schedule: %v", err)
	}
	if !reflect.DeepEqual(loaded, schedule) {
		t.Fatalf("schedule round trip mismatch")
	}

	t.Run("clearing persists", func(t *testing.T) {
		schedule.RemoveEmployee("emp-1")
		if err := store.SaveSchedule(ctx, schedule); err != nil {
			t.Fatalf("failed to save schedule: %v", err)
		}
		loaded, err := store.LoadSchedule(ctx)
		if err != nil {
			t.Fatalf("failed to load schedule: %v", err)
		}
		loaded.EachSlot(func(day int, ch roster.Channel, slot int, occupant string) {
			if occupant == "emp-1" {
				t.Fatalf("expected no emp-1 slots after cascade, found day=%d %s slot=%d", day, ch, slot)
			}
		})
	})
}

func TestConfigRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.LoadConfig(ctx); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing config, got %v", err)
	}

	cfg := roster.DefaultConfig()
	cfg.LunchPolicy = roster.LunchPolicyFixed
	cfg.FixedLunchStart = "11:30"
	cfg.FixedLunchEnd = "12:30"
	cfg.BalanceHours = false

	if err := store.SaveConfig(ctx, cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := store.LoadConfig(ctx)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("config round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}

	t.Run("save is an upsert", func(t *testing.T) {
		cfg.TurnDuration = 6
		if err := store.SaveConfig(ctx, cfg); err != nil {
			t.Fatalf("failed to overwrite config: %v", err)
		}
		loaded, err := store.LoadConfig(ctx)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if loaded.TurnDuration != 6 {
			t.Fatalf("expected turn duration 6, got %d", loaded.TurnDuration)
		}
	})
}

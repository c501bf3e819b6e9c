package application

import (
	"context"
	"reflect"
	"testing"

	"github.com/example/escala/internal/roster"
	"github.com/example/escala/internal/testfixtures"
)

// End-to-end round trip through the real SQLite store: mutate via one
// service instance, reload into a fresh one and compare state.
func TestRosterService_SQLiteRoundTrip(t *testing.T) {
	store := testfixtures.NewSQLiteStore(t)
	ctx := context.Background()

	if err := store.SaveEmployees(ctx, testfixtures.ActiveRoster(4)); err != nil {
		t.Fatalf("failed to seed employees: %v", err)
	}

	gen := testfixtures.NewIDGenerator("emp")
	svc := NewRosterService(store, store, store, gen.NextFunc(), nil)
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(svc.Employees()) != 4 {
		t.Fatalf("expected seeded roster, got %d employees", len(svc.Employees()))
	}

	extra, warnings, err := svc.AddEmployee(ctx, EmployeeInput{Name: "Eva", LunchStart: "12:00", LunchEnd: "12:30"})
	if err != nil {
		t.Fatalf("failed to add employee: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", warnings)
	}

	result, warnings, err := svc.RunAutoFill(ctx)
	if err != nil {
		t.Fatalf("failed to auto-fill: %v", err)
	}
	if !result.Applied || len(warnings) != 0 {
		t.Fatalf("expected clean applied run, got %+v %+v", result, warnings)
	}

	policy := string(roster.LunchPolicyFixed)
	if _, _, err := svc.UpdateConfig(ctx, ConfigInput{LunchPolicy: &policy}); err != nil {
		t.Fatalf("failed to update config: %v", err)
	}

	reloaded := NewRosterService(store, store, store, nil, nil)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}

	if len(reloaded.Employees()) != 5 {
		t.Fatalf("expected 5 employees after reload, got %d", len(reloaded.Employees()))
	}
	if _, err := reloaded.Employee(extra.ID); err != nil {
		t.Fatalf("expected added employee to survive reload: %v", err)
	}
	if !reflect.DeepEqual(reloaded.Schedule(), svc.Schedule()) {
		t.Fatalf("expected schedule to survive reload")
	}
	if reloaded.Config().LunchPolicy != roster.LunchPolicyFixed {
		t.Fatalf("expected config to survive reload, got %+v", reloaded.Config())
	}
}

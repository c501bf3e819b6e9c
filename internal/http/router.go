package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type RouterConfig struct {
	Employees  *EmployeeHandler
	Schedule   *ScheduleHandler
	Stats      *StatsHandler
	Config     *ConfigHandler
	Logger     *slog.Logger
	Middleware []func(http.Handler) http.Handler
}

// NewRouter assembles the API surface. Reads are open; every mutating
// route sits behind the manager role asserted by the upstream proxy.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	for _, mw := range cfg.Middleware {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if cfg.Employees != nil {
		r.Get("/employees", cfg.Employees.List)
	}
	if cfg.Schedule != nil {
		r.Get("/schedule", cfg.Schedule.Get)
	}
	if cfg.Stats != nil {
		r.Get("/stats/report", cfg.Stats.Report)
		r.Get("/stats/employees/{id}", cfg.Stats.Employee)
	}
	if cfg.Config != nil {
		r.Get("/config", cfg.Config.Get)
	}

	r.Group(func(g chi.Router) {
		g.Use(RequireRole(RoleManager, cfg.Logger))

		if cfg.Employees != nil {
			g.Post("/employees", cfg.Employees.Create)
			g.Put("/employees/{id}", cfg.Employees.Update)
			g.Delete("/employees/{id}", cfg.Employees.Delete)
		}
		if cfg.Schedule != nil {
			g.Post("/schedule/assignments", cfg.Schedule.Assign)
			g.Post("/schedule/slots/clear", cfg.Schedule.ClearSlot)
			g.Post("/schedule/autofill", cfg.Schedule.AutoFill)
			g.Delete("/schedule", cfg.Schedule.Clear)
		}
		if cfg.Config != nil {
			g.Put("/config", cfg.Config.Update)
		}
	})

	return r
}

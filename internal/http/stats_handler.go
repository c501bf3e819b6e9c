package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/escala/internal/application"
	"github.com/example/escala/internal/roster"
)

type statsService interface {
	EmployeeStats(id string) (roster.Stats, error)
	Report() application.Report
}

type StatsHandler struct {
	service   statsService
	responder responder
}

func NewStatsHandler(service statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{service: service, responder: newResponder(logger)}
}

// Employee renders the weekly totals for a single roster member.
func (h *StatsHandler) Employee(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidEmployeeID)
		return
	}

	stats, err := h.service.EmployeeStats(id)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, employeeStatsResponse{
		EmployeeID: id,
		Stats:      toStatsDTO(stats),
	})
}

// Report renders the aggregated weekly dashboard.
func (h *StatsHandler) Report(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	report := h.service.Report()

	payload := reportResponse{
		Employees: make([]employeeReportDTO, 0, len(report.Employees)),
		Coverage: coverageDTO{
			Livechat: report.Coverage.Livechat,
			Ligacao:  report.Coverage.Ligacao,
			Overall:  report.Coverage.Overall,
		},
		Days: make([]dayTotalDTO, 0, len(report.Days)),
		Balance: balanceDTO{
			MaxHours: report.Balance.MaxHours,
			MinHours: report.Balance.MinHours,
			Spread:   report.Balance.Spread,
		},
	}
	for _, row := range report.Employees {
		payload.Employees = append(payload.Employees, employeeReportDTO{
			Employee: toEmployeeDTO(row.Employee),
			Stats:    toStatsDTO(row.Stats),
		})
	}
	for _, day := range report.Days {
		payload.Days = append(payload.Days, dayTotalDTO{
			Day:      day.Day,
			Livechat: day.Livechat,
			Ligacao:  day.Ligacao,
			Total:    day.Total,
		})
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, payload)
}

type statsDTO struct {
	TotalHours    float64 `json:"total_hours"`
	LivechatHours float64 `json:"livechat_hours"`
	LigacaoHours  float64 `json:"ligacao_hours"`
}

func toStatsDTO(stats roster.Stats) statsDTO {
	return statsDTO{
		TotalHours:    stats.TotalHours,
		LivechatHours: stats.LivechatHours,
		LigacaoHours:  stats.LigacaoHours,
	}
}

type employeeStatsResponse struct {
	EmployeeID string   `json:"employee_id"`
	Stats      statsDTO `json:"stats"`
}

type employeeReportDTO struct {
	Employee employeeDTO `json:"employee"`
	Stats    statsDTO    `json:"stats"`
}

type coverageDTO struct {
	Livechat float64 `json:"livechat"`
	Ligacao  float64 `json:"ligacao"`
	Overall  float64 `json:"overall"`
}

type dayTotalDTO struct {
	Day      string  `json:"day"`
	Livechat float64 `json:"livechat"`
	Ligacao  float64 `json:"ligacao"`
	Total    float64 `json:"total"`
}

type balanceDTO struct {
	MaxHours float64 `json:"max_hours"`
	MinHours float64 `json:"min_hours"`
	Spread   float64 `json:"spread"`
}

type reportResponse struct {
	Employees []employeeReportDTO `json:"employees"`
	Coverage  coverageDTO         `json:"coverage"`
	Days      []dayTotalDTO       `json:"days"`
	Balance   balanceDTO          `json:"balance"`
}

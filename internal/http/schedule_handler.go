package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/escala/internal/application"
	"github.com/example/escala/internal/roster"
	"github.com/example/escala/internal/timegrid"
)

type scheduleService interface {
	Schedule() *roster.WeekSchedule
	AssignRange(ctx context.Context, params application.AssignRangeParams) ([]application.Warning, error)
	ClearSlot(ctx context.Context, params application.ClearSlotParams) ([]application.Warning, error)
	ClearSchedule(ctx context.Context) ([]application.Warning, error)
	RunAutoFill(ctx context.Context) (application.AutoFillResult, []application.Warning, error)
}

type ScheduleHandler struct {
	service   scheduleService
	responder responder
}

func NewScheduleHandler(service scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, responder: newResponder(logger)}
}

// Get renders the whole weekly grid.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toScheduleDTO(h.service.Schedule()))
}

// Assign books a contiguous block of slots for one employee.
func (h *ScheduleHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	warnings, err := h.service.AssignRange(r.Context(), req.toParams())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	if len(warnings) > 0 {
		h.responder.writeJSON(r.Context(), w, http.StatusOK, warningsResponse{Warnings: toWarningDTOs(warnings)})
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// ClearSlot empties a single grid cell.
func (h *ScheduleHandler) ClearSlot(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req clearSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	warnings, err := h.service.ClearSlot(r.Context(), req.toParams())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	if len(warnings) > 0 {
		h.responder.writeJSON(r.Context(), w, http.StatusOK, warningsResponse{Warnings: toWarningDTOs(warnings)})
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Clear empties the whole weekly grid.
func (h *ScheduleHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	warnings, err := h.service.ClearSchedule(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	if len(warnings) > 0 {
		h.responder.writeJSON(r.Context(), w, http.StatusOK, warningsResponse{Warnings: toWarningDTOs(warnings)})
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// AutoFill regenerates the weekly grid for the active roster.
func (h *ScheduleHandler) AutoFill(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	result, warnings, err := h.service.RunAutoFill(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	payload := autoFillResponse{
		Applied:        result.Applied,
		FilledWindows:  result.FilledWindows,
		SkippedWindows: result.SkippedWindows,
		Warnings:       toWarningDTOs(warnings),
	}
	if !result.Applied {
		payload.Message = "São necessários pelo menos quatro funcionários ativos para gerar a escala."
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, payload)
}

type channelDTO struct {
	Kind string `json:"kind"`
	Line int    `json:"line"`
}

func (c channelDTO) toChannel() roster.Channel {
	return roster.Channel{Kind: roster.ChannelKind(strings.TrimSpace(c.Kind)), Line: c.Line}
}

func toChannelDTO(ch roster.Channel) channelDTO {
	return channelDTO{Kind: string(ch.Kind), Line: ch.Line}
}

type assignRequest struct {
	EmployeeID string     `json:"employee_id"`
	Day        string     `json:"day"`
	Channel    channelDTO `json:"channel"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
}

func (r assignRequest) toParams() application.AssignRangeParams {
	return application.AssignRangeParams{
		EmployeeID: strings.TrimSpace(r.EmployeeID),
		Day:        strings.TrimSpace(r.Day),
		Channel:    r.Channel.toChannel(),
		StartTime:  strings.TrimSpace(r.StartTime),
		EndTime:    strings.TrimSpace(r.EndTime),
	}
}

type clearSlotRequest struct {
	Day     string     `json:"day"`
	Channel channelDTO `json:"channel"`
	Time    string     `json:"time"`
}

func (r clearSlotRequest) toParams() application.ClearSlotParams {
	return application.ClearSlotParams{
		Day:     strings.TrimSpace(r.Day),
		Channel: r.Channel.toChannel(),
		Time:    strings.TrimSpace(r.Time),
	}
}

type autoFillResponse struct {
	Applied        bool         `json:"applied"`
	FilledWindows  int          `json:"filled_windows"`
	SkippedWindows int          `json:"skipped_windows"`
	Message        string       `json:"message,omitempty"`
	Warnings       []warningDTO `json:"warnings,omitempty"`
}

type scheduleDTO struct {
	Times []string `json:"times"`
	Days  []dayDTO `json:"days"`
}

type dayDTO struct {
	Day      string     `json:"day"`
	Livechat []string   `json:"livechat"`
	Ligacao  [][]string `json:"ligacao"`
}

func toScheduleDTO(schedule *roster.WeekSchedule) scheduleDTO {
	times := make([]string, 0, timegrid.SlotsPerDay)
	for _, slot := range timegrid.Slots() {
		times = append(times, slot.Display)
	}

	days := make([]dayDTO, 0, roster.NumDays)
	for dayIdx, name := range timegrid.Weekdays() {
		day := dayDTO{
			Day:      name,
			Livechat: make([]string, roster.SlotsPerDay),
			Ligacao:  make([][]string, roster.NumLines),
		}
		for slot := 0; slot < roster.SlotsPerDay; slot++ {
			occupant, _ := schedule.At(dayIdx, roster.Livechat(), slot)
			day.Livechat[slot] = occupant
		}
		for line := 0; line < roster.NumLines; line++ {
			day.Ligacao[line] = make([]string, roster.SlotsPerDay)
			for slot := 0; slot < roster.SlotsPerDay; slot++ {
				occupant, _ := schedule.At(dayIdx, roster.Ligacao(line), slot)
				day.Ligacao[line][slot] = occupant
			}
		}
		days = append(days, day)
	}

	return scheduleDTO{Times: times, Days: days}
}

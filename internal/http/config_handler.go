package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/escala/internal/application"
	"github.com/example/escala/internal/roster"
)

type configService interface {
	Config() roster.Config
	UpdateConfig(ctx context.Context, input application.ConfigInput) (roster.Config, []application.Warning, error)
}

type ConfigHandler struct {
	service   configService
	responder responder
}

func NewConfigHandler(service configService, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{service: service, responder: newResponder(logger)}
}

func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, configResponse{Config: toConfigDTO(h.service.Config())})
}

func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	cfg, warnings, err := h.service.UpdateConfig(r.Context(), req.toInput())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, configResponse{
		Config:   toConfigDTO(cfg),
		Warnings: toWarningDTOs(warnings),
	})
}

type configRequest struct {
	TurnDuration    *int    `json:"turn_duration"`
	LunchCoverage   *int    `json:"lunch_coverage"`
	BalanceHours    *bool   `json:"balance_hours"`
	RotateChannels  *bool   `json:"rotate_channels"`
	RespectLunch    *bool   `json:"respect_lunch"`
	LunchPolicy     *string `json:"lunch_policy"`
	FixedLunchStart *string `json:"fixed_lunch_start"`
	FixedLunchEnd   *string `json:"fixed_lunch_end"`
}

func (r configRequest) toInput() application.ConfigInput {
	return application.ConfigInput{
		TurnDuration:    r.TurnDuration,
		LunchCoverage:   r.LunchCoverage,
		BalanceHours:    r.BalanceHours,
		RotateChannels:  r.RotateChannels,
		RespectLunch:    r.RespectLunch,
		LunchPolicy:     r.LunchPolicy,
		FixedLunchStart: r.FixedLunchStart,
		FixedLunchEnd:   r.FixedLunchEnd,
	}
}

type configDTO struct {
	TurnDuration    int    `json:"turn_duration"`
	LunchCoverage   int    `json:"lunch_coverage"`
	BalanceHours    bool   `json:"balance_hours"`
	RotateChannels  bool   `json:"rotate_channels"`
	RespectLunch    bool   `json:"respect_lunch"`
	LunchPolicy     string `json:"lunch_policy"`
	FixedLunchStart string `json:"fixed_lunch_start"`
	FixedLunchEnd   string `json:"fixed_lunch_end"`
}

func toConfigDTO(cfg roster.Config) configDTO {
	return configDTO{
		TurnDuration:    cfg.TurnDuration,
		LunchCoverage:   cfg.LunchCoverage,
		BalanceHours:    cfg.BalanceHours,
		RotateChannels:  cfg.RotateChannels,
		RespectLunch:    cfg.RespectLunch,
		LunchPolicy:     string(cfg.LunchPolicy),
		FixedLunchStart: cfg.FixedLunchStart,
		FixedLunchEnd:   cfg.FixedLunchEnd,
	}
}

type configResponse struct {
	Config   configDTO    `json:"config"`
	Warnings []warningDTO `json:"warnings,omitempty"`
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/escala/internal/application"
)

var (
	errBadRequestBody    = errors.New("O corpo do pedido é inválido.")
	errInvalidEmployeeID = errors.New("O identificador de funcionário é inválido.")
	errMissingRole       = errors.New("O cabeçalho de identidade é obrigatório.")
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	return responder{logger: defaultLogger(logger)}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		requestLogger(ctx, r.logger).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := localizedStatusMessage(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
		requestLogger(ctx, r.logger).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}

	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		r.writeError(ctx, w, http.StatusInternalServerError, errors.New("unknown error"))
		return
	}

	switch {
	case errors.Is(err, application.ErrForbidden):
		r.writeJSON(ctx, w, http.StatusForbidden, errorResponse{
			ErrorCode: "ROLE_FORBIDDEN",
			Message:   "Não tem permissão para executar esta operação.",
		})
	case errors.Is(err, application.ErrNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: "O recurso indicado não foi encontrado."})
	default:
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			r.writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
				Message: "Os dados enviados são inválidos.",
				Errors:  vErr.FieldErrors,
			})
			return
		}

		var cErr *application.ConflictError
		if errors.As(err, &cErr) {
			r.writeJSON(ctx, w, http.StatusConflict, errorResponse{
				ErrorCode: "SCHEDULE_CONFLICT",
				Message:   "O funcionário já está escalado noutro canal nesse horário.",
				Conflict: &conflictDTO{
					EmployeeID: cErr.EmployeeID,
					Day:        cErr.Day,
					Time:       cErr.Time,
					Channel:    toChannelDTO(cErr.Channel),
				},
			})
			return
		}

		requestLogger(ctx, r.logger).ErrorContext(ctx, "unhandled service error", "error", err, "kind", application.ErrorKind(err))
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "Ocorreu um erro interno no servidor."})
	}
}

func localizedStatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "O pedido é inválido."
	case http.StatusUnauthorized:
		return "É necessária identificação."
	case http.StatusForbidden:
		return "Não tem permissão para executar esta operação."
	case http.StatusNotFound:
		return "O recurso indicado não foi encontrado."
	case http.StatusConflict:
		return "O pedido entra em conflito com o estado atual da escala."
	case http.StatusUnprocessableEntity:
		return "Os dados enviados são inválidos."
	default:
		return "Ocorreu um erro interno no servidor."
	}
}

type errorResponse struct {
	ErrorCode string            `json:"error_code,omitempty"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
	Conflict  *conflictDTO      `json:"conflict,omitempty"`
}

type conflictDTO struct {
	EmployeeID string     `json:"employee_id"`
	Day        string     `json:"day"`
	Time       string     `json:"time"`
	Channel    channelDTO `json:"channel"`
}

package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/escala/internal/application"
	"github.com/example/escala/internal/roster"
)

type employeeService interface {
	Employees() []roster.Employee
	AddEmployee(ctx context.Context, input application.EmployeeInput) (roster.Employee, []application.Warning, error)
	UpdateEmployee(ctx context.Context, id string, update application.EmployeeUpdate) (roster.Employee, []application.Warning, error)
	RemoveEmployee(ctx context.Context, id string) ([]application.Warning, error)
}

type EmployeeHandler struct {
	service   employeeService
	responder responder
}

func NewEmployeeHandler(service employeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, responder: newResponder(logger)}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	employees := h.service.Employees()
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listEmployeesResponse{
		Employees: toEmployeeDTOs(employees),
	})
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	employee, warnings, err := h.service.AddEmployee(r.Context(), req.toInput())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, employeeResponse{
		Employee: toEmployeeDTO(employee),
		Warnings: toWarningDTOs(warnings),
	})
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidEmployeeID)
		return
	}

	var req employeeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	employee, warnings, err := h.service.UpdateEmployee(r.Context(), id, req.toUpdate())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, employeeResponse{
		Employee: toEmployeeDTO(employee),
		Warnings: toWarningDTOs(warnings),
	})
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidEmployeeID)
		return
	}

	warnings, err := h.service.RemoveEmployee(r.Context(), id)
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

type employeeRequest struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	Active     *bool  `json:"active"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

func (r employeeRequest) toInput() application.EmployeeInput {
	return application.EmployeeInput{
		Name:       strings.TrimSpace(r.Name),
		Color:      strings.TrimSpace(r.Color),
		Active:     r.Active,
		LunchStart: strings.TrimSpace(r.LunchStart),
		LunchEnd:   strings.TrimSpace(r.LunchEnd),
	}
}

type employeeUpdateRequest struct {
	Name       *string `json:"name"`
	Color      *string `json:"color"`
	Active     *bool   `json:"active"`
	LunchStart *string `json:"lunch_start"`
	LunchEnd   *string `json:"lunch_end"`
}

func (r employeeUpdateRequest) toUpdate() application.EmployeeUpdate {
	return application.EmployeeUpdate{
		Name:       r.Name,
		Color:      r.Color,
		Active:     r.Active,
		LunchStart: r.LunchStart,
		LunchEnd:   r.LunchEnd,
	}
}

type employeeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Active     bool   `json:"active"`
	LunchStart string `json:"lunch_start,omitempty"`
	LunchEnd   string `json:"lunch_end,omitempty"`
}

func toEmployeeDTO(employee roster.Employee) employeeDTO {
	return employeeDTO{
		ID:         employee.ID,
		Name:       employee.Name,
		Color:      employee.Color,
		Active:     employee.Active,
		LunchStart: employee.LunchStart,
		LunchEnd:   employee.LunchEnd,
	}
}

func toEmployeeDTOs(employees []roster.Employee) []employeeDTO {
	if len(employees) == 0 {
		return nil
	}
	out := make([]employeeDTO, 0, len(employees))
	for _, employee := range employees {
		out = append(out, toEmployeeDTO(employee))
	}
	return out
}

type employeeResponse struct {
	Employee employeeDTO  `json:"employee"`
	Warnings []warningDTO `json:"warnings,omitempty"`
}

type listEmployeesResponse struct {
	Employees []employeeDTO `json:"employees"`
}

type warningsResponse struct {
	Warnings []warningDTO `json:"warnings,omitempty"`
}

type warningDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func toWarningDTOs(warnings []application.Warning) []warningDTO {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]warningDTO, 0, len(warnings))
	for _, warning := range warnings {
		out = append(out, warningDTO{Kind: warning.Kind, Message: warning.Message})
	}
	return out
}

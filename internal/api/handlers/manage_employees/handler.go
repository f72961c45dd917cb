package manage_employees

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	staffService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/staff"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgInvalidBody       = "некорректное тело запроса"
	msgUnauthorized      = "требуется авторизация"
	msgEmployeeNotFound  = "сотрудник не найден"
	msgEmailTaken        = "email уже зарегистрирован"
	msgAccessDenied      = "доступ запрещен"
)

type Handler struct {
	staffService StaffService
	logger       Logger
}

func NewHandler(staffService StaffService, logger Logger) *Handler {
	return &Handler{
		staffService: staffService,
		logger:       logger,
	}
}

// Create POST /api/v1/employees
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	employee := &domain.Employee{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  domain.Role(req.Role),
	}

	created, err := h.staffService.Create(r.Context(), principal, employee, req.Password)
	if err != nil {
		h.respondStaffError(w, "POST /employees", principal, 0, err)
		return
	}

	h.logger.Info("POST /employees - Employee created: id=%d by user=%d", created.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainEmployee(created))
}

// Get GET /api/v1/employees/{employeeId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	employeeID, err := strconv.ParseInt(mux.Vars(r)["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	employee, err := h.staffService.GetByID(r.Context(), principal, employeeID)
	if err != nil {
		h.respondStaffError(w, "GET /employees/{id}", principal, employeeID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainEmployee(employee))
}

// List GET /api/v1/employees
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	list, err := h.staffService.List(r.Context(), principal)
	if err != nil {
		h.respondStaffError(w, "GET /employees", principal, 0, err)
		return
	}

	h.logger.Info("GET /employees - Employees retrieved: count=%d by user=%d", len(list), principal.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// Update PUT /api/v1/employees/{employeeId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	employeeID, err := strconv.ParseInt(mux.Vars(r)["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	var req UpdateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	employee := &domain.Employee{
		ID:    employeeID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  domain.Role(req.Role),
	}

	updated, err := h.staffService.Update(r.Context(), principal, employee)
	if err != nil {
		h.respondStaffError(w, "PUT /employees/{id}", principal, employeeID, err)
		return
	}

	h.logger.Info("PUT /employees/{id} - Employee updated: id=%d by user=%d", employeeID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainEmployee(updated))
}

// Delete DELETE /api/v1/employees/{employeeId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	employeeID, err := strconv.ParseInt(mux.Vars(r)["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	if err := h.staffService.Delete(r.Context(), principal, employeeID); err != nil {
		h.respondStaffError(w, "DELETE /employees/{id}", principal, employeeID, err)
		return
	}

	h.logger.Info("DELETE /employees/{id} - Employee deleted: id=%d by user=%d", employeeID, principal.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondStaffError(w http.ResponseWriter, op string, principal domain.Principal, employeeID int64, err error) {
	switch {
	case errors.Is(err, staffService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: user=%d", op, principal.ID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, staffService.ErrEmployeeNotFound):
		h.logger.Warn("%s - Employee not found: employee_id=%d", op, employeeID)
		handlers.RespondNotFound(w, msgEmployeeNotFound)

	case errors.Is(err, staffService.ErrEmailTaken):
		h.logger.Warn("%s - Email taken", op)
		handlers.RespondConflict(w, msgEmailTaken)

	case errors.Is(err, staffService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Staff service error: user=%d, error=%v", op, principal.ID, err)
		handlers.RespondInternalError(w)
	}
}

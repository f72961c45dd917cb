package get_employee_tasks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	tasksService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/tasks"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgUnauthorized      = "требуется авторизация"
	msgAccessDenied      = "доступ запрещен"
)

type Handler struct {
	tasksService TasksService
	logger       Logger
}

func NewHandler(tasksService TasksService, logger Logger) *Handler {
	return &Handler{
		tasksService: tasksService,
		logger:       logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/tasks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	employeeID, err := strconv.ParseInt(mux.Vars(r)["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /employees/{id}/tasks - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	list, err := h.tasksService.ListByEmployee(r.Context(), principal, employeeID)
	if err != nil {
		switch {
		case errors.Is(err, tasksService.ErrAccessDenied):
			h.logger.Warn("GET /employees/{id}/tasks - Access denied: employee_id=%d, user=%d", employeeID, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /employees/{id}/tasks - Failed to list tasks: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/tasks - Tasks retrieved: employee_id=%d, count=%d", employeeID, len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

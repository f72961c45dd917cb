package update_task_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	tasksService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/tasks"
)

const (
	msgInvalidTaskID = "некорректный ID задачи"
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidStatus = "некорректный статус задачи"
	msgUnauthorized  = "требуется авторизация"
	msgTaskNotFound  = "задача не найдена"
	msgAccessDenied  = "доступ запрещен"
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

// Handle PATCH /api/v1/tasks/{taskId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	taskID, err := strconv.ParseInt(mux.Vars(r)["taskId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tasks/{id}/status - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tasks/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	task, err := h.tasksService.UpdateStatus(r.Context(), principal, taskID, domain.TaskStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, tasksService.ErrInvalidStatus):
			h.logger.Warn("PATCH /tasks/{id}/status - Invalid status: task_id=%d, status=%s", taskID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, tasksService.ErrTaskNotFound):
			h.logger.Warn("PATCH /tasks/{id}/status - Task not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgTaskNotFound)

		case errors.Is(err, tasksService.ErrAccessDenied):
			h.logger.Warn("PATCH /tasks/{id}/status - Access denied: task_id=%d, user=%d", taskID, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /tasks/{id}/status - Failed to update status: task_id=%d, error=%v", taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tasks/{id}/status - Status updated: task_id=%d, status=%s, user=%d",
		taskID, task.Status, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainTask(task))
}

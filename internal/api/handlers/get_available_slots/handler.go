package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	getAvailableSlots "github.com/KirillBalashovIS122/SkodaExpert/internal/usecase/get_available_slots"
)

const (
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingServiceIDs = "список услуг обязателен"
	msgInvalidServiceIDs = "некорректный список ID услуг"
	msgServiceNotFound   = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), serviceIds (required, через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceIDsStr := r.URL.Query().Get("serviceIds")
	if serviceIDsStr == "" {
		h.logger.Warn("GET /slots - Missing service IDs")
		handlers.RespondBadRequest(w, msgMissingServiceIDs)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceIDs, err := ParseServiceIDs(serviceIDsStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid service IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	// Слоты доступны и без авторизации, клиент в контексте опционален
	var clientID int64
	if principal, ok := middleware.GetPrincipal(r.Context()); ok {
		clientID = principal.ID
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(clientID, date, serviceIDs))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots - Service not found: serviceIds=%s", serviceIDsStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceIDs)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved: date=%s, slots_count=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

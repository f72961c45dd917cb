package create_order

import (
	"errors"
	"net/http"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	createOrder "github.com/KirillBalashovIS122/SkodaExpert/internal/usecase/create_order"
)

const (
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized        = "требуется авторизация"
	msgClientsOnly         = "запись доступна только клиентам"
	msgDateInPast          = "дата и время записи уже прошли"
	msgOutsideWorkingHours = "визит не помещается в рабочие часы"
	msgSlotTaken           = "выбранное время уже занято"
	msgNoMechanic          = "нет доступных механиков"
	msgServiceNotFound     = "услуга не найдена"
	msgCarNotFound         = "автомобиль не найден"
	msgCarModelNotFound    = "модель автомобиля не найдена"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	if principal.Role != domain.RoleClient {
		h.logger.Warn("POST /orders - Non-client id=%d, role=%s tried to book", principal.ID, principal.Role)
		handlers.RespondForbidden(w, msgClientsOnly)
		return
	}

	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := ToUseCaseRequest(principal.ID, &req)
	if err != nil {
		h.logger.Warn("POST /orders - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createOrder.ErrDateInPast):
			h.logger.Warn("POST /orders - Date in past: client=%d", principal.ID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createOrder.ErrOutsideWorkingHours):
			h.logger.Warn("POST /orders - Outside working hours: client=%d", principal.ID)
			handlers.RespondConflict(w, msgOutsideWorkingHours)

		case errors.Is(err, createOrder.ErrSlotNotAvailable):
			h.logger.Warn("POST /orders - Slot taken: client=%d, date=%s, start=%s",
				principal.ID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createOrder.ErrNoMechanicAvailable):
			h.logger.Warn("POST /orders - No mechanic available: client=%d", principal.ID)
			handlers.RespondConflict(w, msgNoMechanic)

		case errors.Is(err, createOrder.ErrServiceNotFound):
			h.logger.Warn("POST /orders - Service not found: client=%d", principal.ID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createOrder.ErrCarNotFound):
			h.logger.Warn("POST /orders - Car not found: client=%d", principal.ID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, createOrder.ErrCarModelNotFound):
			h.logger.Warn("POST /orders - Car model not found: client=%d", principal.ID)
			handlers.RespondNotFound(w, msgCarModelNotFound)

		default:
			h.logger.Error("POST /orders - Failed to create order: client=%d, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Created order id=%d for client=%d", result.Order.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

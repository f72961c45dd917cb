package get_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	ordersService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/orders"
)

const (
	msgInvalidOrderID = "некорректный ID заказа"
	msgUnauthorized   = "требуется авторизация"
	msgOrderNotFound  = "заказ не найден"
	msgAccessDenied   = "доступ запрещен"
)

type Handler struct {
	ordersService OrdersService
	logger        Logger
}

func NewHandler(ordersService OrdersService, logger Logger) *Handler {
	return &Handler{
		ordersService: ordersService,
		logger:        logger,
	}
}

// Handle GET /api/v1/orders/{orderId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	orderID, err := strconv.ParseInt(mux.Vars(r)["orderId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /orders/{id} - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	details, err := h.ordersService.GetDetails(r.Context(), principal, orderID)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("GET /orders/{id} - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, ordersService.ErrAccessDenied):
			h.logger.Warn("GET /orders/{id} - Access denied: order_id=%d, user=%d", orderID, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /orders/{id} - Failed to get order: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /orders/{id} - Order retrieved: order_id=%d, user=%d", orderID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDetails(details))
}

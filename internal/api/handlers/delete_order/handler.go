package delete_order

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

// Handle DELETE /api/v1/orders/{orderId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	orderID, err := strconv.ParseInt(mux.Vars(r)["orderId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /orders/{id} - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	if err := h.ordersService.Delete(r.Context(), principal, orderID); err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("DELETE /orders/{id} - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, ordersService.ErrAccessDenied):
			h.logger.Warn("DELETE /orders/{id} - Access denied: order_id=%d, user=%d", orderID, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /orders/{id} - Failed to delete order: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /orders/{id} - Order deleted: order_id=%d by user=%d", orderID, principal.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

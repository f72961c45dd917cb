package get_orders

import (
	"net/http"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
)

const (
	msgInvalidFilter = "некорректные параметры фильтра"
	msgUnauthorized  = "требуется авторизация"
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

// Handle GET /api/v1/orders
// Query params: dateFrom, dateTo (YYYY-MM-DD), clientId (только для менеджера)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /orders - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	list, err := h.ordersService.ListForPrincipal(r.Context(), principal, filter)
	if err != nil {
		h.logger.Error("GET /orders - Failed to list orders: user=%d, error=%v", principal.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /orders - Orders retrieved: user=%d, count=%d", principal.ID, len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

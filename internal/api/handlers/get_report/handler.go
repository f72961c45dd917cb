package get_report

import (
	"errors"
	"net/http"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	reportsService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/reports"
)

const (
	msgInvalidPeriod = "некорректный период отчета"
	msgUnauthorized  = "требуется авторизация"
	msgAccessDenied  = "доступ запрещен"
)

type Handler struct {
	reportsService ReportsService
	logger         Logger
}

func NewHandler(reportsService ReportsService, logger Logger) *Handler {
	return &Handler{
		reportsService: reportsService,
		logger:         logger,
	}
}

// Handle GET /api/v1/reports/summary
// Query params: from, to (YYYY-MM-DD, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/summary - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	summary, err := h.reportsService.Summary(r.Context(), principal, filter)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrAccessDenied):
			h.logger.Warn("GET /reports/summary - Access denied: user=%d", principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reportsService.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/summary - Invalid period: user=%d", principal.ID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/summary - Failed to build report: user=%d, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/summary - Report built: user=%d, orders=%d", principal.ID, summary.TotalOrders)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSummary(summary))
}

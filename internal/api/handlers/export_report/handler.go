package export_report

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers/get_report"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/receipt"
	reportsService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/reports"
)

const (
	msgInvalidPeriod = "некорректный период отчета"
	msgInvalidFormat = "некорректный формат, ожидается pdf или xlsx"
	msgUnauthorized  = "требуется авторизация"
	msgAccessDenied  = "доступ запрещен"
)

const (
	formatPDF  = "pdf"
	formatXLSX = "xlsx"
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

// Handle GET /api/v1/reports/summary/export
// Query params: format (pdf|xlsx, по умолчанию pdf), from, to (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatPDF
	}
	if format != formatPDF && format != formatXLSX {
		h.logger.Warn("GET /reports/summary/export - Invalid format: %s", format)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	filter, err := get_report.ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/summary/export - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	summary, err := h.reportsService.Summary(r.Context(), principal, filter)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrAccessDenied):
			h.logger.Warn("GET /reports/summary/export - Access denied: user=%d", principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reportsService.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/summary/export - Invalid period: user=%d", principal.ID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/summary/export - Failed to build report: user=%d, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	var payload []byte
	var contentType string

	switch format {
	case formatPDF:
		payload, err = receipt.BuildReportPDF(summary)
		contentType = "application/pdf"
	case formatXLSX:
		payload, err = receipt.BuildReportXLSX(summary)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	if err != nil {
		h.logger.Error("GET /reports/summary/export - Failed to render %s: user=%d, error=%v", format, principal.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("report_%s.%s", time.Now().Format("2006-01-02"), format)

	h.logger.Info("GET /reports/summary/export - Report exported: user=%d, format=%s", principal.ID, format)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

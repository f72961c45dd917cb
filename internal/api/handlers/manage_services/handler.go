package manage_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	catalogService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/catalog"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidPrice     = "некорректная цена"
	msgUnauthorized     = "требуется авторизация"
	msgServiceNotFound  = "услуга не найдена"
	msgAccessDenied     = "доступ запрещен"
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Create POST /api/v1/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	service, err := ToDomainService(&req)
	if err != nil {
		h.logger.Warn("POST /services - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	created, err := h.catalogService.Create(r.Context(), principal, service)
	if err != nil {
		h.respondServiceError(w, "POST /services", principal, 0, err)
		return
	}

	h.logger.Info("POST /services - Service created: id=%d by user=%d", created.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainService(created))
}

// Update PUT /api/v1/services/{serviceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	update, err := ToDomainUpdate(&req)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	updated, err := h.catalogService.Update(r.Context(), principal, serviceID, update)
	if err != nil {
		h.respondServiceError(w, "PUT /services/{id}", principal, serviceID, err)
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: id=%d by user=%d", serviceID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainService(updated))
}

// Delete DELETE /api/v1/services/{serviceId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.catalogService.Delete(r.Context(), principal, serviceID); err != nil {
		h.respondServiceError(w, "DELETE /services/{id}", principal, serviceID, err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: id=%d by user=%d", serviceID, principal.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, principal domain.Principal, serviceID int64, err error) {
	switch {
	case errors.Is(err, catalogService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: user=%d", op, principal.ID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, catalogService.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: service_id=%d", op, serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, catalogService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Catalog service error: user=%d, error=%v", op, principal.ID, err)
		handlers.RespondInternalError(w)
	}
}

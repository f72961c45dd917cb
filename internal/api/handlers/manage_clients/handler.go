package manage_clients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	clientsService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/clients"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidBody     = "некорректное тело запроса"
	msgUnauthorized    = "требуется авторизация"
	msgClientNotFound  = "клиент не найден"
	msgEmailTaken      = "email уже зарегистрирован"
	msgAccessDenied    = "доступ запрещен"
)

type Handler struct {
	clientsService ClientsService
	logger         Logger
}

func NewHandler(clientsService ClientsService, logger Logger) *Handler {
	return &Handler{
		clientsService: clientsService,
		logger:         logger,
	}
}

// Get GET /api/v1/clients/{clientId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	client, err := h.clientsService.GetByID(r.Context(), principal, clientID)
	if err != nil {
		h.respondClientsError(w, "GET /clients/{id}", principal, clientID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainClient(client))
}

// ListCars GET /api/v1/clients/{clientId}/cars
func (h *Handler) ListCars(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/cars - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	cars, err := h.clientsService.ListCars(r.Context(), principal, clientID)
	if err != nil {
		h.respondClientsError(w, "GET /clients/{id}/cars", principal, clientID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainCars(cars))
}

// List GET /api/v1/clients
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	list, err := h.clientsService.List(r.Context(), principal)
	if err != nil {
		h.respondClientsError(w, "GET /clients", principal, 0, err)
		return
	}

	h.logger.Info("GET /clients - Clients retrieved: count=%d by user=%d", len(list), principal.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainClients(list))
}

// Update PUT /api/v1/clients/{clientId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	client := &domain.Client{
		ID:    clientID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	updated, err := h.clientsService.Update(r.Context(), principal, client)
	if err != nil {
		h.respondClientsError(w, "PUT /clients/{id}", principal, clientID, err)
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated: id=%d by user=%d", clientID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainClient(updated))
}

// Delete DELETE /api/v1/clients/{clientId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if err := h.clientsService.Delete(r.Context(), principal, clientID); err != nil {
		h.respondClientsError(w, "DELETE /clients/{id}", principal, clientID, err)
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted: id=%d by user=%d", clientID, principal.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondClientsError(w http.ResponseWriter, op string, principal domain.Principal, clientID int64, err error) {
	switch {
	case errors.Is(err, clientsService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: user=%d, client_id=%d", op, principal.ID, clientID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, clientsService.ErrClientNotFound):
		h.logger.Warn("%s - Client not found: client_id=%d", op, clientID)
		handlers.RespondNotFound(w, msgClientNotFound)

	case errors.Is(err, clientsService.ErrEmailTaken):
		h.logger.Warn("%s - Email taken: client_id=%d", op, clientID)
		handlers.RespondConflict(w, msgEmailTaken)

	case errors.Is(err, clientsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Clients service error: user=%d, error=%v", op, principal.ID, err)
		handlers.RespondInternalError(w)
	}
}

package manage_car_models

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/middleware"
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	carModelsService "github.com/KirillBalashovIS122/SkodaExpert/internal/service/carmodels"
)

const (
	msgInvalidModelID = "некорректный ID модели"
	msgInvalidBody    = "некорректное тело запроса"
	msgUnauthorized   = "требуется авторизация"
	msgModelNotFound  = "модель не найдена"
	msgAccessDenied   = "доступ запрещен"
)

// CarModelRequest HTTP request model
type CarModelRequest struct {
	Brand     string `json:"brand"`
	ModelName string `json:"modelName"`
}

// CarModelResponse HTTP response model
type CarModelResponse struct {
	ID        int64  `json:"id"`
	Brand     string `json:"brand"`
	ModelName string `json:"modelName"`
}

type Handler struct {
	carModelsService CarModelsService
	logger           Logger
}

func NewHandler(carModelsService CarModelsService, logger Logger) *Handler {
	return &Handler{
		carModelsService: carModelsService,
		logger:           logger,
	}
}

// Create POST /api/v1/car-models
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CarModelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /car-models - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	created, err := h.carModelsService.Create(r.Context(), principal, &domain.CarModel{
		Brand:     req.Brand,
		ModelName: req.ModelName,
	})
	if err != nil {
		h.respondServiceError(w, "POST /car-models", principal, 0, err)
		return
	}

	h.logger.Info("POST /car-models - Model created: id=%d by user=%d", created.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, fromDomain(created))
}

// Update PUT /api/v1/car-models/{modelId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	modelID, err := strconv.ParseInt(mux.Vars(r)["modelId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /car-models/{id} - Invalid model ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidModelID)
		return
	}

	var req CarModelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /car-models/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.carModelsService.Update(r.Context(), principal, &domain.CarModel{
		ID:        modelID,
		Brand:     req.Brand,
		ModelName: req.ModelName,
	})
	if err != nil {
		h.respondServiceError(w, "PUT /car-models/{id}", principal, modelID, err)
		return
	}

	h.logger.Info("PUT /car-models/{id} - Model updated: id=%d by user=%d", modelID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(updated))
}

// Delete DELETE /api/v1/car-models/{modelId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	modelID, err := strconv.ParseInt(mux.Vars(r)["modelId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /car-models/{id} - Invalid model ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidModelID)
		return
	}

	if err := h.carModelsService.Delete(r.Context(), principal, modelID); err != nil {
		h.respondServiceError(w, "DELETE /car-models/{id}", principal, modelID, err)
		return
	}

	h.logger.Info("DELETE /car-models/{id} - Model deleted: id=%d by user=%d", modelID, principal.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func fromDomain(model *domain.CarModel) *CarModelResponse {
	return &CarModelResponse{
		ID:        model.ID,
		Brand:     model.Brand,
		ModelName: model.ModelName,
	}
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, principal domain.Principal, modelID int64, err error) {
	switch {
	case errors.Is(err, carModelsService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: user=%d", op, principal.ID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, carModelsService.ErrCarModelNotFound):
		h.logger.Warn("%s - Model not found: model_id=%d", op, modelID)
		handlers.RespondNotFound(w, msgModelNotFound)

	case errors.Is(err, carModelsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Car models service error: user=%d, error=%v", op, principal.ID, err)
		handlers.RespondInternalError(w)
	}
}

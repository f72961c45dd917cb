package get_car_models

import (
	"net/http"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/api/handlers"
)

// CarModelItem элемент справочника моделей
type CarModelItem struct {
	ID        int64  `json:"id"`
	Brand     string `json:"brand"`
	ModelName string `json:"modelName"`
}

// CarModelListResponse HTTP response model
type CarModelListResponse struct {
	Models []CarModelItem `json:"models"`
	Total  int            `json:"total"`
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

// Handle GET /api/v1/car-models
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.carModelsService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /car-models - Failed to list models: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	models := make([]CarModelItem, len(list))
	for i, model := range list {
		models[i] = CarModelItem{
			ID:        model.ID,
			Brand:     model.Brand,
			ModelName: model.ModelName,
		}
	}

	h.logger.Info("GET /car-models - Models retrieved: count=%d", len(models))
	handlers.RespondJSON(w, http.StatusOK, &CarModelListResponse{Models: models, Total: len(models)})
}

package get_services

import (
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// ServiceItem элемент каталога услуг
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           string  `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceItem `json:"services"`
	Total    int           `json:"total"`
}

// FromDomainList конвертирует каталог услуг в HTTP response
func FromDomainList(list []*domain.Service) *ServiceListResponse {
	services := make([]ServiceItem, len(list))
	for i, service := range list {
		services[i] = ServiceItem{
			ID:              service.ID,
			Name:            service.Name,
			Description:     service.Description,
			Price:           service.Price.StringFixed(2),
			DurationMinutes: service.DurationMinutes,
		}
	}

	return &ServiceListResponse{Services: services, Total: len(services)}
}

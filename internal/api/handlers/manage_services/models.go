package manage_services

import (
	"github.com/shopspring/decimal"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           string  `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// UpdateServiceRequest HTTP request model частичного обновления
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Price           *string `json:"price,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           string  `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ToDomainService конвертирует запрос создания в доменную услугу
func ToDomainService(req *CreateServiceRequest) (*domain.Service, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, err
	}

	return &domain.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           price,
		DurationMinutes: req.DurationMinutes,
	}, nil
}

// ToDomainUpdate конвертирует запрос частичного обновления
func ToDomainUpdate(req *UpdateServiceRequest) (domain.ServiceUpdate, error) {
	update := domain.ServiceUpdate{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
	}

	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return update, err
		}
		update.Price = &price
	}

	return update, nil
}

// FromDomainService конвертирует услугу в HTTP response
func FromDomainService(service *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              service.ID,
		Name:            service.Name,
		Description:     service.Description,
		Price:           service.Price.StringFixed(2),
		DurationMinutes: service.DurationMinutes,
	}
}

package get_order

import (
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// OrderService услуга в составе заказа
type OrderService struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`

	ClientID    int64  `json:"clientId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`

	CarBrand        string `json:"carBrand"`
	CarModelName    string `json:"carModelName"`
	CarYear         int    `json:"carYear"`
	CarVIN          string `json:"carVin"`
	CarLicensePlate string `json:"carLicensePlate"`

	Services []OrderService `json:"services"`
	Total    string         `json:"total"`
}

// FromDomainDetails конвертирует заказ в HTTP response
func FromDomainDetails(details *domain.OrderDetails) *OrderResponse {
	services := make([]OrderService, len(details.Services))
	for i, service := range details.Services {
		services[i] = OrderService{
			ID:              service.ID,
			Name:            service.Name,
			Price:           service.Price.StringFixed(2),
			DurationMinutes: service.DurationMinutes,
		}
	}

	return &OrderResponse{
		ID:              details.ID,
		Date:            details.AppointmentDate.Format(domain.DateFormat),
		StartTime:       details.StartTime.String(),
		EndTime:         details.EndTime.String(),
		CreatedAt:       details.CreatedAt.Format("2006-01-02 15:04:05"),
		ClientID:        details.ClientID,
		ClientName:      details.ClientName,
		ClientPhone:     details.ClientPhone,
		CarBrand:        details.CarBrand,
		CarModelName:    details.CarModelName,
		CarYear:         details.CarYear,
		CarVIN:          details.CarVIN,
		CarLicensePlate: details.CarLicensePlate,
		Services:        services,
		Total:           details.Total().StringFixed(2),
	}
}

package get_orders

import (
	"net/url"
	"strconv"
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// OrderItem элемент списка заказов
type OrderItem struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	ClientName      string `json:"clientName"`
	CarBrand        string `json:"carBrand"`
	CarModelName    string `json:"carModelName"`
	CarLicensePlate string `json:"carLicensePlate"`

	ServiceNames []string `json:"serviceNames"`
	Total        string   `json:"total"`
}

// OrderListResponse HTTP response model
type OrderListResponse struct {
	Orders []OrderItem `json:"orders"`
	Total  int         `json:"total"`
}

// FromDomainList конвертирует список заказов в HTTP response
func FromDomainList(list []*domain.OrderDetails) *OrderListResponse {
	orders := make([]OrderItem, len(list))
	for i, details := range list {
		names := make([]string, len(details.Services))
		for j, service := range details.Services {
			names[j] = service.Name
		}

		orders[i] = OrderItem{
			ID:              details.ID,
			Date:            details.AppointmentDate.Format(domain.DateFormat),
			StartTime:       details.StartTime.String(),
			EndTime:         details.EndTime.String(),
			ClientName:      details.ClientName,
			CarBrand:        details.CarBrand,
			CarModelName:    details.CarModelName,
			CarLicensePlate: details.CarLicensePlate,
			ServiceNames:    names,
			Total:           details.Total().StringFixed(2),
		}
	}

	return &OrderListResponse{Orders: orders, Total: len(orders)}
}

// ParseFilter разбирает фильтр списка из query параметров
func ParseFilter(query url.Values) (domain.OrdersFilter, error) {
	var filter domain.OrdersFilter

	if dateFrom := query.Get("dateFrom"); dateFrom != "" {
		parsed, err := time.Parse(domain.DateFormat, dateFrom)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &parsed
	}

	if dateTo := query.Get("dateTo"); dateTo != "" {
		parsed, err := time.Parse(domain.DateFormat, dateTo)
		if err != nil {
			return filter, err
		}
		filter.DateTo = &parsed
	}

	// Фильтр по клиенту применяется только для менеджера,
	// остальным роль подставляет свои ограничения
	if clientID := query.Get("clientId"); clientID != "" {
		parsed, err := strconv.ParseInt(clientID, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.ClientID = &parsed
	}

	return filter, nil
}

package domain

import (
	"github.com/shopspring/decimal"
)

// Service услуга автосервиса с фиксированной ценой и длительностью
type Service struct {
	ID              int64
	Name            string
	Description     *string
	Price           decimal.Decimal
	DurationMinutes int
}

// TotalDuration возвращает суммарную длительность набора услуг в минутах
func TotalDuration(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}

// TotalPrice возвращает суммарную стоимость набора услуг
func TotalPrice(services []Service) decimal.Decimal {
	total := decimal.Zero
	for _, s := range services {
		total = total.Add(s.Price)
	}
	return total
}

// ServiceUpdate частичное обновление услуги менеджером
type ServiceUpdate struct {
	Name            *string
	Description     *string
	Price           *decimal.Decimal
	DurationMinutes *int
}

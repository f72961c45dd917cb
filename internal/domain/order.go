package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

// Order подтвержденная запись, занимающая интервал времени,
// равный суммарной длительности её услуг
type Order struct {
	ID              int64
	ClientID        int64
	CarID           int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	CreatedAt       time.Time

	// Услуги заказа; загружаются вместе с заказом, после создания не меняются
	Services []Service
}

// Total возвращает суммарную стоимость услуг заказа
func (o *Order) Total() decimal.Decimal {
	return TotalPrice(o.Services)
}

// OrderDetails заказ с данными клиента и автомобиля для квитанций и списков
type OrderDetails struct {
	Order

	ClientName  string
	ClientPhone string

	CarBrand        string
	CarModelName    string
	CarYear         int
	CarVIN          string
	CarLicensePlate string
}

// OrdersFilter фильтр выборки заказов
type OrdersFilter struct {
	ClientID   *int64     // Заказы конкретного клиента
	EmployeeID *int64     // Заказы, закрепленные за сотрудником через задачи
	DateFrom   *time.Time // Начало периода по дате записи (включительно)
	DateTo     *time.Time // Конец периода по дате записи (включительно)
}

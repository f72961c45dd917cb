package create_order

import (
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

// NewCar данные нового автомобиля, регистрируемого при записи
type NewCar struct {
	CarModelID   int64
	Year         int
	VIN          string
	LicensePlate string
}

// Request модель запроса на создание записи
// Указывается либо CarID существующего автомобиля клиента, либо NewCar
type Request struct {
	ClientID        int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	ServiceIDs      []int64

	CarID  *int64
	NewCar *NewCar
}

// Response модель ответа с созданным заказом и задачей механика
type Response struct {
	Order *domain.Order
	Task  *domain.Task
}

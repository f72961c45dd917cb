package domain

import "time"

// CarModel марка и модель автомобиля из каталога автосервиса
type CarModel struct {
	ID        int64
	Brand     string
	ModelName string
}

// Car автомобиль клиента, зарегистрированный при записи
type Car struct {
	ID           int64
	ClientID     int64
	CarModelID   int64
	Year         int
	VIN          string
	LicensePlate string
	CreatedAt    time.Time
}

package manage_clients

import (
	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// UpdateClientRequest запрос на обновление контактных данных клиента
type UpdateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ClientResponse клиент в ответе API
type ClientResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

// ClientListResponse список клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// CarResponse автомобиль клиента в ответе API
type CarResponse struct {
	ID           int64  `json:"id"`
	CarModelID   int64  `json:"carModelId"`
	Year         int    `json:"year"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"licensePlate"`
}

// CarListResponse список автомобилей клиента
type CarListResponse struct {
	Cars  []CarResponse `json:"cars"`
	Total int           `json:"total"`
}

// FromDomainClient конвертирует доменного клиента в DTO ответа
func FromDomainClient(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		CreatedAt: client.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// FromDomainClients конвертирует список клиентов в DTO ответа
func FromDomainClients(clients []*domain.Client) ClientListResponse {
	resp := ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
		Total:   len(clients),
	}
	for _, client := range clients {
		resp.Clients = append(resp.Clients, FromDomainClient(client))
	}

	return resp
}

// FromDomainCars конвертирует список автомобилей в DTO ответа
func FromDomainCars(cars []*domain.Car) CarListResponse {
	resp := CarListResponse{
		Cars:  make([]CarResponse, 0, len(cars)),
		Total: len(cars),
	}
	for _, car := range cars {
		resp.Cars = append(resp.Cars, CarResponse{
			ID:           car.ID,
			CarModelID:   car.CarModelID,
			Year:         car.Year,
			VIN:          car.VIN,
			LicensePlate: car.LicensePlate,
		})
	}

	return resp
}

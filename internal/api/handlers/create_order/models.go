package create_order

import (
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	createOrder "github.com/KirillBalashovIS122/SkodaExpert/internal/usecase/create_order"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

// NewCarRequest данные нового автомобиля в запросе
type NewCarRequest struct {
	CarModelID   int64  `json:"carModelId"`
	Year         int    `json:"year"`
	VIN          string `json:"vin"`
	LicensePlate string `json:"licensePlate"`
}

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	ServiceIDs []int64 `json:"serviceIds"`

	CarID  *int64         `json:"carId,omitempty"`
	NewCar *NewCarRequest `json:"newCar,omitempty"`
}

// CreateOrderResponse HTTP response model
type CreateOrderResponse struct {
	OrderID    int64  `json:"orderId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Total      string `json:"total"`
	TaskID     int64  `json:"taskId"`
	EmployeeID int64  `json:"employeeId"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func ToUseCaseRequest(clientID int64, req *CreateOrderRequest) (*createOrder.Request, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	useCaseReq := &createOrder.Request{
		ClientID:        clientID,
		AppointmentDate: date,
		StartTime:       types.TimeString(req.StartTime),
		ServiceIDs:      req.ServiceIDs,
		CarID:           req.CarID,
	}

	if req.NewCar != nil {
		useCaseReq.NewCar = &createOrder.NewCar{
			CarModelID:   req.NewCar.CarModelID,
			Year:         req.NewCar.Year,
			VIN:          req.NewCar.VIN,
			LicensePlate: req.NewCar.LicensePlate,
		}
	}

	return useCaseReq, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *CreateOrderResponse {
	return &CreateOrderResponse{
		OrderID:    resp.Order.ID,
		Date:       resp.Order.AppointmentDate.Format(domain.DateFormat),
		StartTime:  resp.Order.StartTime.String(),
		EndTime:    resp.Order.EndTime.String(),
		Total:      resp.Order.Total().StringFixed(2),
		TaskID:     resp.Task.ID,
		EmployeeID: resp.Task.EmployeeID,
	}
}

package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	getAvailableSlots "github.com/KirillBalashovIS122/SkodaExpert/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string `json:"date"`
	DurationMinutes int    `json:"durationMinutes"`
	Slots           []Slot `json:"slots"`
}

// Slot модель слота записи
type Slot struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ParseServiceIDs разбирает список ID услуг из query параметра
func ParseServiceIDs(serviceIDsStr string) ([]int64, error) {
	parts := strings.Split(serviceIDsStr, ",")
	serviceIDs := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		serviceIDs = append(serviceIDs, id)
	}
	return serviceIDs, nil
}

// ToUseCaseRequest создает запрос use case из разобранных параметров
func ToUseCaseRequest(clientID int64, date time.Time, serviceIDs []int64) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ClientID:   clientID,
		Date:       date,
		ServiceIDs: serviceIDs,
	}
}

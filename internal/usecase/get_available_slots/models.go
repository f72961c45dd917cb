package get_available_slots

import (
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// Request модель запроса на получение слотов записи
type Request struct {
	ClientID   int64     // ID клиента (для логирования, не влияет на результат)
	Date       time.Time // Дата записи (без времени)
	ServiceIDs []int64   // Выбранные услуги, определяют длительность визита
}

// Response модель ответа со списком слотов на день
type Response struct {
	Date            time.Time     // Дата, на которую запрашивались слоты
	DurationMinutes int           // Суммарная длительность выбранных услуг
	Slots           []domain.Slot // Все слоты дня с признаком доступности
}

package get_available_slots

import (
	"time"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/types"
)

// generateTimeSlots генерирует все стартовые времена слотов на день
// с шагом расписания от открытия до закрытия.
// Для сегодняшней даты уже прошедшие слоты отбрасываются,
// для прошедшей даты список пуст
func generateTimeSlots(
	schedule domain.Schedule,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	allSlots := make([]types.TimeString, 0)
	currentSlot := schedule.OpenTime

	// Слот попадает в список, только если шаг целиком помещается до закрытия
	for currentSlot.IsBefore(schedule.CloseTime) {
		next, err := currentSlot.AddMinutes(schedule.SlotGranularityMinutes)
		if err != nil || next.IsAfter(schedule.CloseTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot = next
	}

	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	currentTime := types.NewTimeString(now)
	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(currentTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// markAvailability проставляет признак доступности для каждого слота.
// Слот доступен, если интервал [start, start+duration) не пересекается
// ни с одним существующим заказом дня
func markAvailability(
	slots []types.TimeString,
	durationMinutes int,
	orders []*domain.Order,
) []domain.Slot {
	result := make([]domain.Slot, len(slots))

	for i, slotStart := range slots {
		result[i] = domain.Slot{
			StartTime: slotStart,
			Available: !overlapsAnyOrder(slotStart, durationMinutes, orders),
		}
	}

	return result
}

// overlapsAnyOrder проверяет пересечение кандидата с заказами дня.
// Интервалы полуоткрытые: заказ, заканчивающийся ровно в начале кандидата
// (и наоборот), пересечением НЕ считается
//
// Примеры:
// - Кандидат 11:30-12:00, заказ 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Кандидат 11:30-12:00, заказ 11:00-11:30 → НЕТ пересечения (граничат)
// - Кандидат 11:30-12:00, заказ 12:00-12:30 → НЕТ пересечения (граничат)
func overlapsAnyOrder(slotStart types.TimeString, durationMinutes int, orders []*domain.Order) bool {
	slotEnd, err := slotStart.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	for _, order := range orders {
		// Пересечение есть, только если начало заказа СТРОГО раньше конца
		// кандидата И конец заказа СТРОГО позже начала кандидата
		if order.StartTime.IsBefore(slotEnd) && order.EndTime.IsAfter(slotStart) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

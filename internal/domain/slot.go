package domain

import "github.com/KirillBalashovIS122/SkodaExpert/pkg/types"

// Slot кандидат на время начала записи в рабочие часы
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// Schedule рабочие часы и шаг слотов автосервиса
type Schedule struct {
	OpenTime               types.TimeString
	CloseTime              types.TimeString
	SlotGranularityMinutes int
}

// DefaultSchedule возвращает расписание по умолчанию (09:00-17:00, шаг 30 минут)
func DefaultSchedule() Schedule {
	return Schedule{
		OpenTime:               types.TimeString(DefaultOpenTime),
		CloseTime:              types.TimeString(DefaultCloseTime),
		SlotGranularityMinutes: DefaultSlotGranularityMinutes,
	}
}

package domain

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Расписание автосервиса по умолчанию
const (
	DefaultOpenTime               = "09:00"
	DefaultCloseTime              = "17:00"
	DefaultSlotGranularityMinutes = 30
)

// Константы бизнес-валидации
const (
	VINLength             = 17
	MaxLicensePlateLength = 12
	MinServiceDuration    = 5
	MaxServiceDuration    = 480 // 8 hours
	MaxDescriptionLength  = 1000
)

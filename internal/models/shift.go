package models

// Shift — рабочая смена за конкретную дату.
// Дата уникальна среди всех смен; RealHours вычисляются при создании
// и хранятся избыточно для отображения.
// Shift is a work shift for a specific date.
// The date is unique across all shifts; RealHours are computed at creation
// and stored redundantly for display.
type Shift struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`      // ГГГГ-ММ-ДД
	StartTime string  `json:"startTime"` // ЧЧ:ММ, 24-часовой формат
	EndTime   string  `json:"endTime"`
	RealHours float64 `json:"realHours"`
}

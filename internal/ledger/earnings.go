// Файл: internal/ledger/earnings.go
package ledger

import (
	"math"

	"ShiftTracker/internal/constants"
	"ShiftTracker/internal/models"
)

// EarningsSummary — сводка по сменам и расчётному заработку.
type EarningsSummary struct {
	ShiftCount        int     `json:"shift_count"`
	TotalHours        float64 `json:"total_hours"`
	HourlyRate        float64 `json:"hourly_rate"`
	EstimatedEarnings float64 `json:"estimated_earnings"`
}

// EffectiveHours возвращает учётные часы смены.
// Ровно 9 отработанных часов учитываются как 8 (неоплачиваемый перерыв),
// остальные значения округляются вниз до целого часа.
// Выходной (00:00–00:00) даёт 0 часов.
func EffectiveHours(shift models.Shift) float64 {
	if shift.RealHours == constants.SPECIAL_SHIFT_RAW_HOURS {
		return constants.SPECIAL_SHIFT_EFFECTIVE_HOURS
	}
	return math.Floor(shift.RealHours)
}

// TotalHours суммирует учётные часы по всем сменам.
func TotalHours(shifts []models.Shift) float64 {
	total := 0.0
	for _, shift := range shifts {
		total += EffectiveHours(shift)
	}
	return total
}

// EstimatedEarnings возвращает расчётный заработок по почасовой ставке.
func EstimatedEarnings(shifts []models.Shift, hourlyRate float64) float64 {
	return TotalHours(shifts) * hourlyRate
}

// SummarizeEarnings собирает сводку по списку смен.
func SummarizeEarnings(shifts []models.Shift, hourlyRate float64) EarningsSummary {
	totalHours := TotalHours(shifts)
	return EarningsSummary{
		ShiftCount:        len(shifts),
		TotalHours:        totalHours,
		HourlyRate:        hourlyRate,
		EstimatedEarnings: totalHours * hourlyRate,
	}
}

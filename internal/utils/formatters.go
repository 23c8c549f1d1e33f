// Файл: internal/utils/formatters.go

package utils

import (
	"fmt"

	"ShiftTracker/internal/constants"
)

// FormatMoney форматирует денежную сумму для отображения.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// FormatHours форматирует количество часов для отображения.
func FormatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%d ч", int(hours))
	}
	return fmt.Sprintf("%.2f ч", hours)
}

// FormatShiftTime возвращает отображаемое время смены.
// Пара 00:00–00:00 отображается как выходной.
func FormatShiftTime(startTime, endTime string) string {
	if startTime == constants.SENTINEL_DAY_OFF && endTime == constants.SENTINEL_DAY_OFF {
		return "Выходной"
	}
	return fmt.Sprintf("%s - %s", startTime, endTime)
}

// PaymentMethodDisplay возвращает отображаемое название способа оплаты.
func PaymentMethodDisplay(method string) string {
	if name, ok := constants.PaymentMethodDisplayMap[method]; ok {
		return name
	}
	return method
}

// StatusDisplay возвращает отображаемое название статуса доставки.
func StatusDisplay(status string) string {
	if name, ok := constants.StatusDisplayMap[status]; ok {
		return name
	}
	return status
}

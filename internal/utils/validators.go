package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clockTimeRegex (не экспортируется) используется внутри ValidateClockTime.
// clockTimeRegex (not exported) is used inside ValidateClockTime.
var clockTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ValidateISODate проверяет строку даты в формате ГГГГ-ММ-ДД.
// Возвращает time.Time и ошибку.
// ValidateISODate checks a date string in YYYY-MM-DD format.
// Returns time.Time and an error.
func ValidateISODate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("строка даты пуста")
	}
	parsedDate, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("некорректный формат даты: '%s'. Ожидается ГГГГ-ММ-ДД", dateStr)
	}
	return parsedDate, nil
}

// ValidateClockTime проверяет время в 24-часовом формате ЧЧ:ММ.
func ValidateClockTime(timeStr string) error {
	if !clockTimeRegex.MatchString(strings.TrimSpace(timeStr)) {
		return fmt.Errorf("некорректный формат времени: '%s'. Ожидается ЧЧ:ММ", timeStr)
	}
	return nil
}

// minutesSinceMidnight переводит "ЧЧ:ММ" в минуты от полуночи.
func minutesSinceMidnight(timeStr string) (int, error) {
	if err := ValidateClockTime(timeStr); err != nil {
		return 0, err
	}
	parts := strings.Split(strings.TrimSpace(timeStr), ":")
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes, nil
}

// CalculateRealHours вычисляет отработанные часы между началом и концом смены.
// Если конец раньше начала, смена считается ночной и переходит через полночь.
// Пара 00:00–00:00 (выходной) даёт 0 часов. Результат округляется до сотых.
// CalculateRealHours computes worked hours between shift start and end.
// If the end is before the start, the shift is overnight and wraps past midnight.
// The 00:00–00:00 pair (day off) yields 0 hours. Rounded to two decimals.
func CalculateRealHours(startTime, endTime string) (float64, error) {
	start, err := minutesSinceMidnight(startTime)
	if err != nil {
		return 0, err
	}
	end, err := minutesSinceMidnight(endTime)
	if err != nil {
		return 0, err
	}
	if end < start {
		end += 24 * 60 // Ночная смена / Overnight shift
	}
	hours := float64(end-start) / 60.0
	return math.Round(hours*100) / 100, nil
}

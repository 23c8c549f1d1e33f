// Файл: internal/reports/excel.go
package reports

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2" // Для генерации Excel / For Excel generation

	"ShiftTracker/internal/ledger"
	"ShiftTracker/internal/models"
	"ShiftTracker/internal/utils"
)

// BuildWorkbook формирует Excel-отчёт: листы по сменам, доставкам,
// платежам и сводный лист.
// BuildWorkbook builds the Excel report: sheets for shifts, deliveries,
// payments and a summary sheet.
func BuildWorkbook(shifts []models.Shift, deliveries []models.Delivery, payments []models.Payment, hourlyRate float64) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeShiftsSheet(f, shifts); err != nil {
		return nil, err
	}
	if err := writeDeliveriesSheet(f, deliveries); err != nil {
		return nil, err
	}
	if err := writePaymentsSheet(f, payments); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, shifts, deliveries, payments, hourlyRate); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1") // Удаляем стандартный лист / Delete default sheet
	return f, nil
}

// ReportFileName возвращает имя файла отчёта с отметкой времени.
func ReportFileName() string {
	return fmt.Sprintf("tracker_report_%s.xlsx", time.Now().Format("20060102_150405"))
}

func writeHeaders(f *excelize.File, sheetName string, headers []string) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
}

func writeShiftsSheet(f *excelize.File, shifts []models.Shift) error {
	sheetName := "Смены"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("ошибка создания листа '%s': %v", sheetName, err)
	}

	writeHeaders(f, sheetName, []string{"Дата", "Время смены", "Отработано часов", "Учётные часы"})

	rowIndex := 2
	for _, shift := range shifts {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), shift.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), utils.FormatShiftTime(shift.StartTime, shift.EndTime))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), shift.RealHours)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), ledger.EffectiveHours(shift))
		rowIndex++
	}
	return nil
}

func writeDeliveriesSheet(f *excelize.File, deliveries []models.Delivery) error {
	sheetName := "Доставки"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("ошибка создания листа '%s': %v", sheetName, err)
	}

	writeHeaders(f, sheetName, []string{"Номер заказа", "Дата", "Сумма", "Способ оплаты", "Статус", "Оплачен"})

	rowIndex := 2
	for _, d := range deliveries {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), d.OrderNo)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), d.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), d.Price)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), utils.PaymentMethodDisplay(d.PaymentMethod))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), utils.StatusDisplay(d.Status))
		if d.IsPaid {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), "Да")
		} else {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), "Нет")
		}
		rowIndex++
	}
	return nil
}

func writePaymentsSheet(f *excelize.File, payments []models.Payment) error {
	sheetName := "Платежи"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("ошибка создания листа '%s': %v", sheetName, err)
	}

	writeHeaders(f, sheetName, []string{"Сумма", "Способ оплаты", "Время"})

	rowIndex := 2
	for _, p := range payments {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), p.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), utils.PaymentMethodDisplay(p.Method))
		// Отметка времени хранится строкой RFC3339, форматируем для отчёта
		if ts, err := time.Parse(time.RFC3339, p.Timestamp); err == nil {
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), ts.Format("02.01.2006 15:04"))
		} else {
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), p.Timestamp)
		}
		rowIndex++
	}
	return nil
}

func writeSummarySheet(f *excelize.File, shifts []models.Shift, deliveries []models.Delivery, payments []models.Payment, hourlyRate float64) error {
	sheetName := "Сводка"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("ошибка создания листа '%s': %v", sheetName, err)
	}
	f.SetActiveSheet(index)

	earnings := ledger.SummarizeEarnings(shifts, hourlyRate)

	totalOwed := 0.0
	for _, d := range deliveries {
		totalOwed += d.Price
	}
	totalPaid := 0.0
	for _, p := range payments {
		totalPaid += p.Amount
	}
	remaining := totalOwed - totalPaid
	if remaining < 0 {
		remaining = 0
	}

	rows := []struct {
		label string
		value any
	}{
		{"Всего смен", earnings.ShiftCount},
		{"Учётные часы", earnings.TotalHours},
		{"Почасовая ставка", earnings.HourlyRate},
		{"Расчётный заработок", earnings.EstimatedEarnings},
		{"Всего доставок", len(deliveries)},
		{"Задолженность по доставкам", totalOwed},
		{"Оплачено", totalPaid},
		{"Остаток", remaining},
		{"Дата отчёта", time.Now().Format("02.01.2006 15:04")},
	}
	for i, row := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), row.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), row.value)
	}
	return nil
}

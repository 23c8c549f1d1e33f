// Файл: internal/ledger/shift_ledger.go
package ledger

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ShiftTracker/internal/constants"
	"ShiftTracker/internal/models"
	"ShiftTracker/internal/notify"
	"ShiftTracker/internal/store"
	"ShiftTracker/internal/utils"
)

// ShiftLedger владеет коллекцией рабочих смен.
// Правило вставки: не более одной смены на календарную дату.
// Записи никогда не изменяются на месте — только добавление и удаление.
// ShiftLedger owns the collection of work shifts.
// Insertion rule: at most one shift per calendar date.
// Records are never mutated in place — only appended and deleted.
type ShiftLedger struct {
	store    store.Store
	notifier notify.Notifier
	newID    func() string
}

// NewShiftLedger создаёт журнал смен поверх переданного хранилища.
func NewShiftLedger(st store.Store, notifier notify.Notifier) *ShiftLedger {
	return &ShiftLedger{
		store:    st,
		notifier: notifier,
		newID:    uuid.NewString,
	}
}

// Shifts возвращает все смены в порядке добавления.
func (l *ShiftLedger) Shifts() ([]models.Shift, error) {
	raw, ok, err := l.store.Get(constants.KEY_SHIFTS)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения смен из хранилища: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var shifts []models.Shift
	if err := json.Unmarshal(raw, &shifts); err != nil {
		log.Printf("ShiftLedger.Shifts: ошибка десериализации смен: %v", err)
		return nil, fmt.Errorf("ошибка десериализации смен: %w", err)
	}
	return shifts, nil
}

// AddShift добавляет смену за указанную дату.
// Отклоняет добавление, если смена за эту дату уже записана (ErrDuplicateDate).
// Отработанные часы вычисляются здесь же и сохраняются вместе со сменой.
func (l *ShiftLedger) AddShift(date, startTime, endTime string) (models.Shift, error) {
	if _, err := utils.ValidateISODate(date); err != nil {
		l.notifier.Error("Выберите корректную дату")
		return models.Shift{}, err
	}
	realHours, err := utils.CalculateRealHours(startTime, endTime)
	if err != nil {
		l.notifier.Error("Выберите корректное время смены")
		return models.Shift{}, err
	}

	shifts, err := l.Shifts()
	if err != nil {
		return models.Shift{}, err
	}
	for _, existing := range shifts {
		if existing.Date == date {
			l.notifier.Error(fmt.Sprintf("Смена за %s уже существует!", date))
			return models.Shift{}, ErrDuplicateDate
		}
	}

	shift := models.Shift{
		ID:        l.newID(),
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		RealHours: realHours,
	}
	shifts = append(shifts, shift)

	if err := l.store.Set(constants.KEY_SHIFTS, shifts); err != nil {
		return models.Shift{}, fmt.Errorf("ошибка сохранения смен: %w", err)
	}

	log.Printf("Смена #%s за %s добавлена (%.2f ч).", shift.ID, shift.Date, shift.RealHours)
	l.notifier.Success("Смена добавлена!")
	return shift, nil
}

// DeleteShift удаляет смену по идентификатору.
// Отсутствующий идентификатор — тихий no-op без уведомления.
func (l *ShiftLedger) DeleteShift(id string) error {
	shifts, err := l.Shifts()
	if err != nil {
		return err
	}

	filtered := shifts[:0:0]
	found := false
	for _, shift := range shifts {
		if shift.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, shift)
	}
	if !found {
		log.Printf("ShiftLedger.DeleteShift: смена с id '%s' не найдена, пропуск.", id)
		return nil
	}

	if err := l.store.Set(constants.KEY_SHIFTS, filtered); err != nil {
		return fmt.Errorf("ошибка сохранения смен: %w", err)
	}
	l.notifier.Success("Смена удалена!")
	return nil
}

// ClearAll безвозвратно удаляет все смены вместе с ключом хранилища.
// Вызывающая сторона обязана провести подтверждение с задержкой.
func (l *ShiftLedger) ClearAll() error {
	if err := l.store.Remove(constants.KEY_SHIFTS); err != nil {
		return fmt.Errorf("ошибка удаления смен: %w", err)
	}
	log.Printf("Все смены удалены (%s).", time.Now().Format("2006-01-02 15:04:05"))
	l.notifier.Success("Все смены удалены!")
	return nil
}

// Файл: internal/ledger/checkout.go
package ledger

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ShiftTracker/internal/constants"
	"ShiftTracker/internal/models"
	"ShiftTracker/internal/notify"
	"ShiftTracker/internal/store"
	"ShiftTracker/internal/utils"
)

// Checkout ведёт сверку платежей с задолженностью по доставкам.
// Задолженность — сумма цен всех доставок (у оплаченных цена 0).
// Остаток = задолженность − сумма платежей, не ниже нуля.
// Если записанные платежи превышают задолженность (например, доставки были
// удалены после записи платежей), история платежей сбрасывается полностью.
// Это жёсткое правило сверки, а не предупреждение.
// Checkout reconciles payments against the delivery debt.
// Debt is the sum of all delivery prices (paid ones carry 0).
// Remaining = debt − payments total, floored at zero.
// If recorded payments exceed the debt (e.g. deliveries were deleted after
// payments were recorded), the payment history is wiped entirely.
// This is a hard reconciliation rule, not a warning.
type Checkout struct {
	mu       sync.Mutex
	store    store.Store
	notifier notify.Notifier
	now      func() time.Time
	newID    func() string

	totalOwed float64
	remaining float64
	payments  []models.Payment
}

// CheckoutSummary — сводка сверки для отображения.
type CheckoutSummary struct {
	TotalOwed float64 `json:"total_owed"`
	TotalPaid float64 `json:"total_paid"`
	Remaining float64 `json:"remaining"`
}

// NewCheckout создаёт сверку поверх переданного хранилища.
func NewCheckout(st store.Store, notifier notify.Notifier) *Checkout {
	return &Checkout{
		store:    st,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Load пересчитывает задолженность и остаток из текущего состояния хранилища.
func (c *Checkout) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// load выполняет пересчёт. Вызывается только под мьютексом.
func (c *Checkout) load() error {
	var deliveries []models.Delivery
	raw, ok, err := c.store.Get(constants.KEY_DELIVERIES)
	if err != nil {
		return fmt.Errorf("ошибка чтения доставок из хранилища: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &deliveries); err != nil {
			return fmt.Errorf("ошибка десериализации доставок: %w", err)
		}
	}

	totalOwed := 0.0
	for _, d := range deliveries {
		totalOwed += d.Price
	}

	var payments []models.Payment
	raw, ok, err = c.store.Get(constants.KEY_PAYMENTS)
	if err != nil {
		return fmt.Errorf("ошибка чтения платежей из хранилища: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &payments); err != nil {
			return fmt.Errorf("ошибка десериализации платежей: %w", err)
		}
	}

	totalPaid := 0.0
	for _, p := range payments {
		totalPaid += p.Amount
	}

	if totalPaid > totalOwed {
		// Переплата после удаления доставок: сбрасываем историю платежей.
		log.Printf("Checkout.load: платежи (%.2f) превышают задолженность (%.2f), история платежей сброшена.", totalPaid, totalOwed)
		payments = nil
		totalPaid = 0
		if err := c.store.Set(constants.KEY_PAYMENTS, []models.Payment{}); err != nil {
			return fmt.Errorf("ошибка сброса платежей: %w", err)
		}
	}

	c.totalOwed = totalOwed
	c.payments = payments
	c.remaining = totalOwed - totalPaid
	if c.remaining < 0 {
		c.remaining = 0
	}
	return nil
}

// Payments возвращает историю платежей в порядке добавления.
func (c *Checkout) Payments() ([]models.Payment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, err
	}
	out := make([]models.Payment, len(c.payments))
	copy(out, c.payments)
	return out, nil
}

// Summary возвращает текущую сводку сверки.
func (c *Checkout) Summary() (CheckoutSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return CheckoutSummary{}, err
	}
	return CheckoutSummary{
		TotalOwed: c.totalOwed,
		TotalPaid: c.totalOwed - c.remaining,
		Remaining: c.remaining,
	}, nil
}

// Remaining возвращает текущий остаток задолженности.
func (c *Checkout) Remaining() (float64, error) {
	summary, err := c.Summary()
	if err != nil {
		return 0, err
	}
	return summary.Remaining, nil
}

// AddPayment записывает платёж в счёт остатка задолженности.
// Сумма должна быть положительной и не превышать остаток на момент записи.
func (c *Checkout) AddPayment(amount float64, method string) (models.Payment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return models.Payment{}, err
	}

	if amount <= 0 {
		c.notifier.Error("Введите корректную сумму платежа")
		return models.Payment{}, ErrInvalidAmount
	}
	if amount > c.remaining {
		c.notifier.Error("Сумма платежа превышает остаток задолженности")
		return models.Payment{}, ErrExceedsRemaining
	}
	switch method {
	case constants.PAYMENT_CASH, constants.PAYMENT_ONLINE, constants.PAYMENT_QR:
		// допустимые значения / allowed values
	default:
		c.notifier.Error(fmt.Sprintf("Неизвестный способ оплаты: %s", method))
		return models.Payment{}, ErrUnknownPaymentMethod
	}

	payment := models.Payment{
		ID:        c.newID(),
		Amount:    amount,
		Method:    method,
		Timestamp: c.now().Format(time.RFC3339),
	}
	c.payments = append(c.payments, payment)

	if err := c.store.Set(constants.KEY_PAYMENTS, c.payments); err != nil {
		return models.Payment{}, fmt.Errorf("ошибка сохранения платежей: %w", err)
	}
	c.remaining -= amount

	log.Printf("Платёж #%s на сумму %.2f (%s) записан, остаток %.2f.", payment.ID, amount, method, c.remaining)
	c.notifier.Success(fmt.Sprintf("Платёж на сумму %s записан!", utils.FormatMoney(amount)))
	return payment, nil
}

// DeletePayment удаляет платёж и возвращает его сумму в остаток.
// Когда история платежей пустеет, остаток сбрасывается к полной задолженности —
// защита от накопленного дрейфа округления.
// Отсутствующий идентификатор — тихий no-op без уведомления.
func (c *Checkout) DeletePayment(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return err
	}

	filtered := c.payments[:0:0]
	var deleted *models.Payment
	for i := range c.payments {
		if c.payments[i].ID == id {
			deleted = &c.payments[i]
			continue
		}
		filtered = append(filtered, c.payments[i])
	}
	if deleted == nil {
		log.Printf("Checkout.DeletePayment: платёж с id '%s' не найден, пропуск.", id)
		return nil
	}

	if err := c.store.Set(constants.KEY_PAYMENTS, filtered); err != nil {
		return fmt.Errorf("ошибка сохранения платежей: %w", err)
	}
	amount := deleted.Amount
	c.payments = filtered
	c.remaining += amount
	if len(c.payments) == 0 {
		c.remaining = c.totalOwed
	}

	c.notifier.Success(fmt.Sprintf("Платёж на сумму %s удалён!", utils.FormatMoney(amount)))
	return nil
}

// MaxOut возвращает остаток для подстановки в поле суммы платежа.
// Второй результат false, если платить уже нечего.
func (c *Checkout) MaxOut() (float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return 0, false, err
	}
	if c.remaining <= 0 {
		c.notifier.Error("Нет остатка к оплате")
		return 0, false, nil
	}
	return c.remaining, true, nil
}

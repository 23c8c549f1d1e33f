// Файл: internal/ledger/delivery_ledger.go
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
)

// DeliveryLedger владеет коллекцией доставок.
// Оплаченная доставка сохраняется с нулевой ценой и способом оплаты "none":
// задолженности по ней нет. Статус при создании всегда "delivered".
type DeliveryLedger struct {
	store    store.Store
	notifier notify.Notifier
	now      func() time.Time
	newID    func() string
}

// DeliverySummary — агрегаты по доставкам.
// Пересчитываются из полного списка при каждом запросе, кэша нет.
type DeliverySummary struct {
	TotalUnpaid    float64 `json:"total_unpaid"`
	CashSubtotal   float64 `json:"cash_subtotal"`
	OnlineSubtotal float64 `json:"online_subtotal"`
	PaidCount      int     `json:"paid_count"`
	UnpaidCount    int     `json:"unpaid_count"`
}

// NewDeliveryLedger создаёт журнал доставок поверх переданного хранилища.
func NewDeliveryLedger(st store.Store, notifier notify.Notifier) *DeliveryLedger {
	return &DeliveryLedger{
		store:    st,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Deliveries возвращает все доставки в порядке добавления.
func (l *DeliveryLedger) Deliveries() ([]models.Delivery, error) {
	raw, ok, err := l.store.Get(constants.KEY_DELIVERIES)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения доставок из хранилища: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var deliveries []models.Delivery
	if err := json.Unmarshal(raw, &deliveries); err != nil {
		log.Printf("DeliveryLedger.Deliveries: ошибка десериализации доставок: %v", err)
		return nil, fmt.Errorf("ошибка десериализации доставок: %w", err)
	}
	return deliveries, nil
}

// AddDelivery добавляет доставку.
// Для неоплаченной доставки обязательны положительная цена и способ оплаты.
// Для оплаченной цена принудительно 0, способ оплаты принудительно "none".
func (l *DeliveryLedger) AddDelivery(orderNo int, isPaid bool, price float64, paymentMethod string) (models.Delivery, error) {
	if orderNo <= 0 {
		l.notifier.Error("Введите номер заказа")
		return models.Delivery{}, ErrMissingOrderNumber
	}

	if isPaid {
		price = 0
		paymentMethod = constants.PAYMENT_NONE
	} else {
		if price <= 0 {
			l.notifier.Error("Введите корректную сумму доставки")
			return models.Delivery{}, ErrInvalidPrice
		}
		switch paymentMethod {
		case constants.PAYMENT_NONE, "":
			l.notifier.Error("Выберите способ оплаты")
			return models.Delivery{}, ErrMissingPaymentMethod
		case constants.PAYMENT_CASH, constants.PAYMENT_ONLINE, constants.PAYMENT_BOTH, constants.PAYMENT_QR:
			// допустимые значения / allowed values
		default:
			l.notifier.Error(fmt.Sprintf("Неизвестный способ оплаты: %s", paymentMethod))
			return models.Delivery{}, ErrUnknownPaymentMethod
		}
	}

	deliveries, err := l.Deliveries()
	if err != nil {
		return models.Delivery{}, err
	}

	delivery := models.Delivery{
		ID:            l.newID(),
		OrderNo:       orderNo,
		Price:         price,
		PaymentMethod: paymentMethod,
		Date:          l.now().Format("2006-01-02"),
		Status:        constants.STATUS_DELIVERED,
		IsPaid:        isPaid,
	}
	deliveries = append(deliveries, delivery)

	if err := l.store.Set(constants.KEY_DELIVERIES, deliveries); err != nil {
		return models.Delivery{}, fmt.Errorf("ошибка сохранения доставок: %w", err)
	}

	log.Printf("Доставка #%d добавлена (id %s, оплачена: %v).", delivery.OrderNo, delivery.ID, delivery.IsPaid)
	l.notifier.Success("Доставка добавлена!")
	return delivery, nil
}

// DeleteDelivery удаляет доставку по идентификатору.
// Ранее записанные платежи при этом не корректируются: расхождение
// устраняется сверкой при следующей загрузке (см. Checkout.Load).
// Отсутствующий идентификатор — тихий no-op без уведомления.
func (l *DeliveryLedger) DeleteDelivery(id string) error {
	deliveries, err := l.Deliveries()
	if err != nil {
		return err
	}

	filtered := deliveries[:0:0]
	found := false
	for _, delivery := range deliveries {
		if delivery.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, delivery)
	}
	if !found {
		log.Printf("DeliveryLedger.DeleteDelivery: доставка с id '%s' не найдена, пропуск.", id)
		return nil
	}

	if err := l.store.Set(constants.KEY_DELIVERIES, filtered); err != nil {
		return fmt.Errorf("ошибка сохранения доставок: %w", err)
	}
	l.notifier.Success("Доставка удалена!")
	return nil
}

// Summary пересчитывает агрегаты по текущему списку доставок.
func (l *DeliveryLedger) Summary() (DeliverySummary, error) {
	deliveries, err := l.Deliveries()
	if err != nil {
		return DeliverySummary{}, err
	}

	var summary DeliverySummary
	for _, d := range deliveries {
		if d.IsPaid {
			summary.PaidCount++
			continue
		}
		summary.UnpaidCount++
		summary.TotalUnpaid += d.Price
		switch d.PaymentMethod {
		case constants.PAYMENT_CASH:
			summary.CashSubtotal += d.Price
		case constants.PAYMENT_ONLINE:
			summary.OnlineSubtotal += d.Price
		}
	}
	return summary, nil
}

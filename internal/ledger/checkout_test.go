package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ShiftTracker/internal/constants"
	"ShiftTracker/internal/store"
)

func newTestCheckout(t *testing.T) (*Checkout, *DeliveryLedger, *recordingNotifier) {
	t.Helper()
	st := store.NewMemoryStore()
	notifier := &recordingNotifier{}

	deliveries := NewDeliveryLedger(st, notifier)
	deliveries.newID = sequentialIDs()
	deliveries.now = fixedNow(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	checkout := NewCheckout(st, notifier)
	checkout.newID = sequentialIDs()
	checkout.now = fixedNow(time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))
	require.NoError(t, checkout.Load())

	return checkout, deliveries, notifier
}

func TestAddPaymentReducesRemaining(t *testing.T) {
	checkout, deliveries, _ := newTestCheckout(t)

	_, err := deliveries.AddDelivery(1, false, 300, constants.PAYMENT_CASH)
	require.NoError(t, err)

	payment, err := checkout.AddPayment(120, constants.PAYMENT_CASH)
	require.NoError(t, err)
	require.Equal(t, 120.0, payment.Amount)
	require.Equal(t, "2026-09-01T18:00:00Z", payment.Timestamp)

	summary, err := checkout.Summary()
	require.NoError(t, err)
	require.Equal(t, 300.0, summary.TotalOwed)
	require.Equal(t, 120.0, summary.TotalPaid)
	require.Equal(t, 180.0, summary.Remaining)
}

func TestAddPaymentBoundary(t *testing.T) {
	checkout, deliveries, _ := newTestCheckout(t)

	_, err := deliveries.AddDelivery(1, false, 300, constants.PAYMENT_CASH)
	require.NoError(t, err)

	// Платёж ровно в остаток допустим
	_, err = checkout.AddPayment(300, constants.PAYMENT_ONLINE)
	require.NoError(t, err)

	remaining, err := checkout.Remaining()
	require.NoError(t, err)
	require.Equal(t, 0.0, remaining)

	// Сверх остатка — отказ
	_, err = checkout.AddPayment(1, constants.PAYMENT_CASH)
	require.ErrorIs(t, err, ErrExceedsRemaining)
}

func TestAddPaymentValidation(t *testing.T) {
	checkout, deliveries, _ := newTestCheckout(t)

	_, err := deliveries.AddDelivery(1, false, 300, constants.PAYMENT_CASH)
	require.NoError(t, err)

	_, err = checkout.AddPayment(0, constants.PAYMENT_CASH)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = checkout.AddPayment(-5, constants.PAYMENT_CASH)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = checkout.AddPayment(100, constants.PAYMENT_BOTH)
	require.ErrorIs(t, err, ErrUnknownPaymentMethod)

	_, err = checkout.AddPayment(100, constants.PAYMENT_QR)
	require.NoError(t, err)
}

func TestOverpayResetsPaymentHistory(t *testing.T) {
	checkout, deliveries, _ := newTestCheckout(t)

	first, err := deliveries.AddDelivery(1, false, 300, constants.PAYMENT_CASH)
	require.NoError(t, err)
	_, err = deliveries.AddDelivery(2, false, 200, constants.PAYMENT_ONLINE)
	require.NoError(t, err)

	_, err = checkout.AddPayment(500, constants.PAYMENT_CASH)
	require.NoError(t, err)

	// Удаление доставки делает записанные платежи больше задолженности
	require.NoError(t, deliveries.DeleteDelivery(first.ID))

	summary, err := checkout.Summary()
	require.NoError(t, err)
	require.Equal(t, 200.0, summary.TotalOwed)
	require.Equal(t, 0.0, summary.TotalPaid, "история платежей сбрасывается при переплате")
	require.Equal(t, 200.0, summary.Remaining)

	payments, err := checkout.Payments()
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestDeletePaymentRestoresRemaining(t *testing.T) {
	checkout, deliveries, notifier := newTestCheckout(t)

	_, err := deliveries.AddDelivery(1, false, 300, constants.PAYMENT_CASH)
	require.NoError(t, err)

	payment, err := checkout.AddPayment(120, constants.PAYMENT_CASH)
	require.NoError(t, err)

	require.NoError(t, checkout.DeletePayment(payment.ID))
	require.Contains(t, notifier.successes, "Платёж на сумму ₹120.00 удалён!")

	// История опустела, остаток возвращается к полной задолженности
	remaining, err := checkout.Remaining()
	require.NoError(t, err)
	require.Equal(t, 300.0, remaining)
}

func TestDeletePaymentMissingIDIsNoOp(t *testing.T) {
	checkout, deliveries, notifier := newTestCheckout(t)

	_, err := deliveries.AddDelivery(1, false, 300, constants.PAYMENT_CASH)
	require.NoError(t, err)
	_, err = checkout.AddPayment(100, constants.PAYMENT_CASH)
	require.NoError(t, err)
	before := len(notifier.successes)

	require.NoError(t, checkout.DeletePayment("нет-такого-id"))
	require.Len(t, notifier.successes, before)

	payments, err := checkout.Payments()
	require.NoError(t, err)
	require.Len(t, payments, 1)
}

func TestMaxOut(t *testing.T) {
	checkout, deliveries, _ := newTestCheckout(t)

	// Пустая касса: платить нечего
	amount, ok, err := checkout.MaxOut()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0.0, amount)

	_, err = deliveries.AddDelivery(1, false, 300, constants.PAYMENT_CASH)
	require.NoError(t, err)
	_, err = checkout.AddPayment(100, constants.PAYMENT_CASH)
	require.NoError(t, err)

	amount, ok, err = checkout.MaxOut()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 200.0, amount)
}

func TestPaidDeliveriesAddNoDebt(t *testing.T) {
	checkout, deliveries, _ := newTestCheckout(t)

	_, err := deliveries.AddDelivery(1, true, 0, "")
	require.NoError(t, err)
	_, err = deliveries.AddDelivery(2, false, 250, constants.PAYMENT_QR)
	require.NoError(t, err)

	summary, err := checkout.Summary()
	require.NoError(t, err)
	require.Equal(t, 250.0, summary.TotalOwed)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ShiftTracker/internal/constants"
)

func TestFormatMoney(t *testing.T) {
	require.Equal(t, "₹120.00", FormatMoney(120))
	require.Equal(t, "₹99.50", FormatMoney(99.5))
}

func TestFormatHours(t *testing.T) {
	require.Equal(t, "8 ч", FormatHours(8))
	require.Equal(t, "6.50 ч", FormatHours(6.5))
}

func TestFormatShiftTime(t *testing.T) {
	require.Equal(t, "09:00 - 18:00", FormatShiftTime("09:00", "18:00"))
	require.Equal(t, "Выходной", FormatShiftTime("00:00", "00:00"))
}

func TestPaymentMethodDisplay(t *testing.T) {
	require.Equal(t, constants.PaymentMethodDisplayMap[constants.PAYMENT_CASH], PaymentMethodDisplay(constants.PAYMENT_CASH))
	// Неизвестный способ возвращается как есть
	require.Equal(t, "crypto", PaymentMethodDisplay("crypto"))
}

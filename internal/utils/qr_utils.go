package utils

import (
	"fmt"
	"log"

	"github.com/skip2/go-qrcode"
)

// GeneratePaymentLink генерирует UPI-ссылку на оплату остатка задолженности.
// payeeVPA передаётся из конфигурации (переменная окружения UPI_VPA).
// GeneratePaymentLink builds a UPI payment link for the outstanding balance.
// payeeVPA comes from configuration (UPI_VPA environment variable).
func GeneratePaymentLink(payeeVPA string, amount float64) (string, error) {
	if payeeVPA == "" {
		log.Println("GeneratePaymentLink: UPI-адрес получателя не настроен.")
		return "", fmt.Errorf("UPI-адрес получателя не настроен")
	}
	if amount <= 0 {
		log.Printf("GeneratePaymentLink: невалидная сумма: %.2f", amount)
		return "", fmt.Errorf("невалидная сумма для оплаты")
	}
	return fmt.Sprintf("upi://pay?pa=%s&am=%.2f&cu=INR", payeeVPA, amount), nil
}

// GeneratePaymentQRCode генерирует QR-код для оплаты остатка задолженности.
func GeneratePaymentQRCode(payeeVPA string, amount float64) ([]byte, error) {
	link, err := GeneratePaymentLink(payeeVPA, amount)
	if err != nil {
		return nil, err
	}

	// qrcode.Medium - уровень коррекции ошибок, 256 - размер QR-кода в пикселях.
	qrBytes, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		log.Printf("GeneratePaymentQRCode: ошибка кодирования QR-кода для ссылки '%s': %v", link, err)
		return nil, err
	}
	return qrBytes, nil
}

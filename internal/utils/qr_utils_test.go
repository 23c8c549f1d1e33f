package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePaymentLink(t *testing.T) {
	link, err := GeneratePaymentLink("worker@upi", 250)
	require.NoError(t, err)
	require.Equal(t, "upi://pay?pa=worker@upi&am=250.00&cu=INR", link)
}

func TestGeneratePaymentLinkValidation(t *testing.T) {
	_, err := GeneratePaymentLink("", 250)
	require.Error(t, err)

	_, err = GeneratePaymentLink("worker@upi", 0)
	require.Error(t, err)

	_, err = GeneratePaymentLink("worker@upi", -10)
	require.Error(t, err)
}

func TestGeneratePaymentQRCode(t *testing.T) {
	qrBytes, err := GeneratePaymentQRCode("worker@upi", 250)
	require.NoError(t, err)
	// PNG начинается с сигнатуры \x89PNG
	require.True(t, len(qrBytes) > 8)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, qrBytes[:4])
}

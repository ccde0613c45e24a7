package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePaymentQR("https://pay.example.com/l/abc123")
	require.NoError(t, err)

	// PNG magic bytes.
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])
}

func TestGeneratePaymentQR_EmptyURL(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePaymentQR("")
	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GeneratePaymentQR("https://pay.example.com/l/abc123")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GenerateTrackingQR("TRK-0123456789ABCDEF")
	require.NoError(t, err)

	// PNG signature.
	require.GreaterOrEqual(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, png[:8])
}

func TestGenerateTrackingQR_UnknownLevelFallsBackToMedium(t *testing.T) {
	service := NewQRCodeService(128, "bogus")

	png, err := service.GenerateTrackingQR("TRK-FFFFFFFFFFFFFFFF")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

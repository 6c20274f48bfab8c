package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://shop.test")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.test/")

	qrBytes, err := service.GenerateProductQR(42)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateProductQRText(t *testing.T) {
	service := NewQRCodeService(256, "L", "https://shop.test")

	text, err := service.GenerateProductQRText(42)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestQRCodeService_RejectsInvalidID(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.test")

	_, err := service.GenerateProductQR(0)
	assert.Error(t, err)
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.test")

	tests := []struct {
		name    string
		data    string
		want    int64
		wantErr bool
	}{
		{name: "product link", data: "https://shop.test/products/42", want: 42},
		{name: "trailing slash", data: "https://shop.test/products/7/", want: 7},
		{name: "other page", data: "https://shop.test/cart", wantErr: true},
		{name: "non numeric", data: "https://shop.test/products/abc", wantErr: true},
		{name: "zero id", data: "https://shop.test/products/0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseProductQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_UsesDefaultsWithoutConfig(t *testing.T) {
	svc := New(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, "http://localhost:5173/products/3", svc.productURL(3))
}

package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:5173"

	productPathPrefix = "/products/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// New creates the QR code service from the optional qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", defaultBaseURL)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateProductQR generates a PNG QR code pointing at the product page
func (s *qrcodeService) GenerateProductQR(productID int64) ([]byte, error) {
	qrCode, err := s.encode(productID)
	if err != nil {
		return nil, err
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) GenerateProductQRText(productID int64) (string, error) {
	qrCode, err := s.encode(productID)
	if err != nil {
		return "", err
	}

	return qrCode.ToSmallString(false), nil
}

// ParseProductQR parses a product page URL and returns the product ID
func (s *qrcodeService) ParseProductQR(qrData string) (int64, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code data")
	}

	idx := strings.LastIndex(parsed.Path, productPathPrefix)
	if idx < 0 {
		return 0, errors.Errorf("not a product link: %s", qrData)
	}

	id, err := strconv.ParseInt(strings.Trim(parsed.Path[idx+len(productPathPrefix):], "/"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid product id in %s", qrData)
	}

	return id, nil
}

func (s *qrcodeService) productURL(productID int64) string {
	return fmt.Sprintf("%s%s%d", s.baseURL, productPathPrefix, productID)
}

func (s *qrcodeService) encode(productID int64) (*qrcode.QRCode, error) {
	if productID <= 0 {
		return nil, errors.Errorf("invalid product id %d", productID)
	}

	qrCode, err := qrcode.New(s.productURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	return qrCode, nil
}

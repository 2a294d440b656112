package qrcode

import (
	"encoding/json"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	badgeType        = "manager_badge"
	defaultBadgeSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// BadgeData is the JSON document encoded in a manager badge
type BadgeData struct {
	Type        string `json:"type"`
	ManagerID   string `json:"managerId"`
	ManagerCode string `json:"managerCode"`
}

// NewQRCodeService creates a QR code service from the badge configuration
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultBadgeSize, "M"
	if cfg != nil && cfg.Badge != nil {
		if cfg.Badge.Size > 0 {
			size = cfg.Badge.Size
		}
		level = cfg.Badge.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateManagerBadge renders the manager's id and code as a PNG QR code
func (s *qrcodeService) GenerateManagerBadge(manager *entity.Manager) ([]byte, error) {
	jsonData, err := json.Marshal(BadgeData{
		Type:        badgeType,
		ManagerID:   manager.ID.String(),
		ManagerCode: manager.ManagerCode,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal badge data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseManagerBadge decodes scanned badge data
func (s *qrcodeService) ParseManagerBadge(qrData string) (*service.ManagerBadge, error) {
	var data BadgeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal badge data")
	}

	if data.Type != badgeType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	managerID, err := uuid.Parse(data.ManagerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse manager ID")
	}

	if _, ok := entity.ParseManagerCode(data.ManagerCode); !ok {
		return nil, errors.Errorf("invalid manager code: %q", data.ManagerCode)
	}

	return &service.ManagerBadge{
		ManagerID:   managerID,
		ManagerCode: data.ManagerCode,
	}, nil
}
